package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/tallybook/tally/internal/service"
	"github.com/tallybook/tally/internal/ui"
	"github.com/tallybook/tally/internal/ui/prompts"
	"github.com/tallybook/tally/internal/utils"
	"github.com/tallybook/tally/internal/validation"
)

type transferFlags struct {
	To        string
	Amount    string
	Reference string
	Yes       bool
}

type transferRunner struct {
	svc   *service.Service
	flags *transferFlags
	cmd   *cobra.Command
}

func NewTransferCmd(svc *service.Service) *cobra.Command {
	flags := &transferFlags{}

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer funds from your account to another",
		Long: `Move funds from your configured account (profile.account) to a
destination account. The debit, the credit and the ledger entry are one
atomic unit.

Examples:
  # Interactive mode
  tally transfer

  # Quick mode with flags
  tally transfer --to 1234567890 --amount 40.00 --yes`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &transferRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.To, "to", "t", "", "Destination account number")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "m", "", "Amount to transfer (e.g. 40 or 40.50)")
	cmd.Flags().StringVar(&flags.Reference, "ref", "", "Idempotency reference (optional)")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *transferRunner) Run() error {
	caller := currentCaller()
	if caller.Account == "" {
		return fmt.Errorf("no account configured: set profile.account in the config file")
	}

	hasFlags := r.cmd.Flags().Changed("to") || r.cmd.Flags().Changed("amount")

	to := r.flags.To
	amountInput := r.flags.Amount

	if !hasFlags {
		var err error
		to, err = prompts.PromptAccountNumber("Destination account:", validation.AccountNumberPrompt)
		if err != nil {
			return err
		}

		amountInput, err = prompts.PromptAmount("Amount to transfer:", "e.g. 40 or 40.50", validation.AmountPrompt)
		if err != nil {
			return err
		}
	}

	amount, err := validation.ParseAmount(amountInput)
	if err != nil {
		return err
	}

	if !r.flags.Yes {
		confirmed, err := r.confirm(caller.Account, to, utils.FormatAmount(amount))
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Transfer cancelled")
			return nil
		}
	}

	result, err := r.svc.Ledger.Transfer(caller, to, amount, r.flags.Reference)
	if err != nil {
		return err
	}

	if result.Replayed {
		pterm.Info.Printf("Transfer with reference '%s' was already recorded, nothing applied\n", result.Entry.Reference)
	} else {
		pterm.Success.Printf("Transferred %s to account %s\n", utils.FormatAmount(result.Entry.Amount), to)
	}

	pterm.Printf("Your balance: %s\n", utils.FormatAmount(result.SourceBalance))
	return nil
}

func (r *transferRunner) confirm(from, to, amount string) (bool, error) {
	pterm.Printf("About to transfer %s from %s to %s\n", amount, from, to)

	var confirmation bool
	confirmPrompt := &survey.Confirm{
		Message: "Proceed with this transfer?",
		Default: false,
	}
	if err := survey.AskOne(confirmPrompt, &confirmation, ui.IconOption()); err != nil {
		return false, err
	}

	return confirmation, nil
}
