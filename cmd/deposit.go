package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/tallybook/tally/internal/service"
	"github.com/tallybook/tally/internal/ui/prompts"
	"github.com/tallybook/tally/internal/utils"
	"github.com/tallybook/tally/internal/validation"
)

type depositFlags struct {
	Account   string
	Amount    string
	Reference string
}

type depositRunner struct {
	svc   *service.Service
	flags *depositFlags
	cmd   *cobra.Command
}

func NewDepositCmd(svc *service.Service) *cobra.Command {
	flags := &depositFlags{}

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit funds into an account (operator only)",
		Long: `Credit an account from an external source. Requires operator privileges.

Examples:
  # Interactive mode
  tally deposit

  # Quick mode with flags
  tally deposit --account 1234567890 --amount 100.00

  # Safe to retry: a reference makes the deposit idempotent
  tally deposit --account 1234567890 --amount 100.00 --ref payroll-2026-08`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &depositRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Destination account number")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "m", "", "Amount to deposit (e.g. 100 or 100.50)")
	cmd.Flags().StringVar(&flags.Reference, "ref", "", "Idempotency reference (optional)")

	return cmd
}

func (r *depositRunner) Run() error {
	hasFlags := r.cmd.Flags().Changed("account") || r.cmd.Flags().Changed("amount")

	number := r.flags.Account
	amountInput := r.flags.Amount

	if !hasFlags {
		var err error
		number, err = prompts.PromptAccountNumber("Destination account:", validation.AccountNumberPrompt)
		if err != nil {
			return err
		}

		amountInput, err = prompts.PromptAmount("Amount to deposit:", "e.g. 100 or 100.50", validation.AmountPrompt)
		if err != nil {
			return err
		}
	}

	amount, err := validation.ParseAmount(amountInput)
	if err != nil {
		return err
	}

	result, err := r.svc.Ledger.Deposit(currentCaller(), number, amount, r.flags.Reference)
	if err != nil {
		return err
	}

	if result.Replayed {
		pterm.Info.Printf("Deposit with reference '%s' was already recorded, nothing applied\n", result.Entry.Reference)
	} else {
		pterm.Success.Printf("Deposited %s into account %s\n", utils.FormatAmount(result.Entry.Amount), number)
	}

	pterm.Printf("New balance: %s\n", utils.FormatAmount(result.NewBalance))
	return nil
}
