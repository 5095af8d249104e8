package account

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/tallybook/tally/internal/constants"
	"github.com/tallybook/tally/internal/model"
	"github.com/tallybook/tally/internal/service"
	"github.com/tallybook/tally/internal/ui"
	"github.com/tallybook/tally/internal/ui/prompts"
	"github.com/tallybook/tally/internal/utils"
	"github.com/tallybook/tally/internal/validation"
)

type createFlags struct {
	Email   string
	Role    string
	Balance string
}

type createRunner struct {
	svc    *service.Service
	caller CallerFunc
	flags  *createFlags
	cmd    *cobra.Command
}

func NewCreateCmd(svc *service.Service, caller CallerFunc) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		Long: `Create a new ledger account. The account number is picked at random
and is guaranteed unique. Requires operator privileges.

Examples:
  # Interactive mode
  tally account create

  # Quick mode with flags
  tally account create --email alice@example.com --role user --balance 100.00`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{
				svc:    svc,
				caller: caller,
				flags:  flags,
				cmd:    cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Email, "email", "e", "", "Account holder email")
	cmd.Flags().StringVarP(&flags.Role, "role", "r", constants.RoleUser, "Account role: user or operator")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Initial balance (e.g. 100 or 100.50)")

	return cmd
}

func (r *createRunner) Run() error {
	var acc *model.Account
	var err error

	if r.cmd.Flags().Changed("email") {
		acc, err = r.flagsMode()
	} else {
		acc, err = r.interactiveMode()
	}
	if err != nil {
		return err
	}

	displaySuccess(acc)
	return nil
}

func (r *createRunner) flagsMode() (*model.Account, error) {
	if err := validation.ValidateEmail(r.flags.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidateRole(r.flags.Role); err != nil {
		return nil, err
	}

	balance, err := validation.ParseInitialBalance(r.flags.Balance)
	if err != nil {
		return nil, err
	}

	return r.svc.Account.CreateAccount(r.caller(), r.flags.Email, r.flags.Role, balance)
}

func (r *createRunner) interactiveMode() (*model.Account, error) {
	email, err := prompts.PromptEmail(validation.ValidateEmail)
	if err != nil {
		return nil, err
	}

	role, err := prompts.PromptRole()
	if err != nil {
		return nil, err
	}

	balanceInput, err := prompts.PromptInitialBalance(validation.InitialBalancePrompt)
	if err != nil {
		return nil, err
	}

	balance, err := validation.ParseInitialBalance(balanceInput)
	if err != nil {
		return nil, err
	}

	displaySummary(email, role, balance)

	confirm, err := prompts.PromptConfirm("Proceed with account creation?", true)
	if err != nil {
		return nil, err
	}
	if !confirm {
		return nil, fmt.Errorf("account creation cancelled")
	}

	return r.svc.Account.CreateAccount(r.caller(), email, role, balance)
}

func displaySummary(email, role string, balance decimal.Decimal) {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Email"), email},
		{pterm.Blue("Role"), role},
		{pterm.Blue("Initial Balance"), utils.FormatAmount(balance)},
	}

	pterm.DefaultTable.WithData(tableData).Render()
}

func displaySuccess(acc *model.Account) {
	ui.Separator()
	tableData := pterm.TableData{
		{pterm.Blue("Account Number"), acc.Number},
		{pterm.Blue("Email"), acc.Email},
		{pterm.Blue("Balance"), utils.FormatAmount(acc.Balance)},
	}
	pterm.DefaultTable.WithData(tableData).Render()
	pterm.Success.Println("Account created successfully!")
}
