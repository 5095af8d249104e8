package account

import (
	"github.com/spf13/cobra"
	"github.com/tallybook/tally/internal/service"
)

// CallerFunc supplies the capability of whoever is running the command.
type CallerFunc func() service.Caller

func NewAccountCmd(svc *service.Service, caller CallerFunc) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create and inspect ledger accounts",
		Long:  `Create new accounts (operator only), look up a single account, or list all accounts.`,
	}

	accountCmd.AddCommand(NewCreateCmd(svc, caller))
	accountCmd.AddCommand(NewShowCmd(svc))
	accountCmd.AddCommand(NewListCmd(svc, caller))

	return accountCmd
}
