package account

import (
	"github.com/spf13/cobra"
	"github.com/tallybook/tally/internal/service"
	"github.com/tallybook/tally/internal/ui/views"
)

func NewListCmd(svc *service.Service, caller CallerFunc) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List all accounts (operator only)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := svc.Account.GetAllAccounts(caller())
			if err != nil {
				return err
			}

			return views.RenderAccountList(accounts)
		},
	}
}
