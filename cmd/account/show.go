package account

import (
	"github.com/spf13/cobra"
	"github.com/tallybook/tally/internal/service"
	"github.com/tallybook/tally/internal/ui/views"
)

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "show <account-number>",
		Short:        "Show one account and its current balance",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := svc.Account.GetAccountByNumber(args[0])
			if err != nil {
				return err
			}

			return views.RenderAccountDetail(acc)
		},
	}
}
