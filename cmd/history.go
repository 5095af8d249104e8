package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/tallybook/tally/internal/service"
	"github.com/tallybook/tally/internal/ui/views"
)

type historyRunner struct {
	svc *service.Service
	all bool
}

func NewHistoryCmd(svc *service.Service) *cobra.Command {
	runner := &historyRunner{svc: svc}

	cmd := &cobra.Command{
		Use:   "history [account-number]",
		Short: "Show transaction history",
		Long: `Show the ledger entries for one account, oldest first. With no
argument, shows your own account's history. With --all, shows the whole
ledger (operator only).`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runner.all {
				return runner.runAll()
			}

			number := cfg.Profile.Account
			if len(args) == 1 {
				number = args[0]
			}
			if number == "" {
				return fmt.Errorf("no account given: pass an account number or set profile.account")
			}

			return runner.runAccount(number)
		},
	}

	cmd.Flags().BoolVar(&runner.all, "all", false, "Show every ledger entry (operator only)")

	return cmd
}

func (r *historyRunner) runAccount(number string) error {
	rows, err := r.svc.Ledger.HistoryOf(number)
	if err != nil {
		return err
	}

	limit := cfg.Display.HistoryLimit
	if limit > 0 && len(rows) > limit {
		pterm.Info.Printf("Showing the last %d of %d entries\n", limit, len(rows))
		rows = rows[len(rows)-limit:]
	}

	return views.RenderAccountHistory(number, rows)
}

func (r *historyRunner) runAll() error {
	entries, err := r.svc.Ledger.AllHistory(currentCaller())
	if err != nil {
		return err
	}

	limit := cfg.Display.HistoryLimit
	if limit > 0 && len(entries) > limit {
		pterm.Info.Printf("Showing the last %d of %d entries\n", limit, len(entries))
		entries = entries[len(entries)-limit:]
	}

	return views.RenderFullHistory(entries)
}
