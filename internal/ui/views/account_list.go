package views

import (
	"github.com/pterm/pterm"
	"github.com/tallybook/tally/internal/model"
	"github.com/tallybook/tally/internal/utils"
)

func RenderAccountList(accounts []*model.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	tableData := pterm.TableData{
		{"Account Number", "Email", "Role", "Balance", "Created"},
	}

	for _, acc := range accounts {
		tableData = append(tableData, []string{
			acc.Number,
			acc.Email,
			acc.Role,
			utils.FormatAmount(acc.Balance),
			utils.FormatTimestamp(acc.CreatedAt),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
