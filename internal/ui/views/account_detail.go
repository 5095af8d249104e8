package views

import (
	"github.com/pterm/pterm"
	"github.com/tallybook/tally/internal/model"
	"github.com/tallybook/tally/internal/ui"
	"github.com/tallybook/tally/internal/utils"
)

func RenderAccountDetail(acc *model.Account) error {
	ui.PrintL2Title("Account Info")

	tableData := pterm.TableData{
		{pterm.Blue("Account Number"), acc.Number},
		{pterm.Blue("Email"), acc.Email},
		{pterm.Blue("Role"), acc.Role},
		{pterm.Blue("Balance"), utils.FormatAmount(acc.Balance)},
		{pterm.Blue("Created"), utils.FormatTimestamp(acc.CreatedAt)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
