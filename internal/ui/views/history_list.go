package views

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/tallybook/tally/internal/ledger"
	"github.com/tallybook/tally/internal/model"
	"github.com/tallybook/tally/internal/service"
	"github.com/tallybook/tally/internal/utils"
)

// RenderAccountHistory renders the entries of one account, oldest first,
// colored by direction as that account sees them.
func RenderAccountHistory(number string, rows []service.HistoryRow) error {
	if len(rows) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Printf("History for account %s", number)

	tableData := pterm.TableData{
		{"ID", "Date", "Kind", "Counterparty", "Amount"},
	}

	for _, row := range rows {
		amount := utils.FormatSigned(row.Signed)

		var coloredKind, coloredAmount string
		switch row.Direction {
		case ledger.DirectionIn:
			coloredKind = pterm.Green(titleKind(row.Entry.Kind))
			coloredAmount = pterm.Green(amount)
		case ledger.DirectionOut:
			coloredKind = pterm.Red(titleKind(row.Entry.Kind))
			coloredAmount = pterm.Red(amount)
		default:
			coloredKind = row.Entry.Kind
			coloredAmount = amount
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", row.Entry.ID),
			utils.FormatTimestamp(row.Entry.CreatedAt),
			coloredKind,
			counterparty(row.Entry, number),
			coloredAmount,
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// RenderFullHistory renders every ledger entry, oldest first.
func RenderFullHistory(entries []model.Entry) error {
	if len(entries) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Println("Full ledger history")

	tableData := pterm.TableData{
		{"ID", "Date", "Kind", "From", "To", "Amount"},
	}

	for _, entry := range entries {
		from := entry.FromAccount
		if from == "" {
			from = "(external)"
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", entry.ID),
			utils.FormatTimestamp(entry.CreatedAt),
			titleKind(entry.Kind),
			from,
			entry.ToAccount,
			utils.FormatAmount(entry.Amount),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func titleKind(kind string) string {
	if kind == "" {
		return kind
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}

func counterparty(entry model.Entry, viewpoint string) string {
	if entry.IsDeposit() {
		return "(external)"
	}
	if entry.FromAccount == viewpoint {
		return entry.ToAccount
	}
	return entry.FromAccount
}
