package views

import (
	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath     string
	DBPath         string
	DBExists       bool
	ProfileAccount string
	Operator       bool
	AppDataDir     string
}

func RenderSystemInfo(item SystemInfoItem) error {
	dbStatus := "not created yet"
	if item.DBExists {
		dbStatus = "ok"
	}

	account := item.ProfileAccount
	if account == "" {
		account = "(not configured)"
	}

	role := "user"
	if item.Operator {
		role = "operator"
	}

	tableData := pterm.TableData{
		{pterm.Blue("Config File"), item.ConfigPath},
		{pterm.Blue("Database"), item.DBPath},
		{pterm.Blue("Database Status"), dbStatus},
		{pterm.Blue("Profile Account"), account},
		{pterm.Blue("Profile Role"), role},
		{pterm.Blue("App Data Dir"), item.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
