package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption returns a survey option giving confirmation prompts the same
// dash question icon the rest of the terminal output uses.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
		icons.Help.Text = "?"
	})
}
