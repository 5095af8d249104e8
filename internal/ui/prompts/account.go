package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/tallybook/tally/internal/constants"
)

// PromptAccountNumber prompts for a fixed-length numeric account number
func PromptAccountNumber(message string, validator func(string) error) (string, error) {
	var number string

	input := huh.NewInput().
		Title(message).
		Description("10-digit account number").
		Value(&number)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return strings.TrimSpace(number), err
}

// PromptEmail prompts for the account holder's email address
func PromptEmail(validator func(string) error) (string, error) {
	var email string

	input := huh.NewInput().
		Title("Account holder email:").
		Value(&email)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return strings.TrimSpace(email), err
}

// PromptRole prompts for the account role
func PromptRole() (string, error) {
	role := constants.RoleUser

	err := huh.NewSelect[string]().
		Title("Account role:").
		Description("Operators can create accounts and make deposits.").
		Options(
			huh.NewOption("User", constants.RoleUser),
			huh.NewOption("Operator", constants.RoleOperator),
		).
		Value(&role).
		Run()

	return role, err
}

// PromptInitialBalance prompts for an opening balance (0 allowed)
func PromptInitialBalance(validator func(string) error) (string, error) {
	var balance string

	input := huh.NewInput().
		Title("Initial balance:").
		Description("Leave empty or 0 for no opening balance.").
		Value(&balance)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return strings.TrimSpace(balance), err
}
