package validation

import (
	"fmt"
	"strings"

	"github.com/tallybook/tally/internal/constants"
)

// ValidateAccountNumber checks the fixed-length numeric format. Format errors
// are reported before any existence or balance check so a malformed request
// never learns anything about real accounts.
func ValidateAccountNumber(number string) error {
	number = strings.TrimSpace(number)

	if len(number) != constants.AccountNumberLen {
		return fmt.Errorf("account number must be exactly %d digits", constants.AccountNumberLen)
	}

	for _, c := range number {
		if c < '0' || c > '9' {
			return fmt.Errorf("account number must contain only digits")
		}
	}

	return nil
}

// ValidateEmail does a minimal shape check; real address verification belongs
// to the identity collaborator, not the ledger.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)

	if email == "" {
		return fmt.Errorf("email can't be empty")
	}
	if len(email) > constants.MaxEmailLen {
		return fmt.Errorf("email too long (max %d characters)", constants.MaxEmailLen)
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("invalid email format")
	}
	if !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("invalid email format")
	}

	return nil
}

func ValidateRole(role string) error {
	switch role {
	case constants.RoleUser, constants.RoleOperator:
		return nil
	default:
		return fmt.Errorf("role must be either '%s' or '%s'", constants.RoleUser, constants.RoleOperator)
	}
}

// AccountNumberPrompt adapts ValidateAccountNumber for interactive prompts.
func AccountNumberPrompt(s string) error {
	return ValidateAccountNumber(s)
}
