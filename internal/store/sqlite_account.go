package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sqlite "github.com/mattn/go-sqlite3"
)

func (s *Store) CreateAccount(number, email, role string, balance int64) (*Account, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO accounts (account_number, email, role, balance, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	now := time.Now().Unix()
	acc := &Account{
		Number:    number,
		Email:     email,
		Role:      role,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = stmt.QueryRow(number, email, role, balance, now, now).Scan(&acc.ID)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintUnique) {
			if strings.Contains(sqliteErr.Error(), "accounts.email") {
				return nil, fmt.Errorf("failed to create account for '%s': %w", email, ErrEmailExists)
			}
			return nil, fmt.Errorf("failed to create account '%s': %w", number, ErrAccountExists)
		}
		return nil, mapSqliteErr(fmt.Errorf("failed to executing SQL insertion : %w", err))
	}

	return acc, nil
}

func (s *Store) GetAccountByNumber(number string) (*Account, error) {
	row := s.db.QueryRow(`
        SELECT id, account_number, email, role, balance, created_at, updated_at
        FROM accounts
        WHERE account_number = ?
    `, number)

	acc := &Account{}
	err := row.Scan(
		&acc.ID, &acc.Number, &acc.Email,
		&acc.Role, &acc.Balance, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s': %w", number, ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to query account '%s' : %w", number, err)
	}

	return acc, nil
}

func (s *Store) AccountExists(number string) (bool, error) {
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE account_number = ?)", number)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}

func (s *Store) GetAllAccounts() ([]*Account, error) {
	rows, err := s.db.Query(`
        SELECT id, account_number, email, role, balance, created_at, updated_at
        FROM accounts
        ORDER BY created_at, id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var accounts []*Account
	for rows.Next() {
		acc := &Account{}
		err := rows.Scan(
			&acc.ID, &acc.Number, &acc.Email,
			&acc.Role, &acc.Balance, &acc.CreatedAt, &acc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

// ApplyDelta reads the current balance and writes the adjusted one in two
// statements. Isolation is the caller's job: run it inside ExecTx, under the
// engine's account lock, so the check and the update see the same balance.
func (s *Store) ApplyDelta(number string, delta int64) (int64, error) {
	var balance int64
	err := s.db.QueryRow("SELECT balance FROM accounts WHERE account_number = ?", number).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("account '%s': %w", number, ErrAccountNotFound)
		}
		return 0, fmt.Errorf("failed to query balance of '%s': %w", number, err)
	}

	newBalance := balance + delta
	if newBalance < 0 {
		return 0, fmt.Errorf("account '%s' balance %d, delta %d: %w", number, balance, delta, ErrInsufficientFunds)
	}

	_, err = s.db.Exec(`
        UPDATE accounts
        SET balance = ?, updated_at = ?
        WHERE account_number = ?
    `, newBalance, time.Now().Unix(), number)
	if err != nil {
		return 0, mapSqliteErr(fmt.Errorf("failed to update balance of '%s': %w", number, err))
	}

	return newBalance, nil
}
