package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
)

// The entries table is append-only. This file deliberately contains no UPDATE
// or DELETE statements.

func (s *Store) AppendEntry(entry Entry) (*Entry, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO entries (reference, kind, from_account, to_account, amount, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	err = stmt.QueryRow(
		entry.Reference, entry.Kind, entry.FromAccount,
		entry.ToAccount, entry.Amount, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintUnique) {
			return nil, fmt.Errorf("entry reference '%s' already recorded: %w", entry.Reference, err)
		}
		return nil, mapSqliteErr(fmt.Errorf("failed to append ledger entry : %w", err))
	}

	return &entry, nil
}

// GetEntriesByAccount returns every entry naming the account as source or
// destination, oldest first.
func (s *Store) GetEntriesByAccount(number string) ([]*Entry, error) {
	rows, err := s.db.Query(`
        SELECT id, reference, kind, from_account, to_account, amount, created_at
        FROM entries
        WHERE from_account = ? OR to_account = ?
        ORDER BY created_at, id
    `, number, number)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for '%s': %w", number, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanEntries(rows)
}

func (s *Store) GetAllEntries() ([]*Entry, error) {
	rows, err := s.db.Query(`
        SELECT id, reference, kind, from_account, to_account, amount, created_at
        FROM entries
        ORDER BY created_at, id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanEntries(rows)
}

func (s *Store) GetEntryByReference(reference string) (*Entry, error) {
	row := s.db.QueryRow(`
        SELECT id, reference, kind, from_account, to_account, amount, created_at
        FROM entries
        WHERE reference = ?
    `, reference)

	entry := &Entry{}
	var fromAccount sql.NullString

	err := row.Scan(
		&entry.ID, &entry.Reference, &entry.Kind,
		&fromAccount, &entry.ToAccount, &entry.Amount, &entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("entry '%s': %w", reference, ErrEntryNotFound)
		}
		return nil, fmt.Errorf("failed to query entry '%s': %w", reference, err)
	}

	if fromAccount.Valid {
		entry.FromAccount = &fromAccount.String
	}

	return entry, nil
}

func (s *Store) scanEntries(rows *sql.Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		entry := &Entry{}
		var fromAccount sql.NullString

		err := rows.Scan(
			&entry.ID, &entry.Reference, &entry.Kind,
			&fromAccount, &entry.ToAccount, &entry.Amount, &entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		if fromAccount.Valid {
			entry.FromAccount = &fromAccount.String
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
