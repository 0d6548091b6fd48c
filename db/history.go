package db

import (
	"fmt"
	"time"
)

// SaveEntry stores a calculation. Saving an id twice replaces the row.
func (db *DB) SaveEntry(id, expression, result string, createdAt time.Time) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO history (id, expression, result, created_at) VALUES (?, ?, ?, ?)",
		id, expression, result, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	return nil
}

// ListEntries returns the most recent entries, newest first
func (db *DB) ListEntries(limit int) ([]*Entry, error) {
	rows, err := db.conn.Query(
		"SELECT id, expression, result, created_at FROM history ORDER BY created_at DESC, rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Expression, &e.Result, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history entries: %w", err)
	}
	return entries, nil
}

// CountEntries returns the total number of stored entries
func (db *DB) CountEntries() (int64, error) {
	var count int64
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM history").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count history entries: %w", err)
	}
	return count, nil
}

// TrimEntries deletes the oldest entries, keeping only the specified number
func (db *DB) TrimEntries(keepCount int) (int64, error) {
	result, err := db.conn.Exec(`
		DELETE FROM history
		WHERE id NOT IN (
			SELECT id FROM history
			ORDER BY created_at DESC, rowid DESC
			LIMIT ?
		)
	`, keepCount)
	if err != nil {
		return 0, fmt.Errorf("failed to trim history: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected, nil
}

// ClearEntries deletes every stored entry
func (db *DB) ClearEntries() error {
	if _, err := db.conn.Exec("DELETE FROM history"); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
