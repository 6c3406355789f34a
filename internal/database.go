package internal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// The persisted store is a single SQLite database used as a key-value
// medium: one table, one row per named slot, JSON text values.
const slotTable = "localKV"

// DefaultStoragePath returns the default database location
// (~/.codeveda/state.db).
func DefaultStoragePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".codeveda", "state.db"), nil
}

// ResolveStoragePath returns override when set, otherwise the default path.
func ResolveStoragePath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return DefaultStoragePath()
}

// OpenDatabase opens (creating if needed) the key-value database at path.
func OpenDatabase(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	createTableSQL := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		key TEXT PRIMARY KEY,
		value TEXT
	)`, slotTable)
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create slot table: %w", err)
	}

	return db, nil
}

// GetSlot reads the raw value of a named slot. The second return value is
// false when the slot does not exist.
func GetSlot(db *sql.DB, key string) (string, bool, error) {
	var value sql.NullString
	query := fmt.Sprintf("SELECT value FROM %s WHERE key = ?", slotTable)
	err := db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query failed: %w", err)
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// SetSlot writes the raw value of a named slot, overwriting prior content.
func SetSlot(db *sql.DB, key, value string) error {
	query := fmt.Sprintf("INSERT INTO %s (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", slotTable)
	if _, err := db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

// DeleteSlot removes a named slot. Deleting a missing slot is not an error.
func DeleteSlot(db *sql.DB, key string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE key = ?", slotTable)
	if _, err := db.Exec(query, key); err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}
