package store

import (
	"database/sql"
	"fmt"
	"strings"
)

// Store is the per-user keyed persistence port. Values are opaque JSON
// documents; each (user, key) pair is an independent write with no
// cross-key transaction guarantee.
type Store interface {
	// Load returns the stored value, or nil when the key is absent.
	Load(userID, key string) ([]byte, error)
	// Save overwrites the value for the key.
	Save(userID, key string, value []byte) error
}

// SQLite implements Store on the user_store key-value table.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

func (s *SQLite) Load(userID, key string) ([]byte, error) {
	userID, key, err := cleanKey(userID, key)
	if err != nil {
		return nil, err
	}
	var value string
	err = s.db.QueryRow(`SELECT value FROM user_store WHERE user_id = ? AND key = ?`, userID, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s/%s: %w", userID, key, err)
	}
	return []byte(value), nil
}

func (s *SQLite) Save(userID, key string, value []byte) error {
	userID, key, err := cleanKey(userID, key)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
INSERT INTO user_store(user_id, key, value, updated_at)
VALUES(?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(user_id, key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, userID, key, string(value))
	if err != nil {
		return fmt.Errorf("save %s/%s: %w", userID, key, err)
	}
	return nil
}

func cleanKey(userID, key string) (string, string, error) {
	userID = strings.TrimSpace(userID)
	key = strings.TrimSpace(key)
	if userID == "" {
		return "", "", fmt.Errorf("user id is required")
	}
	if key == "" {
		return "", "", fmt.Errorf("storage key is required")
	}
	return userID, key, nil
}
