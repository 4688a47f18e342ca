package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hackline/internal/dbx"
)

const (
	keyToken    = "token"
	keyUsername = "username"
)

// SQLiteRepository keeps the session record in a two-row key/value table.
// Save runs inside a transaction so the token and username can never be
// persisted separately.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, rec Record) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, rec.Token); err != nil {
			return err
		}
		return set(ctx, tx, keyUsername, rec.Username)
	})
}

func (r *SQLiteRepository) Load(ctx context.Context) (*Record, error) {
	token, err := get(ctx, r.db, keyToken)
	if err != nil {
		return nil, err
	}
	username, err := get(ctx, r.db, keyUsername)
	if err != nil {
		return nil, err
	}
	if token == "" || username == "" {
		return nil, nil
	}
	return &Record{Token: token, Username: username}, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func set(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func get(ctx context.Context, db dbx.DBTX, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}
