package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/videogenius/internal/client/models"
	"github.com/dmitrijs2005/videogenius/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context) (*models.Session, error) {
	token, err := getValue(ctx, r.db, KeyToken)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 {
		return nil, nil
	}

	rawUser, err := getValue(ctx, r.db, KeyUser)
	if err != nil {
		return nil, err
	}
	if rawUser == nil {
		return nil, fmt.Errorf("stored session has a token but no user")
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return nil, fmt.Errorf("failed to decode stored user: %w", err)
	}

	return &models.Session{Token: string(token), User: user}, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, s models.Session) error {
	if s.IsZero() {
		return errors.New("refusing to store a session without token")
	}
	rawUser, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := setValue(ctx, tx, KeyToken, []byte(s.Token)); err != nil {
			return err
		}
		return setValue(ctx, tx, KeyUser, rawUser)
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?)`, KeyToken, KeyUser)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func getValue(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func setValue(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}
