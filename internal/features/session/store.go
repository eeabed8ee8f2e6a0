package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) createOne(ctx context.Context, userID uuid.UUID, refreshToken string, expiresAt time.Time) error {
	query := `INSERT INTO sessions(user_id, refresh_token, expires_at)
		VALUES($1, $2, $3)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		userID,
		refreshToken,
		expiresAt,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to insert new session in session store: %w",
			err,
		)
	}

	return nil
}

func (s *Store) findByToken(ctx context.Context, refreshToken string) (*Session, error) {
	query := `SELECT session_id, user_id, refresh_token, expires_at, created_at
		FROM sessions WHERE refresh_token = $1`

	var session Session
	err := s.db.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.SessionID,
		&session.UserID,
		&session.RefreshToken,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf(
			"failed to scan session from session store: %w",
			err,
		)
	}

	return &session, nil
}

func (s *Store) deleteByToken(ctx context.Context, refreshToken string) error {
	_, err := s.db.ExecContext(
		ctx,
		`DELETE FROM sessions WHERE refresh_token = $1`,
		refreshToken,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to delete session in session store: %w",
			err,
		)
	}

	return nil
}
