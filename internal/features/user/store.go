package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (s *Store) findByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT user_id, name, email, password_hash, created_at
		FROM users WHERE email = $1`

	var user User
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf(
			"failed to scan user by email from user store: %w",
			err,
		)
	}

	return &user, nil
}

func (s *Store) findByID(ctx context.Context, userID uuid.UUID) (*User, error) {
	query := `SELECT user_id, name, email, password_hash, created_at
		FROM users WHERE user_id = $1`

	var user User
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf(
			"failed to scan user by id from user store: %w",
			err,
		)
	}

	return &user, nil
}
