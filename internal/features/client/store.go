package client

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

func (s *Store) createOne(ctx context.Context, newClient *CreateClientRequest) (*Client, error) {
	query := `INSERT INTO clients(name, contact)
		VALUES($1, $2)
		RETURNING client_id, name, contact, created_at`

	var client Client
	err := s.db.QueryRowContext(
		ctx,
		query,
		newClient.Name,
		newClient.Contact,
	).Scan(
		&client.ClientID,
		&client.Name,
		&client.Contact,
		&client.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to insert new client in client store: %w",
			err,
		)
	}

	return &client, nil
}

func (s *Store) findAll(ctx context.Context) ([]*Client, error) {
	query := `SELECT client_id, name, contact, created_at
		FROM clients ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get all clients from client store: %w",
			err,
		)
	}
	defer rows.Close()

	var clients []*Client
	for rows.Next() {
		var client Client
		err := rows.Scan(
			&client.ClientID,
			&client.Name,
			&client.Contact,
			&client.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan client from client store: %w",
				err,
			)
		}
		clients = append(clients, &client)
	}

	return clients, rows.Err()
}

func (s *Store) findByID(ctx context.Context, clientID uuid.UUID) (*Client, error) {
	query := `SELECT client_id, name, contact, created_at
		FROM clients WHERE client_id = $1`

	var client Client
	err := s.db.QueryRowContext(ctx, query, clientID).Scan(
		&client.ClientID,
		&client.Name,
		&client.Contact,
		&client.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf(
			"failed to scan client from client store: %w",
			err,
		)
	}

	return &client, nil
}

func (s *Store) deleteOne(ctx context.Context, clientID uuid.UUID) (int64, error) {
	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM clients WHERE client_id = $1`,
		clientID,
	)
	if err != nil {
		return 0, fmt.Errorf(
			"failed to delete client in client store: %w",
			err,
		)
	}

	return result.RowsAffected()
}
