package client

import (
	"context"
	"strings"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
	"github.com/google/uuid"
)

type Storer interface {
	createOne(ctx context.Context, newClient *CreateClientRequest) (*Client, error)
	findAll(ctx context.Context) ([]*Client, error)
	findByID(ctx context.Context, clientID uuid.UUID) (*Client, error)
	deleteOne(ctx context.Context, clientID uuid.UUID) (int64, error)
}

type service struct {
	store Storer
}

func NewService(store Storer) *service {
	return &service{
		store: store,
	}
}

func (s *service) createClient(ctx context.Context, newClient *CreateClientRequest) (*Client, error) {
	newClient.Name = strings.TrimSpace(newClient.Name)
	newClient.Contact = strings.TrimSpace(newClient.Contact)

	return s.store.createOne(ctx, newClient)
}

// getAllClients returns clients ordered by name. A non empty search keeps
// only clients whose name or contact contains it, case insensitively,
// preserving the original order.
func (s *service) getAllClients(ctx context.Context, search string) ([]*Client, error) {
	clients, err := s.store.findAll(ctx)
	if err != nil {
		return nil, err
	}

	if search == "" {
		return clients, nil
	}

	search = strings.ToLower(search)
	filtered := make([]*Client, 0, len(clients))
	for _, client := range clients {
		if strings.Contains(strings.ToLower(client.Name), search) ||
			strings.Contains(strings.ToLower(client.Contact), search) {
			filtered = append(filtered, client)
		}
	}

	return filtered, nil
}

func (s *service) deleteClient(ctx context.Context, clientID uuid.UUID) error {
	rowsDeleted, err := s.store.deleteOne(ctx, clientID)
	if err != nil {
		return err
	}

	if rowsDeleted == 0 {
		return servererrors.ErrClientNotFound
	}

	return nil
}

// GetByID looks a client up for another feature's service, e.g. order
// creation validating its client reference.
func (s *service) GetByID(ctx context.Context, clientID uuid.UUID) (*Client, error) {
	client, err := s.store.findByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if client == nil {
		return nil, servererrors.ErrClientNotFound
	}

	return client, nil
}
