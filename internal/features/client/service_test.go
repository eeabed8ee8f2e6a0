package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
	"github.com/google/uuid"
)

// Mock Storer
type mockStore struct {
	clients []*Client
}

func (m *mockStore) createOne(ctx context.Context, newClient *CreateClientRequest) (*Client, error) {
	client := &Client{
		ClientID:  uuid.New(),
		Name:      newClient.Name,
		Contact:   newClient.Contact,
		CreatedAt: time.Now(),
	}
	m.clients = append(m.clients, client)

	return client, nil
}

func (m *mockStore) findAll(ctx context.Context) ([]*Client, error) {
	return m.clients, nil
}

func (m *mockStore) findByID(ctx context.Context, clientID uuid.UUID) (*Client, error) {
	for _, client := range m.clients {
		if client.ClientID == clientID {
			return client, nil
		}
	}
	return nil, nil
}

func (m *mockStore) deleteOne(ctx context.Context, clientID uuid.UUID) (int64, error) {
	for i, client := range m.clients {
		if client.ClientID == clientID {
			m.clients = append(m.clients[:i], m.clients[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func seedClients(t *testing.T, svc *service) []*Client {
	t.Helper()

	seed := []*CreateClientRequest{
		{Name: "Apex Traders", Contact: "apex@example.com"},
		{Name: "Bharat Packaging", Contact: "98200 11111"},
		{Name: "Coastal Exports", Contact: "sales@coastal.in"},
	}

	created := make([]*Client, 0, len(seed))
	for _, req := range seed {
		client, err := svc.createClient(context.Background(), req)
		if err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
		created = append(created, client)
	}

	return created
}

func Test_getAllClients_filter(t *testing.T) {
	store := &mockStore{}
	svc := NewService(store)
	seedClients(t, svc)

	// matches name case insensitively
	clients, err := svc.getAllClients(context.Background(), "apex")
	if err != nil {
		t.Fatalf("getAllClients failed: %v", err)
	}
	if len(clients) != 1 || clients[0].Name != "Apex Traders" {
		t.Errorf("expected only 'Apex Traders', got %d results", len(clients))
	}

	// matches contact too
	clients, err = svc.getAllClients(context.Background(), "coastal.in")
	if err != nil {
		t.Fatalf("getAllClients failed: %v", err)
	}
	if len(clients) != 1 || clients[0].Name != "Coastal Exports" {
		t.Errorf("expected only 'Coastal Exports', got %d results", len(clients))
	}

	// no match
	clients, err = svc.getAllClients(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("getAllClients failed: %v", err)
	}
	if len(clients) != 0 {
		t.Errorf("expected no matches, got %d", len(clients))
	}
}

func Test_getAllClients_emptySearchPreservesOrder(t *testing.T) {
	store := &mockStore{}
	svc := NewService(store)
	seeded := seedClients(t, svc)

	clients, err := svc.getAllClients(context.Background(), "")
	if err != nil {
		t.Fatalf("getAllClients failed: %v", err)
	}

	if len(clients) != len(seeded) {
		t.Fatalf("expected %d clients, got %d", len(seeded), len(clients))
	}
	for i := range seeded {
		if clients[i].ClientID != seeded[i].ClientID {
			t.Errorf("expected client %d in original order", i)
		}
	}
}

func Test_deleteClient_removesExactlyOne(t *testing.T) {
	store := &mockStore{}
	svc := NewService(store)
	seeded := seedClients(t, svc)

	if err := svc.deleteClient(context.Background(), seeded[1].ClientID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	remaining, err := svc.getAllClients(context.Background(), "")
	if err != nil {
		t.Fatalf("getAllClients failed: %v", err)
	}

	if len(remaining) != 2 {
		t.Fatalf("expected 2 clients after delete, got %d", len(remaining))
	}

	// remaining entries keep their original relative order
	if remaining[0].ClientID != seeded[0].ClientID || remaining[1].ClientID != seeded[2].ClientID {
		t.Error("expected remaining clients in original relative order")
	}
}

func Test_deleteClient_unknownID(t *testing.T) {
	store := &mockStore{}
	svc := NewService(store)
	seedClients(t, svc)

	err := svc.deleteClient(context.Background(), uuid.New())
	if !errors.Is(err, servererrors.ErrClientNotFound) {
		t.Errorf("expected ErrClientNotFound, got %v", err)
	}
}
