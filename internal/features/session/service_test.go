package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/auth"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
	"github.com/google/uuid"
)

type mockStore struct {
	sessions map[string]*Session
}

func newMockStore() *mockStore {
	return &mockStore{sessions: make(map[string]*Session)}
}

func (m *mockStore) createOne(_ context.Context, userID uuid.UUID, refreshToken string, expiresAt time.Time) error {
	m.sessions[refreshToken] = &Session{
		SessionID:    uuid.New(),
		UserID:       userID,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		CreatedAt:    time.Now(),
	}
	return nil
}

func (m *mockStore) findByToken(_ context.Context, refreshToken string) (*Session, error) {
	session, ok := m.sessions[refreshToken]
	if !ok {
		return nil, nil
	}
	return session, nil
}

func (m *mockStore) deleteByToken(_ context.Context, refreshToken string) error {
	delete(m.sessions, refreshToken)
	return nil
}

func newTestService(store Storer) *Service {
	return NewService(
		store,
		auth.NewTokenService("access-secret", "refresh-secret", 60, 3600),
	)
}

func TestCreatePersistsRefreshSession(t *testing.T) {
	store := newMockStore()
	service := newTestService(store)
	userID := uuid.New()

	tokens, err := service.Create(context.Background(), userID)
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}

	session, ok := store.sessions[tokens.RefreshToken]
	if !ok {
		t.Fatal("expected the refresh token to be persisted")
	}
	if session.UserID != userID {
		t.Errorf("expected session for user %s, got %s", userID, session.UserID)
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Error("expected the session to expire in the future")
	}
}

func TestRenewRotatesRefreshToken(t *testing.T) {
	store := newMockStore()
	service := newTestService(store)
	userID := uuid.New()

	first, err := service.Create(context.Background(), userID)
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	second, err := service.Renew(context.Background(), first.RefreshToken)
	if err != nil {
		t.Fatalf("expected renew to succeed, got %v", err)
	}

	if _, ok := store.sessions[first.RefreshToken]; ok {
		t.Error("expected the presented refresh token to be revoked")
	}
	if _, ok := store.sessions[second.RefreshToken]; !ok {
		t.Error("expected a new refresh session to be persisted")
	}

	// a rotated token can not be presented again
	_, err = service.Renew(context.Background(), first.RefreshToken)
	if !errors.Is(err, servererrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on reuse, got %v", err)
	}
}

func TestRenewRejectsUnknownToken(t *testing.T) {
	service := newTestService(newMockStore())

	_, err := service.Renew(context.Background(), "not-a-jwt")
	if !errors.Is(err, servererrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for a malformed token, got %v", err)
	}
}

func TestRenewRejectsExpiredSession(t *testing.T) {
	store := newMockStore()
	service := newTestService(store)
	userID := uuid.New()

	tokens, err := service.Create(context.Background(), userID)
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	// age the stored session past its expiry
	store.sessions[tokens.RefreshToken].ExpiresAt = time.Now().Add(-time.Minute)

	_, err = service.Renew(context.Background(), tokens.RefreshToken)
	if !errors.Is(err, servererrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for an expired session, got %v", err)
	}

	if _, ok := store.sessions[tokens.RefreshToken]; ok {
		t.Error("expected the expired session to be deleted")
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	store := newMockStore()
	service := newTestService(store)

	tokens, err := service.Create(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	if err := service.Destroy(context.Background(), tokens.RefreshToken); err != nil {
		t.Fatalf("expected destroy to succeed, got %v", err)
	}
	if err := service.Destroy(context.Background(), tokens.RefreshToken); err != nil {
		t.Fatalf("expected destroying an unknown token to succeed, got %v", err)
	}
}
