package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/features/session"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockStore struct {
	users []*User
}

func (m *mockStore) findByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockStore) findByID(_ context.Context, userID uuid.UUID) (*User, error) {
	for _, u := range m.users {
		if u.UserID == userID {
			return u, nil
		}
	}
	return nil, nil
}

type mockSessions struct {
	created   []uuid.UUID
	destroyed []string
}

func (m *mockSessions) Create(_ context.Context, userID uuid.UUID) (*session.TokenPair, error) {
	m.created = append(m.created, userID)
	return &session.TokenPair{
		AccessToken:  "access-" + userID.String(),
		RefreshToken: "refresh-" + userID.String(),
	}, nil
}

func (m *mockSessions) Renew(_ context.Context, refreshToken string) (*session.TokenPair, error) {
	return nil, servererrors.ErrSessionNotFound
}

func (m *mockSessions) Destroy(_ context.Context, refreshToken string) error {
	m.destroyed = append(m.destroyed, refreshToken)
	return nil
}

func newTestUser(t *testing.T, email, password string) *User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	return &User{
		UserID:       uuid.New(),
		Name:         "Admin User",
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
}

func TestSignIn(t *testing.T) {
	admin := newTestUser(t, "admin@example.com", "correct horse")
	sessions := &mockSessions{}
	service := NewService(&mockStore{users: []*User{admin}}, sessions)

	user, tokens, err := service.signIn(context.Background(), &SignInRequest{
		Email:    "admin@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("expected sign in to succeed, got %v", err)
	}

	if user.UserID != admin.UserID {
		t.Errorf("expected user %s, got %s", admin.UserID, user.UserID)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("expected a token pair to be issued")
	}
	if len(sessions.created) != 1 || sessions.created[0] != admin.UserID {
		t.Errorf("expected one session created for %s, got %v", admin.UserID, sessions.created)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	admin := newTestUser(t, "admin@example.com", "correct horse")
	sessions := &mockSessions{}
	service := NewService(&mockStore{users: []*User{admin}}, sessions)

	_, _, err := service.signIn(context.Background(), &SignInRequest{
		Email:    "admin@example.com",
		Password: "wrong horse",
	})
	if !errors.Is(err, servererrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if len(sessions.created) != 0 {
		t.Error("expected no session to be created on a failed sign in")
	}
}

func TestSignInUnknownEmail(t *testing.T) {
	service := NewService(&mockStore{}, &mockSessions{})

	_, _, err := service.signIn(context.Background(), &SignInRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, servererrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignOutDestroysSession(t *testing.T) {
	sessions := &mockSessions{}
	service := NewService(&mockStore{}, sessions)

	if err := service.signOut(context.Background(), "some-refresh-token"); err != nil {
		t.Fatalf("expected sign out to succeed, got %v", err)
	}

	if len(sessions.destroyed) != 1 || sessions.destroyed[0] != "some-refresh-token" {
		t.Errorf("expected the refresh token to be destroyed, got %v", sessions.destroyed)
	}
}

func TestGetUserNotFound(t *testing.T) {
	service := NewService(&mockStore{}, &mockSessions{})

	_, err := service.getUser(context.Background(), uuid.New())
	if !errors.Is(err, servererrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
