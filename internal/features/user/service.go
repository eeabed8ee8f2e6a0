package user

import (
	"context"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/features/session"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Storer interface {
	findByEmail(ctx context.Context, email string) (*User, error)
	findByID(ctx context.Context, userID uuid.UUID) (*User, error)
}

type sessioner interface {
	Create(ctx context.Context, userID uuid.UUID) (*session.TokenPair, error)
	Renew(ctx context.Context, refreshToken string) (*session.TokenPair, error)
	Destroy(ctx context.Context, refreshToken string) error
}

type Service struct {
	store    Storer
	sessions sessioner
}

func NewService(store Storer, sessions sessioner) *Service {
	return &Service{
		store:    store,
		sessions: sessions,
	}
}

func (s *Service) signIn(ctx context.Context, payload *SignInRequest) (*User, *session.TokenPair, error) {
	user, err := s.store.findByEmail(ctx, payload.Email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, servererrors.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(payload.Password),
	)
	if err != nil {
		return nil, nil, servererrors.ErrInvalidCredentials
	}

	tokens, err := s.sessions.Create(ctx, user.UserID)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

func (s *Service) signOut(ctx context.Context, refreshToken string) error {
	return s.sessions.Destroy(ctx, refreshToken)
}

func (s *Service) refresh(ctx context.Context, refreshToken string) (*session.TokenPair, error) {
	return s.sessions.Renew(ctx, refreshToken)
}

func (s *Service) getUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	user, err := s.store.findByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, servererrors.ErrUserNotFound
	}

	return user, nil
}
