package session

import (
	"context"
	"fmt"
	"time"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/auth"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/servererrors"
	"github.com/google/uuid"
)

type Storer interface {
	createOne(ctx context.Context, userID uuid.UUID, refreshToken string, expiresAt time.Time) error
	findByToken(ctx context.Context, refreshToken string) (*Session, error)
	deleteByToken(ctx context.Context, refreshToken string) error
}

type Service struct {
	store        Storer
	tokenService *auth.TokenService
}

func NewService(store Storer, tokenService *auth.TokenService) *Service {
	return &Service{
		store:        store,
		tokenService: tokenService,
	}
}

// TokenPair is an access token and the refresh token backing it.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Create issues a new token pair for userID and persists the refresh
// side so it can be rotated or revoked later.
func (s *Service) Create(ctx context.Context, userID uuid.UUID) (*TokenPair, error) {
	accessToken, err := s.tokenService.GenerateAccessToken(userID.String(), "admin")
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenService.GenerateRefreshToken(userID.String(), "admin")
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().Add(
		time.Duration(s.tokenService.RefreshTokenExpiryInSecs()) * time.Second,
	)

	err = s.store.createOne(ctx, userID, refreshToken, expiresAt)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Renew rotates the given refresh token, revoking it and issuing a
// fresh pair for the same user.
func (s *Service) Renew(ctx context.Context, refreshToken string) (*TokenPair, error) {
	ok, claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, servererrors.ErrUnauthorized
	}

	session, err := s.store.findByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, servererrors.ErrSessionNotFound
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.store.deleteByToken(ctx, refreshToken)
		return nil, servererrors.ErrSessionNotFound
	}

	userID, err := uuid.Parse(claims.EntityID)
	if err != nil {
		return nil, servererrors.ErrUnauthorized
	}

	err = s.store.deleteByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	return s.Create(ctx, userID)
}

// Destroy revokes the given refresh token. Unknown tokens are not an
// error; sign-out is idempotent.
func (s *Service) Destroy(ctx context.Context, refreshToken string) error {
	return s.store.deleteByToken(ctx, refreshToken)
}
