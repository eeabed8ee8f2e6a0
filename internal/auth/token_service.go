package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims are the custom claims carried by both access and refresh
// tokens. EntityType distinguishes what kind of principal the token was
// issued for (currently only "admin").
type TokenClaims struct {
	EntityID   string `json:"entityID"`
	EntityType string `json:"entityType"`
	jwt.RegisteredClaims
}

type TokenService struct {
	accessTokenSecret        []byte
	refreshTokenSecret       []byte
	accessTokenExpiryInSecs  int
	refreshTokenExpiryInSecs int
}

func NewTokenService(
	accessTokenSecret string,
	refreshTokenSecret string,
	accessTokenExpiryInSecs int,
	refreshTokenExpiryInSecs int,
) *TokenService {
	return &TokenService{
		accessTokenSecret:        []byte(accessTokenSecret),
		refreshTokenSecret:       []byte(refreshTokenSecret),
		accessTokenExpiryInSecs:  accessTokenExpiryInSecs,
		refreshTokenExpiryInSecs: refreshTokenExpiryInSecs,
	}
}

func (t *TokenService) GenerateAccessToken(entityID, entityType string) (string, error) {
	return t.generateToken(
		entityID,
		entityType,
		t.accessTokenSecret,
		t.accessTokenExpiryInSecs,
	)
}

func (t *TokenService) GenerateRefreshToken(entityID, entityType string) (string, error) {
	return t.generateToken(
		entityID,
		entityType,
		t.refreshTokenSecret,
		t.refreshTokenExpiryInSecs,
	)
}

func (t *TokenService) ValidateAccessToken(tokenStr string) (isValid bool, claims *TokenClaims, err error) {
	return t.validateToken(tokenStr, t.accessTokenSecret)
}

func (t *TokenService) ValidateRefreshToken(tokenStr string) (isValid bool, claims *TokenClaims, err error) {
	return t.validateToken(tokenStr, t.refreshTokenSecret)
}

func (t *TokenService) AccessTokenExpiryInSecs() int {
	return t.accessTokenExpiryInSecs
}

func (t *TokenService) RefreshTokenExpiryInSecs() int {
	return t.refreshTokenExpiryInSecs
}

func (t *TokenService) generateToken(entityID, entityType string, secret []byte, expiryInSecs int) (string, error) {
	now := time.Now()

	claims := &TokenClaims{
		EntityID:   entityID,
		EntityType: entityType,
		RegisteredClaims: jwt.RegisteredClaims{
			// unique per token so two tokens minted in the same
			// second never collide
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(
				now.Add(time.Duration(expiryInSecs) * time.Second),
			),
		},
	}

	tokenStr, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		claims,
	).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenStr, nil
}

func (t *TokenService) validateToken(tokenStr string, secret []byte) (bool, *TokenClaims, error) {
	claims := new(TokenClaims)

	token, err := jwt.ParseWithClaims(
		tokenStr,
		claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf(
					"unexpected signing method: %v",
					token.Header["alg"],
				)
			}
			return secret, nil
		},
	)
	if err != nil {
		// expired or malformed tokens are an invalid result, not a server error
		if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenMalformed) || errors.Is(err, jwt.ErrSignatureInvalid) {
			return false, nil, nil
		}

		return false, nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return false, nil, nil
	}

	return true, claims, nil
}
