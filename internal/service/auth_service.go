package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"revos/internal/config"
	"revos/internal/domain"
)

// Claims represents the JWT claims carried by automation client tokens.
type Claims struct {
	jwt.RegisteredClaims
	ClientID string `json:"client_id"`
}

// TokenOutput holds an issued access token.
type TokenOutput struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// TokenInput is the DTO for the client-credentials exchange.
type TokenInput struct {
	ClientID     string `json:"client_id" binding:"required"`
	ClientSecret string `json:"client_secret" binding:"required"`
}

// AuthService authenticates automation clients and validates their tokens.
type AuthService interface {
	Token(ctx context.Context, input TokenInput) (*TokenOutput, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	auth config.AuthConfig
	jwt  config.JWTConfig
}

// NewAuthService creates a new AuthService implementation.
func NewAuthService(auth config.AuthConfig, jwtCfg config.JWTConfig) AuthService {
	return &authService{auth: auth, jwt: jwtCfg}
}

// Token exchanges a client ID and secret for a signed access token. The
// configured secret hash is bcrypt; the plaintext secret is never stored.
func (s *authService) Token(_ context.Context, input TokenInput) (*TokenOutput, error) {
	if input.ClientID != s.auth.ClientID {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.auth.SecretHash), []byte(input.ClientSecret)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	expiry := now.Add(s.jwt.AccessTokenExpiry)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   input.ClientID,
			Issuer:    s.jwt.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			ID:        uuid.New().String(),
		},
		ClientID: input.ClientID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwt.Secret))
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	return &TokenOutput{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiry,
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwt.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
