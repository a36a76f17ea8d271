package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"revos/internal/config"
	"revos/internal/domain"
	"revos/internal/service"
)

func newAuthService(t *testing.T) service.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return service.NewAuthService(
		config.AuthConfig{ClientID: "revit-bridge", SecretHash: string(hash)},
		config.JWTConfig{Secret: "test-signing-key", AccessTokenExpiry: time.Hour, Issuer: "revos-test"},
	)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newAuthService(t)

	out, err := svc.Token(context.Background(), service.TokenInput{
		ClientID:     "revit-bridge",
		ClientSecret: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.NotEmpty(t, out.AccessToken)

	claims, err := svc.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "revit-bridge", claims.ClientID)
	assert.Equal(t, "revos-test", claims.Issuer)
}

func TestAuthService_Token_WrongSecret(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Token(context.Background(), service.TokenInput{
		ClientID:     "revit-bridge",
		ClientSecret: "nope",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Token_UnknownClient(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Token(context.Background(), service.TokenInput{
		ClientID:     "someone-else",
		ClientSecret: "s3cret",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
