package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/config"
)

func TestJWTIssueAndValidate(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpDays: 30})

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "secret-a"})
	validator := NewJWTService(config.JWTConfig{Secret: "secret-b"})

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = validator.Validate(token)
	require.Error(t, err)
}

func TestJWTValidateRejectsGarbage(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret"})
	_, err := svc.Validate("not.a.token")
	require.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(config.PasswordConfig{BcryptCost: 4})

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	require.NoError(t, hasher.Compare(hash, "secret123"))
	require.Error(t, hasher.Compare(hash, "wrong"))
}
