package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestIssueAndValidate_RoundTrip(t *testing.T) {
	cfg := Config{SecretKey: testSecret, Issuer: "orgchart-backend"}

	issuer, err := NewIssuer(cfg)
	require.NoError(t, err)
	validator, err := NewValidator(cfg)
	require.NoError(t, err)

	token, err := issuer.Issue("session-42")
	require.NoError(t, err)

	claims, err := validator.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "session-42", claims.SessionID)
	assert.Equal(t, "orgchart-backend", claims.Issuer)
}

func TestValidate_StripsBearerPrefix(t *testing.T) {
	cfg := Config{SecretKey: testSecret}
	issuer, _ := NewIssuer(cfg)
	validator, _ := NewValidator(cfg)

	token, err := issuer.Issue("s1")
	require.NoError(t, err)

	claims, err := validator.Validate("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "s1", claims.SessionID)
}

func TestValidate_RejectsWrongSecret(t *testing.T) {
	issuer, _ := NewIssuer(Config{SecretKey: testSecret})
	validator, _ := NewValidator(Config{SecretKey: "other-secret"})

	token, err := issuer.Issue("s1")
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidate_RejectsWrongIssuer(t *testing.T) {
	issuer, _ := NewIssuer(Config{SecretKey: testSecret, Issuer: "someone-else"})
	validator, _ := NewValidator(Config{SecretKey: testSecret, Issuer: "orgchart-backend"})

	token, err := issuer.Issue("s1")
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestValidate_RejectsExpiredToken(t *testing.T) {
	issuer, _ := NewIssuer(Config{SecretKey: testSecret, Expiry: -time.Minute})
	validator, _ := NewValidator(Config{SecretKey: testSecret})

	token, err := issuer.Issue("s1")
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidate_RejectsEmptyToken(t *testing.T) {
	validator, _ := NewValidator(Config{SecretKey: testSecret})

	_, err := validator.Validate("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestNewValidator_RequiresSecret(t *testing.T) {
	_, err := NewValidator(Config{})
	assert.Error(t, err)
}
