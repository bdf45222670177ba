package jwtinfra

import (
	"testing"
	"time"

	"github.com/deckmatch/feature-matrix/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(expiry time.Duration) *Provider {
	return NewProvider(&config.Config{
		JWTSecret:   "test-secret",
		TokenExpiry: expiry,
	})
}

func TestSignVerify_RoundTrip(t *testing.T) {
	p := newTestProvider(time.Hour)

	signed, err := p.Sign("u1", "a@deckmatch.com")
	require.NoError(t, err)

	claims, err := p.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "a@deckmatch.com", claims.Email)
}

func TestVerify_Malformed(t *testing.T) {
	p := newTestProvider(time.Hour)

	_, err := p.Verify("not-a-real-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := newTestProvider(time.Hour).Sign("u1", "a@deckmatch.com")
	require.NoError(t, err)

	other := NewProvider(&config.Config{JWTSecret: "different-secret", TokenExpiry: time.Hour})
	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	p := newTestProvider(-time.Hour) // already expired at issuance

	signed, err := p.Sign("u1", "a@deckmatch.com")
	require.NoError(t, err)

	_, err = p.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsUnexpectedSigningMethod(t *testing.T) {
	// A token declaring alg=none must not pass even with a matching payload.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	p := newTestProvider(time.Hour)
	_, err = p.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_FailuresAreIndistinguishable(t *testing.T) {
	p := newTestProvider(time.Hour)
	expired := newTestProvider(-time.Hour)
	wrongKey := NewProvider(&config.Config{JWTSecret: "other", TokenExpiry: time.Hour})

	expiredTok, err := expired.Sign("u1", "a@deckmatch.com")
	require.NoError(t, err)
	foreignTok, err := wrongKey.Sign("u1", "a@deckmatch.com")
	require.NoError(t, err)

	for _, tok := range []string{"garbage", expiredTok, foreignTok} {
		_, err := p.Verify(tok)
		assert.Equal(t, ErrInvalidToken, err)
	}
}
