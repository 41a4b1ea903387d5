package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, expiresAt, err := tm.Issue("a@x.com")
	require.NoError(t, err)
	assert.NotContains(t, token, " ")
	assert.NotContains(t, token, "\n")
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), expiresAt, 5*time.Second)

	subject, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestTokenExpiry(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)

	issued := time.Now()
	tm.now = func() time.Time { return issued }
	token, _, err := tm.Issue("a@x.com")
	require.NoError(t, err)

	// Just inside the TTL the token still parses.
	tm.now = func() time.Time { return issued.Add(29 * time.Minute) }
	subject, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)

	// Past the TTL it fails with the expiry kind, not a generic failure.
	tm.now = func() time.Time { return issued.Add(31 * time.Minute) }
	_, err = tm.Parse(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestTokenTamperedSignature(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, _, err := tm.Issue("a@x.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = tm.Parse(tampered)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestTokenTamperedSubject(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, _, err := tm.Issue("a@x.com")
	require.NoError(t, err)
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Re-encode the payload with a different subject but keep the original
	// signature: must never parse as the other subject.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin@x.com",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	forgedStr, err := forged.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)
	forgedParts := strings.Split(forgedStr, ".")

	spliced := forgedParts[0] + "." + forgedParts[1] + "." + parts[2]
	_, err = tm.Parse(spliced)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestTokenMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	for _, tokenStr := range []string{"", "garbage", "a.b", "not.a.jwt"} {
		_, err := tm.Parse(tokenStr)
		require.Error(t, err, "token %q", tokenStr)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", tokenStr)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 60)
	verifier := NewTokenManager("secret-b", 60)

	token, _, err := issuer.Issue("a@x.com")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestTokenRejectsUnexpectedAlgorithm(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Parse(tokenStr)
	require.Error(t, err)
	assert.True(t,
		errors.Is(err, ErrTokenSignatureInvalid) || errors.Is(err, ErrTokenMalformed),
		"alg=none token must be rejected, got %v", err)
}
