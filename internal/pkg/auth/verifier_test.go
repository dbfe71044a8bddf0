package auth

import (
	"context"
	"crypto/elliptic"
	"errors"
	"testing"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(t *testing.T, jwks ...jwkset.JWK) (*JWTVerifier, jwkset.Storage) {
	t.Helper()
	storage := newMemoryStorage(t, jwks...)
	return NewJWTVerifier(newTestKeySet(t, storage), testIssuer, testAudience), storage
}

func TestJWTVerifierAcceptsValidToken(t *testing.T) {
	priv := newRSAKey(t)
	verifier, _ := newTestVerifier(t, newJWK(t, "k1", &priv.PublicKey, withAlg(jwkset.AlgRS256)))

	token := sign(t, jwt.SigningMethodRS256, "k1", validClaims("user-42"), priv)

	identity, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", identity.UserID)
	assert.Equal(t, "session-1", identity.SessionID)
	assert.Equal(t, "role-user", identity.RoleID)
	assert.Equal(t, "user@example.com", identity.Claims["email"])
	assert.NotContains(t, identity.Claims, "sub")
}

func TestJWTVerifierSupportsECAndEdDSA(t *testing.T) {
	ecPriv := newECKey(t, elliptic.P256())
	edPub, edPriv := newEd25519Key(t)
	verifier, _ := newTestVerifier(t,
		newJWK(t, "ec", &ecPriv.PublicKey),
		newJWK(t, "ed", edPub),
	)

	ecToken := sign(t, jwt.SigningMethodES256, "ec", validClaims("ec-user"), ecPriv)
	identity, err := verifier.Verify(context.Background(), ecToken)
	require.NoError(t, err)
	assert.Equal(t, "ec-user", identity.UserID)

	edToken := sign(t, jwt.SigningMethodEdDSA, "ed", validClaims("ed-user"), edPriv)
	identity, err = verifier.Verify(context.Background(), edToken)
	require.NoError(t, err)
	assert.Equal(t, "ed-user", identity.UserID)
}

func TestJWTVerifierRejectsInvalidTokens(t *testing.T) {
	priv := newRSAKey(t)
	other := newRSAKey(t)
	verifier, _ := newTestVerifier(t, newJWK(t, "k1", &priv.PublicKey, withAlg(jwkset.AlgRS256)))

	withClaim := func(key string, value any) jwt.MapClaims {
		claims := validClaims("user-1")
		if value == nil {
			delete(claims, key)
		} else {
			claims[key] = value
		}
		return claims
	}

	cases := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong issuer", token: sign(t, jwt.SigningMethodRS256, "k1", withClaim("iss", "http://evil"), priv)},
		{name: "missing issuer", token: sign(t, jwt.SigningMethodRS256, "k1", withClaim("iss", nil), priv)},
		{name: "wrong audience", token: sign(t, jwt.SigningMethodRS256, "k1", withClaim("aud", "http://other"), priv)},
		{name: "expired", token: sign(t, jwt.SigningMethodRS256, "k1", withClaim("exp", time.Now().Add(-time.Minute).Unix()), priv)},
		{name: "not yet valid", token: sign(t, jwt.SigningMethodRS256, "k1", withClaim("nbf", time.Now().Add(time.Hour).Unix()), priv)},
		{name: "missing subject", token: sign(t, jwt.SigningMethodRS256, "k1", withClaim("sub", nil), priv)},
		{name: "foreign signature", token: sign(t, jwt.SigningMethodRS256, "k1", validClaims("user-1"), other)},
		{name: "unknown kid", token: sign(t, jwt.SigningMethodRS256, "k9", validClaims("user-1"), priv)},
		{name: "symmetric algorithm", token: sign(t, jwt.SigningMethodHS256, "k1", validClaims("user-1"), []byte("secret"))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			identity, err := verifier.Verify(context.Background(), tc.token)
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestJWTVerifierKeyReadFailureIsInvalidToken(t *testing.T) {
	priv := newRSAKey(t)
	keys := newTestKeySet(t, failingStorage{Storage: jwkset.NewMemoryStorage(), err: errors.New("connection refused")})
	verifier := NewJWTVerifier(keys, testIssuer, testAudience)

	_, err := verifier.Verify(context.Background(), sign(t, jwt.SigningMethodRS256, "k1", validClaims("user-1"), priv))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifierAcceptsTokenWithoutKidForSoleKey(t *testing.T) {
	priv := newRSAKey(t)
	verifier, _ := newTestVerifier(t, newJWK(t, "k1", &priv.PublicKey))

	identity, err := verifier.Verify(context.Background(), sign(t, jwt.SigningMethodRS256, "", validClaims("user-1"), priv))
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
}

func TestJWTVerifierPicksUpRotatedKey(t *testing.T) {
	first := newRSAKey(t)
	second := newRSAKey(t)
	verifier, storage := newTestVerifier(t, newJWK(t, "k1", &first.PublicKey))

	_, err := verifier.Verify(context.Background(), sign(t, jwt.SigningMethodRS256, "k1", validClaims("user-1"), first))
	require.NoError(t, err)

	require.NoError(t, storage.KeyWrite(context.Background(), newJWK(t, "k2", &second.PublicKey)))

	identity, err := verifier.Verify(context.Background(), sign(t, jwt.SigningMethodRS256, "k2", validClaims("user-2"), second))
	require.NoError(t, err)
	assert.Equal(t, "user-2", identity.UserID)
}
