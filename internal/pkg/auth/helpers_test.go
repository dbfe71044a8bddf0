package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "http://localhost:3000"
	testAudience = "http://localhost:3000"
)

type keyOption func(*jwkset.JWKMetadataOptions)

func withUse(use jwkset.USE) keyOption {
	return func(m *jwkset.JWKMetadataOptions) { m.USE = use }
}

func withAlg(alg jwkset.ALG) keyOption {
	return func(m *jwkset.JWKMetadataOptions) { m.ALG = alg }
}

func newJWK(t *testing.T, kid string, pub any, opts ...keyOption) jwkset.JWK {
	t.Helper()
	meta := jwkset.JWKMetadataOptions{KID: kid, USE: jwkset.UseSig}
	for _, opt := range opts {
		opt(&meta)
	}
	jwk, err := jwkset.NewJWKFromKey(pub, jwkset.JWKOptions{Metadata: meta})
	require.NoError(t, err)
	return jwk
}

func newMemoryStorage(t *testing.T, keys ...jwkset.JWK) jwkset.Storage {
	t.Helper()
	storage := jwkset.NewMemoryStorage()
	for _, jwk := range keys {
		require.NoError(t, storage.KeyWrite(context.Background(), jwk))
	}
	return storage
}

// failingStorage reports err from every read.
type failingStorage struct {
	jwkset.Storage
	err error
}

func (s failingStorage) KeyRead(context.Context, string) (jwkset.JWK, error) {
	return jwkset.JWK{}, s.err
}

func (s failingStorage) KeyReadAll(context.Context) ([]jwkset.JWK, error) {
	return nil, s.err
}

func newTestKeySet(t *testing.T, storage jwkset.Storage) *KeySet {
	t.Helper()
	keys, err := NewKeySet(context.Background(), storage)
	require.NoError(t, err)
	return keys
}

func resolve(keys *KeySet, kid, alg string) (any, error) {
	token := &jwt.Token{
		Header: map[string]any{"alg": alg},
		Method: jwt.GetSigningMethod(alg),
	}
	if kid != "" {
		token.Header["kid"] = kid
	}
	return keys.Keyfunc(context.Background())(token)
}

func newRSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func newECKey(t *testing.T, curve elliptic.Curve) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	return key
}

func newEd25519Key(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return pub, priv
}

func validClaims(sub string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":       sub,
		"sessionId": "session-1",
		"roleId":    "role-user",
		"email":     "user@example.com",
		"iss":       testIssuer,
		"aud":       testAudience,
		"iat":       now.Unix(),
		"exp":       now.Add(time.Hour).Unix(),
	}
}

func sign(t *testing.T, method jwt.SigningMethod, kid string, claims jwt.MapClaims, key any) string {
	t.Helper()
	token := jwt.NewWithClaims(method, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}
