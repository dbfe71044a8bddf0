package auth

import (
	"context"
	"crypto"
	"errors"
	"fmt"
	"slices"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// ErrKeyNotFound reports that no key in the set matches the token.
var ErrKeyNotFound = errors.New("signing key not found")

// signingUses admits keys marked for signatures and keys without a "use" member.
var signingUses = []jwkset.USE{"", jwkset.UseSig}

// KeySet resolves verification keys from a JWK Set storage.
type KeySet struct {
	storage jwkset.Storage
	byKID   keyfunc.Keyfunc
}

// NewKeySet wraps storage. Lookups by kid go through keyfunc, which enforces
// the "alg" and "use" members of the stored key.
func NewKeySet(ctx context.Context, storage jwkset.Storage) (*KeySet, error) {
	kf, err := keyfunc.New(keyfunc.Options{
		Ctx:          ctx,
		Storage:      storage,
		UseWhitelist: signingUses,
	})
	if err != nil {
		return nil, fmt.Errorf("create keyfunc: %w", err)
	}
	return &KeySet{storage: storage, byKID: kf}, nil
}

// Len returns the number of signing keys currently held.
func (s *KeySet) Len(ctx context.Context) (int, error) {
	keys, err := s.signingKeys(ctx)
	return len(keys), err
}

// Keyfunc resolves token signing keys for jwt parsing.
// A token without kid only matches a set holding exactly one signing key.
func (s *KeySet) Keyfunc(ctx context.Context) jwt.Keyfunc {
	byKID := s.byKID.KeyfuncCtx(ctx)
	return func(token *jwt.Token) (any, error) {
		if kid, _ := token.Header["kid"].(string); kid != "" {
			return byKID(token)
		}
		return s.soleKey(ctx, token.Method.Alg())
	}
}

func (s *KeySet) soleKey(ctx context.Context, alg string) (any, error) {
	keys, err := s.signingKeys(ctx)
	if err != nil {
		return nil, err
	}
	if len(keys) != 1 {
		return nil, ErrKeyNotFound
	}

	jwk := keys[0]
	if keyAlg := jwk.Marshal().ALG; keyAlg != "" && string(keyAlg) != alg {
		return nil, fmt.Errorf("key algorithm %s does not match token algorithm %s", keyAlg, alg)
	}
	key := jwk.Key()
	if private, ok := key.(interface{ Public() crypto.PublicKey }); ok {
		key = private.Public()
	}
	return key, nil
}

func (s *KeySet) signingKeys(ctx context.Context) ([]jwkset.JWK, error) {
	all, err := s.storage.KeyReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read key set: %w", err)
	}
	keys := make([]jwkset.JWK, 0, len(all))
	for _, jwk := range all {
		if slices.Contains(signingUses, jwk.Marshal().USE) {
			keys = append(keys, jwk)
		}
	}
	return keys, nil
}
