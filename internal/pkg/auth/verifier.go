package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ErrInvalidToken is returned for every token that fails verification.
var ErrInvalidToken = errors.New("invalid auth token")

const (
	claimSessionID = "sessionId"
	claimRoleID    = "roleId"
)

var signingMethods = []string{
	"RS256", "RS384", "RS512",
	"PS256", "PS384", "PS512",
	"ES256", "ES384", "ES512",
	"EdDSA",
}

// Verifier turns a bearer token into a verified identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*model.Identity, error)
}

// JWTVerifier validates asymmetric JWTs against a KeySet with fixed issuer and audience.
type JWTVerifier struct {
	keys   *KeySet
	parser *jwt.Parser
}

// NewJWTVerifier constructs JWTVerifier. Empty issuer or audience disables that check.
func NewJWTVerifier(keys *KeySet, issuer, audience string) *JWTVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(signingMethods),
		jwt.WithIssuedAt(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	return &JWTVerifier{keys: keys, parser: jwt.NewParser(opts...)}
}

// Verify checks signature and registered claims. Any failure wraps ErrInvalidToken.
func (v *JWTVerifier) Verify(ctx context.Context, raw string) (*model.Identity, error) {
	claims := jwt.MapClaims{}
	if _, err := v.parser.ParseWithClaims(raw, claims, v.keys.Keyfunc(ctx)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	identity := &model.Identity{
		UserID:    sub,
		SessionID: stringClaim(claims, claimSessionID),
		RoleID:    stringClaim(claims, claimRoleID),
		Claims:    make(map[string]any, len(claims)),
	}
	for k, val := range claims {
		switch k {
		case "sub", claimSessionID, claimRoleID:
		default:
			identity.Claims[k] = val
		}
	}
	return identity, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
