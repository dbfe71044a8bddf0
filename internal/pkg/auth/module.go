package auth

import (
	"context"

	"github.com/MicahParks/jwkset"
	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
)

// Module provides token verification and role checks via fx.
// The graph must supply a jwkset.Storage and a context.Context.
var Module = fx.Options(
	fx.Provide(newKeySet),
	fx.Provide(newVerifier),
	fx.Provide(newRoleGate),
)

type keySetParams struct {
	fx.In

	Ctx     context.Context
	Storage jwkset.Storage
}

func newKeySet(p keySetParams) (*KeySet, error) {
	return NewKeySet(p.Ctx, p.Storage)
}

type verifierParams struct {
	fx.In

	Config *config.Config
	Keys   *KeySet
}

func newVerifier(p verifierParams) Verifier {
	return NewJWTVerifier(p.Keys, p.Config.JWTIssuer, p.Config.JWTAudience)
}

func newRoleGate(cfg *config.Config) *RoleGate {
	return NewRoleGate(cfg.AdminRoleID)
}
