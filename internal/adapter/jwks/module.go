package jwks

import (
	"context"
	"log/slog"

	"github.com/MicahParks/jwkset"
	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
)

// Module exposes the remote key set storage to the fx graph.
var Module = fx.Provide(newStorage)

type storageParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// newStorage ties background refreshing to the application lifetime.
func newStorage(p storageParams) (jwkset.Storage, error) {
	ctx, cancel := context.WithCancel(p.Ctx)
	storage, err := NewStorage(ctx, Options{
		URL:             p.Config.JWKSURL,
		RefreshInterval: p.Config.JWKSRefreshInterval,
		Cooldown:        p.Config.JWKSCooldown,
	}, p.Logger)
	if err != nil {
		cancel()
		return nil, err
	}
	p.Lifecycle.Append(fx.StopHook(cancel))
	return storage, nil
}
