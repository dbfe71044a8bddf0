package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.CartRepository { return s.Carts() },
		func(s *Storage) repository.WishlistRepository { return s.Wishlists() },
		func(s *Storage) repository.ProductRepository { return s.Products() },
		func(s *Storage) repository.CategoryRepository { return s.Categories() },
		func(s *Storage) repository.HealthChecker { return s },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Config.Service, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
