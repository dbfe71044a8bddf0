package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/adapter/jwks"
	"github.com/polkiloo/storefront/internal/app"
	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/logger"
	"github.com/polkiloo/storefront/internal/metrics"
	"github.com/polkiloo/storefront/internal/pkg/auth"
	"github.com/polkiloo/storefront/internal/server/http/handlers"
	"github.com/polkiloo/storefront/internal/server/http/router"
	"github.com/polkiloo/storefront/internal/storage/postgres"
	"github.com/polkiloo/storefront/internal/usecase"
)

// Module assembles the full graph of one service binary. The caller supplies
// config.Service and a root context.Context.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		postgres.Module,
		jwks.Module,
		auth.Module,
		usecase.Module,
		fx.Provide(func(f *app.ShopFacade) handlers.ShopFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
