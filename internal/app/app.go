package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
)

// Module wires the shop facade, the HTTP server and its lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewShopFacade,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: p.Config.RequestTimeout,
	}
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

// registerLifecycle binds the listener during start so a busy or malformed
// address fails the application instead of a background goroutine.
func registerLifecycle(p lifecycleParams) {
	name := p.Config.Service.Name()

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", p.Server.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", p.Server.Addr, err)
			}
			p.Logger.Info(name+" listening", slog.String("addr", ln.Addr().String()))

			go func() {
				if err := p.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
				defer cancel()
			}

			if err := p.Server.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown %s: %w", name, err)
			}
			p.Logger.Info(name + " stopped")
			return nil
		},
	})
}
