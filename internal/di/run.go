package di

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
)

// Run builds the graph for service, starts it and blocks until ctx is done or
// the application requests shutdown. It returns the process exit code.
func Run(ctx context.Context, service config.Service, opts ...fx.Option) int {
	app := fx.New(
		fx.Provide(func() context.Context { return ctx }),
		fx.Supply(service),
		Module(opts...),
	)
	return run(ctx, app, os.Stderr)
}

func run(ctx context.Context, app *fx.App, stderr io.Writer) int {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "failed to start application: %v\n", err)
		return 1
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()

	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(stderr, "failed to stop application: %v\n", err)
		return 1
	}
	return 0
}
