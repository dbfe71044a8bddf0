package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := di.Run(ctx, config.ServiceCart)
	stop()
	os.Exit(code)
}
