package di

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/fx"
)

func TestRunStopsWhenContextIsDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stopped := false
	app := fx.New(
		fx.NopLogger,
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{OnStop: func(context.Context) error {
				stopped = true
				return nil
			}})
		}),
	)
	time.AfterFunc(20*time.Millisecond, cancel)

	var stderr bytes.Buffer
	if code := run(ctx, app, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d (%s)", code, stderr.String())
	}
	if !stopped {
		t.Fatal("expected stop hooks to run")
	}
}

func TestRunReportsStartFailure(t *testing.T) {
	app := fx.New(
		fx.NopLogger,
		fx.Invoke(func() error { return errors.New("boom") }),
	)

	var stderr bytes.Buffer
	if code := run(context.Background(), app, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "failed to start application") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestRunReportsStopFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	app := fx.New(
		fx.NopLogger,
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{OnStop: func(context.Context) error { return errors.New("stuck") }})
		}),
	)
	time.AfterFunc(20*time.Millisecond, cancel)

	var stderr bytes.Buffer
	if code := run(ctx, app, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "failed to stop application") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}
