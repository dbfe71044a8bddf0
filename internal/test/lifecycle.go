package test

import (
	"context"
	"time"

	"go.uber.org/fx"
)

// LifecycleRecorder is an fx.Lifecycle that keeps hooks so tests can drive them.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// Start runs OnStart hooks in registration order and stops at the first failure.
func (l *LifecycleRecorder) Start(ctx context.Context) error {
	for _, h := range l.Hooks {
		if h.OnStart == nil {
			continue
		}
		if err := h.OnStart(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Stop runs OnStop hooks in reverse order and returns the first failure.
func (l *LifecycleRecorder) Stop(ctx context.Context) error {
	var first error
	for i := len(l.Hooks) - 1; i >= 0; i-- {
		if l.Hooks[i].OnStop == nil {
			continue
		}
		if err := l.Hooks[i].OnStop(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ShutdownerStub is an fx.Shutdowner that records shutdown requests.
type ShutdownerStub struct {
	requested chan struct{}
}

func NewShutdownerStub() *ShutdownerStub {
	return &ShutdownerStub{requested: make(chan struct{}, 1)}
}

func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	select {
	case s.requested <- struct{}{}:
	default:
	}
	return nil
}

// Requested waits up to timeout for a shutdown request.
func (s *ShutdownerStub) Requested(timeout time.Duration) bool {
	select {
	case <-s.requested:
		return true
	case <-time.After(timeout):
		return false
	}
}

var (
	_ fx.Lifecycle  = (*LifecycleRecorder)(nil)
	_ fx.Shutdowner = (*ShutdownerStub)(nil)
)
