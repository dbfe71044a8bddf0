package jwks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/MicahParks/jwkset"
	"golang.org/x/time/rate"
)

const (
	requestTimeout = 10 * time.Second
	// rateLimitWait bounds how long a lookup waits for the unknown kid limiter.
	rateLimitWait = 2 * time.Second
)

// Options configures the remote key set.
type Options struct {
	URL             string
	RefreshInterval time.Duration
	Cooldown        time.Duration
}

// NewStorage returns a key set storage backed by the identity provider.
//
// The first download happens before NewStorage returns; its failure is logged,
// not returned. Keys are then reloaded every RefreshInterval until ctx is done.
// A lookup for an unknown kid downloads the set again at most once per Cooldown,
// on the context of that lookup.
func NewStorage(ctx context.Context, opts Options, logger *slog.Logger) (jwkset.Storage, error) {
	parsed, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("parse jwks url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("jwks url must be absolute")
	}
	endpoint := parsed.String()

	remote, err := jwkset.NewStorageFromHTTP(endpoint, jwkset.HTTPClientStorageOptions{
		Client:                    &http.Client{Transport: &Transport{Base: http.DefaultTransport, Logger: logger}},
		Ctx:                       ctx,
		HTTPTimeout:               requestTimeout,
		NoErrorReturnFirstHTTPReq: true,
		RefreshErrorHandler:       refreshErrorHandler(logger),
		RefreshInterval:           opts.RefreshInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("create jwks storage: %w", err)
	}

	storage, err := jwkset.NewHTTPClient(jwkset.HTTPClientOptions{
		HTTPURLs:          map[string]jwkset.Storage{endpoint: remote},
		RateLimitWaitMax:  rateLimitWait,
		RefreshUnknownKID: rate.NewLimiter(rate.Every(opts.Cooldown), 1),
	})
	if err != nil {
		return nil, fmt.Errorf("create jwks client: %w", err)
	}
	return storage, nil
}

func refreshErrorHandler(logger *slog.Logger) func(ctx context.Context, err error) {
	return func(ctx context.Context, err error) {
		if ctx.Err() != nil {
			return
		}
		var tm TooManyRequestsError
		if errors.As(err, &tm) {
			logger.Warn("jwks rate limited", slog.Duration("retry_after", tm.RetryAfter))
			return
		}
		logger.Error("jwks refresh failed", slog.String("error", err.Error()))
	}
}
