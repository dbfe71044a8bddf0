package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Service identifies which HTTP surface a binary exposes.
type Service string

const (
	ServiceOrders  Service = "order"
	ServiceCart    Service = "cart"
	ServiceCatalog Service = "product"
)

// Name returns the identity reported by the health endpoint.
func (s Service) Name() string {
	return string(s) + "-service"
}

// DefaultAddress returns the listen address used when none is configured.
func (s Service) DefaultAddress() string {
	switch s {
	case ServiceCatalog:
		return ":3001"
	case ServiceCart:
		return ":3002"
	case ServiceOrders:
		return ":3003"
	default:
		return ":8080"
	}
}

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	Service             Service
	RunAddress          string
	DatabaseURI         string
	JWKSURL             string
	JWTIssuer           string
	JWTAudience         string
	AdminRoleID         string
	JWKSRefreshInterval time.Duration
	JWKSCooldown        time.Duration
	RequestTimeout      time.Duration
	ShutdownTimeout     time.Duration
	LogLevel            slog.Level
}

const (
	defaultJWKSURL             = "http://localhost:3000/api/auth/jwks"
	defaultJWTIssuer           = "http://localhost:3000"
	defaultJWTAudience         = "http://localhost:3000"
	defaultAdminRoleID         = "9f28d6c7-9519-4598-b80c-783515456f43"
	defaultJWKSRefreshInterval = 10 * time.Minute
	defaultJWKSCooldown        = 30 * time.Second
	defaultRequestTimeout      = 10 * time.Second
	defaultShutdownTimeout     = 10 * time.Second
	defaultLogLevel            = "info"
	dotenvFile                 = ".env"
)

// Load parses configuration for service from .env, environment variables and flags.
func Load(service Service) (*Config, error) {
	if err := loadDotenv(dotenvFile); err != nil {
		return nil, err
	}
	return load(service, os.Args[1:], os.LookupEnv)
}

// loadDotenv exports variables from path without overriding the real environment.
// A missing file is not an error.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

type envLookup func(string) (string, bool)

func load(service Service, args []string, lookup envLookup) (*Config, error) {
	runAddress := getString(lookup, "RUN_ADDRESS", "")
	if runAddress == "" {
		if port := getString(lookup, "PORT", ""); port != "" {
			runAddress = ":" + strings.TrimPrefix(port, ":")
		} else {
			runAddress = service.DefaultAddress()
		}
	}

	databaseURI := getString(lookup, "DATABASE_URI", "")
	if databaseURI == "" {
		databaseURI = getString(lookup, "DATABASE_URL", "")
	}

	cfg := &Config{
		Service:     service,
		RunAddress:  runAddress,
		DatabaseURI: databaseURI,
		JWKSURL:     getString(lookup, "JWKS_URL", defaultJWKSURL),
		JWTIssuer:   getString(lookup, "JWT_ISSUER", defaultJWTIssuer),
		JWTAudience: getString(lookup, "JWT_AUDIENCE", defaultJWTAudience),
		AdminRoleID: getString(lookup, "ADMIN_ROLE_ID", defaultAdminRoleID),
	}

	flags := flag.NewFlagSet(service.Name(), flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		refreshStr  = getString(lookup, "JWKS_REFRESH_INTERVAL", defaultJWKSRefreshInterval.String())
		cooldownStr = getString(lookup, "JWKS_COOLDOWN", defaultJWKSCooldown.String())
		requestStr  = getString(lookup, "REQUEST_TIMEOUT", defaultRequestTimeout.String())
		shutdownStr = getString(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())
		levelStr    = getString(lookup, "LOG_LEVEL", defaultLogLevel)
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	flags.StringVar(&cfg.JWKSURL, "jwks-url", cfg.JWKSURL, "JSON Web Key Set URL")
	flags.StringVar(&cfg.JWTIssuer, "jwt-issuer", cfg.JWTIssuer, "Expected token issuer")
	flags.StringVar(&cfg.JWTAudience, "jwt-audience", cfg.JWTAudience, "Expected token audience")
	flags.StringVar(&cfg.AdminRoleID, "admin-role", cfg.AdminRoleID, "Role identifier granted admin access")
	flags.StringVar(&refreshStr, "jwks-refresh", refreshStr, "Interval between key set refreshes")
	flags.StringVar(&cooldownStr, "jwks-cooldown", cooldownStr, "Minimum gap between on-demand key set refreshes")
	flags.StringVar(&requestStr, "request-timeout", requestStr, "Per-request deadline")
	flags.StringVar(&shutdownStr, "shutdown-timeout", shutdownStr, "Graceful shutdown timeout")
	flags.StringVar(&levelStr, "log-level", levelStr, "Log level (debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.JWKSRefreshInterval, err = time.ParseDuration(refreshStr); err != nil {
		return nil, fmt.Errorf("invalid jwks refresh interval: %w", err)
	}

	if cfg.JWKSCooldown, err = time.ParseDuration(cooldownStr); err != nil {
		return nil, fmt.Errorf("invalid jwks cooldown: %w", err)
	}

	if cfg.RequestTimeout, err = time.ParseDuration(requestStr); err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if cfg.JWKSRefreshInterval <= 0 {
		cfg.JWKSRefreshInterval = defaultJWKSRefreshInterval
	}

	if cfg.JWKSCooldown <= 0 {
		cfg.JWKSCooldown = defaultJWKSCooldown
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.JWKSURL == "" {
		return nil, fmt.Errorf("jwks url must be provided")
	}

	if cfg.AdminRoleID == "" {
		return nil, fmt.Errorf("admin role id must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}
