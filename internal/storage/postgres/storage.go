package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

const uniqueViolation = "23505"

type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// querier is satisfied by both the pool and an open transaction.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool    pgxPool
	service config.Service
}

type orderRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

type wishlistRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type categoryRepository struct {
	storage *Storage
}

var (
	_ repository.Factory       = (*Storage)(nil)
	_ repository.HealthChecker = (*Storage)(nil)
)

// New connects to dsn and creates the tables owned by service.
func New(ctx context.Context, dsn string, service config.Service, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, service: service}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info("database schema ready", slog.String("service", service.Name()))

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Wishlists() repository.WishlistRepository {
	return &wishlistRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Categories() repository.CategoryRepository {
	return &categoryRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements(s.service) {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
