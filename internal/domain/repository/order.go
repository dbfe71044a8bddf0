package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// OrderRepository describes persistence operations with order aggregates.
type OrderRepository interface {
	Create(ctx context.Context, order model.NewOrder) (*model.Order, error)
	GetByID(ctx context.Context, orderID int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, note *string) (*model.Order, error)
}
