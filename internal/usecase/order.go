package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders    repository.OrderRepository
	validator *Validator
	logger    *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, validator *Validator, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, validator: validator, logger: logger}
}

// Create validates and stores a new pending order for the caller.
// The supplied total is kept as given; a mismatch with the item sum is only logged.
func (u *OrderUseCase) Create(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	if err := u.validator.Order(in); err != nil {
		return nil, err
	}
	if in.ShippingAddress != nil {
		addr := normalizeAddress(*in.ShippingAddress)
		in.ShippingAddress = &addr
	}

	if sum := itemsTotal(in.Items); !sum.Equal(*in.TotalAmount) {
		u.logger.WarnContext(ctx, "order total differs from item sum",
			slog.String("user_id", in.UserID),
			slog.String("total", in.TotalAmount.StringFixed(2)),
			slog.String("items_sum", sum.StringFixed(2)),
		)
	}

	return u.orders.Create(ctx, in)
}

func itemsTotal(items []model.NewOrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

// ListByUser returns the caller's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListAll returns every order, newest first.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// Get returns an order visible to the requester. Orders of other users look missing to non-admins.
func (u *OrderUseCase) Get(ctx context.Context, id int64, requester model.Identity, admin bool) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !admin && order.UserID != requester.UserID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// UpdateStatus moves the order to status and records the transition. A blank note is stored as null.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, note *string) (*model.Order, error) {
	if err := u.validator.Status(status); err != nil {
		return nil, err
	}
	if note != nil && strings.TrimSpace(*note) == "" {
		note = nil
	}
	return u.orders.UpdateStatus(ctx, id, status, note)
}
