package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ProductRepository describes persistence operations for catalog products.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, product model.NewProduct) (*model.Product, error)
	Update(ctx context.Context, id string, update model.ProductUpdate) (*model.Product, error)
	Delete(ctx context.Context, id string) (*model.Product, error)
}

// CategoryRepository describes persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, category model.NewCategory) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}
