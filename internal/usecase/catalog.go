package usecase

import (
	"context"
	"strings"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// CatalogUseCase manages products and their categories.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	validator  *Validator
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository, validator *Validator) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories, validator: validator}
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

func (u *CatalogUseCase) CreateProduct(ctx context.Context, in model.NewProduct) (*model.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := u.validator.NewProduct(in); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, in)
}

func (u *CatalogUseCase) UpdateProduct(ctx context.Context, id string, upd model.ProductUpdate) (*model.Product, error) {
	if err := u.validator.ProductUpdate(upd); err != nil {
		return nil, err
	}
	return u.products.Update(ctx, id, upd)
}

// DeleteProduct removes the product and returns what was deleted.
func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id string) (*model.Product, error) {
	return u.products.Delete(ctx, id)
}

func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

// CreateCategory stores a category, deriving the slug from the name when none is given.
func (u *CatalogUseCase) CreateCategory(ctx context.Context, in model.NewCategory) (*model.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if strings.TrimSpace(in.Slug) == "" {
		in.Slug = in.Name
	}
	in.Slug = Slugify(in.Slug)
	if err := u.validator.Category(in); err != nil {
		return nil, err
	}
	return u.categories.Create(ctx, in)
}

func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	return u.categories.Delete(ctx, id)
}
