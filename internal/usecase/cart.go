package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// CartUseCase manages the single cart each user owns.
type CartUseCase struct {
	carts     repository.CartRepository
	validator *Validator
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, validator *Validator) *CartUseCase {
	return &CartUseCase{carts: carts, validator: validator}
}

// Get returns the user's cart with its lines, creating an empty cart on first access.
func (u *CartUseCase) Get(ctx context.Context, userID string) (*model.Cart, []model.CartItem, error) {
	cart, err := u.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	items, err := u.carts.Items(ctx, cart.ID)
	if err != nil {
		return nil, nil, err
	}
	return cart, items, nil
}

// AddItem puts quantity units of the product into the cart, merging with an existing line.
func (u *CartUseCase) AddItem(ctx context.Context, userID, productID string, quantity int) (*model.CartItem, error) {
	if err := u.validator.ProductID(productID); err != nil {
		return nil, err
	}
	if err := u.validator.CartQuantity(quantity); err != nil {
		return nil, err
	}

	cart, err := u.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.carts.AddItem(ctx, cart.ID, productID, quantity)
}

// UpdateItem sets the quantity of a line in the user's cart.
func (u *CartUseCase) UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*model.CartItem, error) {
	if err := u.validator.CartQuantity(quantity); err != nil {
		return nil, err
	}

	cart, err := u.existingCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, err := u.carts.UpdateItemQuantity(ctx, cart.ID, itemID, quantity)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return nil, domainErrors.ErrCartItemNotFound
	}
	return item, err
}

// RemoveItem deletes a line from the user's cart.
func (u *CartUseCase) RemoveItem(ctx context.Context, userID, itemID string) error {
	cart, err := u.existingCart(ctx, userID)
	if err != nil {
		return err
	}
	if err := u.carts.RemoveItem(ctx, cart.ID, itemID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.ErrCartItemNotFound
		}
		return err
	}
	return nil
}

// Clear removes every line from the user's cart.
func (u *CartUseCase) Clear(ctx context.Context, userID string) error {
	cart, err := u.existingCart(ctx, userID)
	if err != nil {
		return err
	}
	return u.carts.Clear(ctx, cart.ID)
}

func (u *CartUseCase) existingCart(ctx context.Context, userID string) (*model.Cart, error) {
	cart, err := u.carts.GetByUser(ctx, userID)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return nil, domainErrors.ErrCartNotFound
	}
	return cart, err
}
