package usecase

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// WishlistUseCase manages products saved for later.
type WishlistUseCase struct {
	wishlists repository.WishlistRepository
	validator *Validator
}

// NewWishlistUseCase constructs WishlistUseCase.
func NewWishlistUseCase(wishlists repository.WishlistRepository, validator *Validator) *WishlistUseCase {
	return &WishlistUseCase{wishlists: wishlists, validator: validator}
}

func (u *WishlistUseCase) List(ctx context.Context, userID string) ([]model.WishlistItem, error) {
	return u.wishlists.ListByUser(ctx, userID)
}

// Add saves the product; saving it twice yields ErrAlreadyExists.
func (u *WishlistUseCase) Add(ctx context.Context, userID, productID string) (*model.WishlistItem, error) {
	if err := u.validator.ProductID(productID); err != nil {
		return nil, err
	}
	return u.wishlists.Add(ctx, userID, productID)
}

func (u *WishlistUseCase) Remove(ctx context.Context, userID, productID string) error {
	return u.wishlists.Remove(ctx, userID, productID)
}
