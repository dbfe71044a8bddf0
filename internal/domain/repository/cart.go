package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// CartRepository describes persistence operations for carts and their lines.
type CartRepository interface {
	GetByUser(ctx context.Context, userID string) (*model.Cart, error)
	GetOrCreate(ctx context.Context, userID string) (*model.Cart, error)
	Items(ctx context.Context, cartID string) ([]model.CartItem, error)
	AddItem(ctx context.Context, cartID, productID string, quantity int) (*model.CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int) (*model.CartItem, error)
	RemoveItem(ctx context.Context, cartID, itemID string) error
	Clear(ctx context.Context, cartID string) error
}

// WishlistRepository describes persistence operations for wishlist entries.
type WishlistRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.WishlistItem, error)
	Add(ctx context.Context, userID, productID string) (*model.WishlistItem, error)
	Remove(ctx context.Context, userID, productID string) error
}
