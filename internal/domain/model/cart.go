package model

import "time"

// Cart is the single shopping cart owned by a user.
type Cart struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is a product line in a cart.
type CartItem struct {
	ID        string
	CartID    string
	ProductID string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WishlistItem marks a product saved by a user.
type WishlistItem struct {
	ID        string
	UserID    string
	ProductID string
	CreatedAt time.Time
}
