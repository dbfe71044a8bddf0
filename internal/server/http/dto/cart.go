package dto

import "time"

// AddCartItemRequest describes a product put into the cart. Quantity defaults to 1.
type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity,omitempty"`
}

// UpdateCartItemRequest sets the quantity of an existing line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse bundles the cart with its lines.
type CartResponse struct {
	Cart  CartInfo           `json:"cart"`
	Items []CartItemResponse `json:"items"`
}

type CartInfo struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CartItemResponse struct {
	ID        string    `json:"id"`
	CartID    string    `json:"cartId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WishlistRequest describes a product saved to the wishlist.
type WishlistRequest struct {
	ProductID string `json:"productId"`
}

type WishlistItemResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}
