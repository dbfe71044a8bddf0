package handlers

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by middleware.
type AuthFacade interface {
	Authenticate(ctx context.Context, token string) (*model.Identity, error)
	Authorize(identity *model.Identity) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, in model.NewOrder) (*model.Order, error)
	MyOrders(ctx context.Context, userID string) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, id int64, requester *model.Identity) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus, note *string) (*model.Order, error)
}

// CartFacade provides shopping cart operations.
type CartFacade interface {
	Cart(ctx context.Context, userID string) (*model.Cart, []model.CartItem, error)
	AddCartItem(ctx context.Context, userID, productID string, quantity int) (*model.CartItem, error)
	UpdateCartItem(ctx context.Context, userID, itemID string, quantity int) (*model.CartItem, error)
	RemoveCartItem(ctx context.Context, userID, itemID string) error
	ClearCart(ctx context.Context, userID string) error
}

// WishlistFacade provides wishlist operations.
type WishlistFacade interface {
	Wishlist(ctx context.Context, userID string) ([]model.WishlistItem, error)
	AddToWishlist(ctx context.Context, userID, productID string) (*model.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, userID, productID string) error
}

// CatalogFacade provides product and category operations.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, in model.NewProduct) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, upd model.ProductUpdate) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) (*model.Product, error)
	Categories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, in model.NewCategory) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// HealthFacade reports whether backing services are reachable.
type HealthFacade interface {
	Ready(ctx context.Context) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	OrderFacade
	CartFacade
	WishlistFacade
	CatalogFacade
	HealthFacade
}
