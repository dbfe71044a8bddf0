package app

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	"github.com/polkiloo/storefront/internal/pkg/auth"
	"github.com/polkiloo/storefront/internal/usecase"
)

// ShopFacade is the single entry point of the HTTP layer into the application.
type ShopFacade struct {
	verifier auth.Verifier
	gate     *auth.RoleGate
	orders   *usecase.OrderUseCase
	carts    *usecase.CartUseCase
	wishlist *usecase.WishlistUseCase
	catalog  *usecase.CatalogUseCase
	health   repository.HealthChecker
}

// NewShopFacade constructs ShopFacade.
func NewShopFacade(
	verifier auth.Verifier,
	gate *auth.RoleGate,
	orders *usecase.OrderUseCase,
	carts *usecase.CartUseCase,
	wishlist *usecase.WishlistUseCase,
	catalog *usecase.CatalogUseCase,
	health repository.HealthChecker,
) *ShopFacade {
	return &ShopFacade{
		verifier: verifier,
		gate:     gate,
		orders:   orders,
		carts:    carts,
		wishlist: wishlist,
		catalog:  catalog,
		health:   health,
	}
}

func (f *ShopFacade) Authenticate(ctx context.Context, token string) (*model.Identity, error) {
	return f.verifier.Verify(ctx, token)
}

func (f *ShopFacade) Authorize(identity *model.Identity) error {
	return f.gate.Authorize(identity)
}

func (f *ShopFacade) Ready(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

func (f *ShopFacade) CreateOrder(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	return f.orders.Create(ctx, in)
}

func (f *ShopFacade) MyOrders(ctx context.Context, userID string) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *ShopFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

// Order returns the order to its owner or to an admin.
func (f *ShopFacade) Order(ctx context.Context, id int64, requester *model.Identity) (*model.Order, error) {
	return f.orders.Get(ctx, id, *requester, f.gate.IsAdmin(requester))
}

func (f *ShopFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus, note *string) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status, note)
}

func (f *ShopFacade) Cart(ctx context.Context, userID string) (*model.Cart, []model.CartItem, error) {
	return f.carts.Get(ctx, userID)
}

func (f *ShopFacade) AddCartItem(ctx context.Context, userID, productID string, quantity int) (*model.CartItem, error) {
	return f.carts.AddItem(ctx, userID, productID, quantity)
}

func (f *ShopFacade) UpdateCartItem(ctx context.Context, userID, itemID string, quantity int) (*model.CartItem, error) {
	return f.carts.UpdateItem(ctx, userID, itemID, quantity)
}

func (f *ShopFacade) RemoveCartItem(ctx context.Context, userID, itemID string) error {
	return f.carts.RemoveItem(ctx, userID, itemID)
}

func (f *ShopFacade) ClearCart(ctx context.Context, userID string) error {
	return f.carts.Clear(ctx, userID)
}

func (f *ShopFacade) Wishlist(ctx context.Context, userID string) ([]model.WishlistItem, error) {
	return f.wishlist.List(ctx, userID)
}

func (f *ShopFacade) AddToWishlist(ctx context.Context, userID, productID string) (*model.WishlistItem, error) {
	return f.wishlist.Add(ctx, userID, productID)
}

func (f *ShopFacade) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	return f.wishlist.Remove(ctx, userID, productID)
}

func (f *ShopFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.ListProducts(ctx)
}

func (f *ShopFacade) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.catalog.GetProduct(ctx, id)
}

func (f *ShopFacade) CreateProduct(ctx context.Context, in model.NewProduct) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, in)
}

func (f *ShopFacade) UpdateProduct(ctx context.Context, id string, upd model.ProductUpdate) (*model.Product, error) {
	return f.catalog.UpdateProduct(ctx, id, upd)
}

func (f *ShopFacade) DeleteProduct(ctx context.Context, id string) (*model.Product, error) {
	return f.catalog.DeleteProduct(ctx, id)
}

func (f *ShopFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.ListCategories(ctx)
}

func (f *ShopFacade) CreateCategory(ctx context.Context, in model.NewCategory) (*model.Category, error) {
	return f.catalog.CreateCategory(ctx, in)
}

func (f *ShopFacade) DeleteCategory(ctx context.Context, id string) error {
	return f.catalog.DeleteCategory(ctx, id)
}
