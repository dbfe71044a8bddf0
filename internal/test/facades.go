package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn       func(context.Context, model.NewOrder) (*model.Order, error)
	MyOrdersFn     func(context.Context, string) ([]model.Order, error)
	AllOrdersFn    func(context.Context) ([]model.Order, error)
	OrderFn        func(context.Context, int64, *model.Identity) (*model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, *string) (*model.Order, error)
}

// SampleOrder returns a pending order with one line and its creation history.
func SampleOrder(id int64, userID string) model.Order {
	created := time.Unix(0, 0).UTC()
	note := model.OrderCreatedNote
	return model.Order{
		ID:          id,
		UserID:      userID,
		Status:      model.OrderStatusPending,
		TotalAmount: decimal.RequireFromString("59.98"),
		CreatedAt:   created,
		UpdatedAt:   created,
		Items: []model.OrderItem{{
			ID: 1, OrderID: id, ProductID: "p1", Quantity: 2,
			PriceAtPurchase: decimal.RequireFromString("29.99"),
		}},
		StatusHistory: []model.OrderStatusHistory{{
			ID: 1, OrderID: id, Status: model.OrderStatusPending, Note: &note, CreatedAt: created,
		}},
	}
}

// CreateOrder delegates to provided function or echoes the input as a pending order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	order := SampleOrder(1, in.UserID)
	return &order, nil
}

// MyOrders returns predefined orders for given user.
func (s OrderFacadeStub) MyOrders(ctx context.Context, userID string) ([]model.Order, error) {
	if s.MyOrdersFn != nil {
		return s.MyOrdersFn(ctx, userID)
	}
	return []model.Order{SampleOrder(1, userID)}, nil
}

// AllOrders returns predefined orders of every user.
func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []model.Order{SampleOrder(2, "user-2"), SampleOrder(1, "user-1")}, nil
}

// Order returns a single order owned by the requester.
func (s OrderFacadeStub) Order(ctx context.Context, id int64, requester *model.Identity) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id, requester)
	}
	order := SampleOrder(id, requester.UserID)
	return &order, nil
}

// UpdateOrderStatus returns the sample order moved to status.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus, note *string) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status, note)
	}
	order := SampleOrder(id, "user-1")
	order.Status = status
	order.StatusHistory = append(order.StatusHistory, model.OrderStatusHistory{
		ID: 2, OrderID: id, Status: status, Note: note, CreatedAt: order.CreatedAt,
	})
	return &order, nil
}

// CartFacadeStub simulates cart operations.
type CartFacadeStub struct {
	CartFn   func(context.Context, string) (*model.Cart, []model.CartItem, error)
	AddFn    func(context.Context, string, string, int) (*model.CartItem, error)
	UpdateFn func(context.Context, string, string, int) (*model.CartItem, error)
	RemoveFn func(context.Context, string, string) error
	ClearFn  func(context.Context, string) error
}

// Cart returns an empty cart unless overridden.
func (s CartFacadeStub) Cart(ctx context.Context, userID string) (*model.Cart, []model.CartItem, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return &model.Cart{ID: "cart-1", UserID: userID}, nil, nil
}

// AddCartItem echoes the requested line.
func (s CartFacadeStub) AddCartItem(ctx context.Context, userID, productID string, quantity int) (*model.CartItem, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID, quantity)
	}
	return &model.CartItem{ID: "item-1", CartID: "cart-1", ProductID: productID, Quantity: quantity}, nil
}

// UpdateCartItem echoes the updated line.
func (s CartFacadeStub) UpdateCartItem(ctx context.Context, userID, itemID string, quantity int) (*model.CartItem, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, itemID, quantity)
	}
	return &model.CartItem{ID: itemID, CartID: "cart-1", ProductID: "p1", Quantity: quantity}, nil
}

// RemoveCartItem executes configured removal handler.
func (s CartFacadeStub) RemoveCartItem(ctx context.Context, userID, itemID string) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, itemID)
	}
	return nil
}

// ClearCart executes configured clear handler.
func (s CartFacadeStub) ClearCart(ctx context.Context, userID string) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// WishlistFacadeStub simulates wishlist operations.
type WishlistFacadeStub struct {
	ListFn   func(context.Context, string) ([]model.WishlistItem, error)
	AddFn    func(context.Context, string, string) (*model.WishlistItem, error)
	RemoveFn func(context.Context, string, string) error
}

// Wishlist returns preconfigured entries.
func (s WishlistFacadeStub) Wishlist(ctx context.Context, userID string) ([]model.WishlistItem, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return []model.WishlistItem{{ID: "w1", UserID: userID, ProductID: "p1"}}, nil
}

// AddToWishlist echoes the saved product.
func (s WishlistFacadeStub) AddToWishlist(ctx context.Context, userID, productID string) (*model.WishlistItem, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID)
	}
	return &model.WishlistItem{ID: "w1", UserID: userID, ProductID: productID}, nil
}

// RemoveFromWishlist executes configured removal handler.
func (s WishlistFacadeStub) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, productID)
	}
	return nil
}

// CatalogFacadeStub simulates product and category operations.
type CatalogFacadeStub struct {
	ProductsFn       func(context.Context) ([]model.Product, error)
	ProductFn        func(context.Context, string) (*model.Product, error)
	CreateProductFn  func(context.Context, model.NewProduct) (*model.Product, error)
	UpdateProductFn  func(context.Context, string, model.ProductUpdate) (*model.Product, error)
	DeleteProductFn  func(context.Context, string) (*model.Product, error)
	CategoriesFn     func(context.Context) ([]model.Category, error)
	CreateCategoryFn func(context.Context, model.NewCategory) (*model.Category, error)
	DeleteCategoryFn func(context.Context, string) error
}

// SampleProduct returns a categorized product priced at 19.90.
func SampleProduct(id string) model.Product {
	categoryID := "c1"
	return model.Product{
		ID:         id,
		Name:       "Desk lamp",
		Price:      decimal.RequireFromString("19.9"),
		Stock:      5,
		CategoryID: &categoryID,
		Category:   &model.CategoryRef{ID: categoryID, Name: "Home Office", Slug: "home-office"},
	}
}

// Products returns preconfigured products.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{SampleProduct("p1")}, nil
}

// Product returns the sample product under id.
func (s CatalogFacadeStub) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	p := SampleProduct(id)
	return &p, nil
}

// CreateProduct echoes the input as a stored product.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, in model.NewProduct) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, in)
	}
	return &model.Product{ID: "p-new", Name: in.Name, Price: in.Price, Stock: in.Stock, CategoryID: in.CategoryID}, nil
}

// UpdateProduct applies upd to the sample product.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, id string, upd model.ProductUpdate) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, upd)
	}
	p := SampleProduct(id)
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	return &p, nil
}

// DeleteProduct returns the removed sample product.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id string) (*model.Product, error) {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	p := SampleProduct(id)
	return &p, nil
}

// Categories returns preconfigured categories.
func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: "c1", Name: "Home Office", Slug: "home-office"}}, nil
}

// CreateCategory echoes the input as a stored category.
func (s CatalogFacadeStub) CreateCategory(ctx context.Context, in model.NewCategory) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, in)
	}
	return &model.Category{ID: "c-new", Name: in.Name, Slug: in.Slug, Description: in.Description}, nil
}

// DeleteCategory executes configured removal handler.
func (s CatalogFacadeStub) DeleteCategory(ctx context.Context, id string) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

// HealthFacadeStub reports readiness via override.
type HealthFacadeStub struct {
	ReadyFn func(context.Context) error
}

// Ready reports the backing services as reachable unless overridden.
func (s HealthFacadeStub) Ready(ctx context.Context) error {
	if s.ReadyFn != nil {
		return s.ReadyFn(ctx)
	}
	return nil
}

// HealthCheckerStub implements repository.HealthChecker.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}

// ShopFacadeStub aggregates facade dependencies for HTTP layer tests.
type ShopFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	CartFacadeStub
	WishlistFacadeStub
	CatalogFacadeStub
	HealthFacadeStub
}
