package test

import (
	"context"
	"strconv"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// OrderRepositoryStub keeps orders in memory unless a function override is set.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, model.NewOrder) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ListByUserFn   func(context.Context, string) ([]model.Order, error)
	ListAllFn      func(context.Context) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, *string) (*model.Order, error)

	mu          sync.Mutex
	Orders      []model.Order
	Created     []model.NewOrder
	UpdateCalls []OrderUpdateCall
}

// OrderUpdateCall captures an UpdateStatus invocation.
type OrderUpdateCall struct {
	OrderID int64
	Status  model.OrderStatus
	Note    *string
}

// Create records the input and appends a pending order with an initial history entry.
func (s *OrderRepositoryStub) Create(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	s.mu.Lock()
	s.Created = append(s.Created, in)
	s.mu.Unlock()
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	order := model.Order{
		ID:        int64(len(s.Orders) + 1),
		UserID:    in.UserID,
		Status:    model.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		Items:     make([]model.OrderItem, 0, len(in.Items)),
	}
	if in.TotalAmount != nil {
		order.TotalAmount = *in.TotalAmount
	}
	for i, item := range in.Items {
		line := model.OrderItem{ID: int64(i + 1), OrderID: order.ID, ProductID: item.ProductID, Quantity: item.Quantity}
		if item.Price != nil {
			line.PriceAtPurchase = *item.Price
		}
		order.Items = append(order.Items, line)
	}
	if addr := in.ShippingAddress; addr != nil {
		order.ShippingAddress = &model.ShippingAddress{
			ID: order.ID, OrderID: order.ID, FullName: addr.FullName, Street: addr.Street,
			City: addr.City, PostalCode: addr.PostalCode, Country: addr.Country, Phone: addr.Phone,
		}
	}
	note := model.OrderCreatedNote
	order.StatusHistory = []model.OrderStatusHistory{{ID: 1, OrderID: order.ID, Status: model.OrderStatusPending, Note: &note, CreatedAt: now}}
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// GetByID returns the stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser filters stored orders by owner.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Order, 0)
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

// ListAll returns every stored order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]model.Order, 0, len(s.Orders)), s.Orders...), nil
}

// UpdateStatus records the call and updates the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, note *string) (*model.Order, error) {
	s.mu.Lock()
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{OrderID: id, Status: status, Note: note})
	s.mu.Unlock()
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status, note)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Orders {
		if s.Orders[i].ID != id {
			continue
		}
		o := &s.Orders[i]
		o.Status = status
		o.UpdatedAt = time.Now()
		o.StatusHistory = append(o.StatusHistory, model.OrderStatusHistory{
			ID: int64(len(o.StatusHistory) + 1), OrderID: id, Status: status, Note: note, CreatedAt: o.UpdatedAt,
		})
		order := *o
		return &order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CartRepositoryStub keeps carts and lines in memory.
type CartRepositoryStub struct {
	Err error

	mu    sync.Mutex
	Carts map[string]*model.Cart
	Lines []model.CartItem
	next  int
}

func (s *CartRepositoryStub) nextID(prefix string) string {
	s.next++
	return prefix + "-" + strconv.Itoa(s.next)
}

// GetByUser returns the user's cart or not found.
func (s *CartRepositoryStub) GetByUser(ctx context.Context, userID string) (*model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.Carts[userID]; ok {
		c := *cart
		return &c, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetOrCreate lazily creates the user's cart.
func (s *CartRepositoryStub) GetOrCreate(ctx context.Context, userID string) (*model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Carts == nil {
		s.Carts = make(map[string]*model.Cart)
	}
	cart, ok := s.Carts[userID]
	if !ok {
		now := time.Now()
		cart = &model.Cart{ID: s.nextID("cart"), UserID: userID, CreatedAt: now, UpdatedAt: now}
		s.Carts[userID] = cart
	}
	c := *cart
	return &c, nil
}

// Items lists lines of a cart.
func (s *CartRepositoryStub) Items(ctx context.Context, cartID string) ([]model.CartItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.CartItem, 0)
	for _, line := range s.Lines {
		if line.CartID == cartID {
			result = append(result, line)
		}
	}
	return result, nil
}

// AddItem merges quantities for an existing product line.
func (s *CartRepositoryStub) AddItem(ctx context.Context, cartID, productID string, quantity int) (*model.CartItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Lines {
		if s.Lines[i].CartID == cartID && s.Lines[i].ProductID == productID {
			s.Lines[i].Quantity += quantity
			line := s.Lines[i]
			return &line, nil
		}
	}
	now := time.Now()
	line := model.CartItem{ID: s.nextID("item"), CartID: cartID, ProductID: productID, Quantity: quantity, CreatedAt: now, UpdatedAt: now}
	s.Lines = append(s.Lines, line)
	return &line, nil
}

// UpdateItemQuantity sets the quantity of a line in the cart.
func (s *CartRepositoryStub) UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int) (*model.CartItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Lines {
		if s.Lines[i].ID == itemID && s.Lines[i].CartID == cartID {
			s.Lines[i].Quantity = quantity
			line := s.Lines[i]
			return &line, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// RemoveItem deletes a line of the cart.
func (s *CartRepositoryStub) RemoveItem(ctx context.Context, cartID, itemID string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Lines {
		if s.Lines[i].ID == itemID && s.Lines[i].CartID == cartID {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Clear drops all lines of the cart.
func (s *CartRepositoryStub) Clear(ctx context.Context, cartID string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.Lines[:0]
	for _, line := range s.Lines {
		if line.CartID != cartID {
			kept = append(kept, line)
		}
	}
	s.Lines = kept
	return nil
}

// WishlistRepositoryStub keeps wishlist entries in memory.
type WishlistRepositoryStub struct {
	Err error

	mu      sync.Mutex
	Entries []model.WishlistItem
}

// ListByUser returns entries of the user.
func (s *WishlistRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.WishlistItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.WishlistItem, 0)
	for _, e := range s.Entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

// Add stores an entry unless the product is already saved.
func (s *WishlistRepositoryStub) Add(ctx context.Context, userID, productID string) (*model.WishlistItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.Entries {
		if e.UserID == userID && e.ProductID == productID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	entry := model.WishlistItem{ID: "w-" + strconv.Itoa(len(s.Entries)+1), UserID: userID, ProductID: productID, CreatedAt: time.Now()}
	s.Entries = append(s.Entries, entry)
	return &entry, nil
}

// Remove deletes an entry or reports not found.
func (s *WishlistRepositoryStub) Remove(ctx context.Context, userID, productID string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.Entries {
		if e.UserID == userID && e.ProductID == productID {
			s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ProductRepositoryStub keeps products in memory.
type ProductRepositoryStub struct {
	Err error

	mu       sync.Mutex
	Products []model.Product
}

// List returns every product.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]model.Product, 0, len(s.Products)), s.Products...), nil
}

// GetByID returns the product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Create stores a new product.
func (s *ProductRepositoryStub) Create(ctx context.Context, in model.NewProduct) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	p := model.Product{
		ID: "prod-" + strconv.Itoa(len(s.Products)+1), Name: in.Name, Description: in.Description, Price: in.Price,
		Stock: in.Stock, ImageURL: in.ImageURL, CategoryID: in.CategoryID, CreatedAt: now, UpdatedAt: now,
	}
	s.Products = append(s.Products, p)
	return &p, nil
}

// Update applies the non-nil fields of upd.
func (s *ProductRepositoryStub) Update(ctx context.Context, id string, upd model.ProductUpdate) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Products {
		if s.Products[i].ID != id {
			continue
		}
		p := &s.Products[i]
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Description != nil {
			p.Description = upd.Description
		}
		if upd.Price != nil {
			p.Price = *upd.Price
		}
		if upd.Stock != nil {
			p.Stock = *upd.Stock
		}
		if upd.ImageURL != nil {
			p.ImageURL = upd.ImageURL
		}
		if upd.CategoryID != nil {
			p.CategoryID = upd.CategoryID
		}
		p.UpdatedAt = time.Now()
		product := *p
		return &product, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes the product and returns it.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.Products {
		if p.ID == id {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return &p, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// CategoryRepositoryStub keeps categories in memory.
type CategoryRepositoryStub struct {
	Err error

	mu         sync.Mutex
	Categories []model.Category
}

// List returns every category.
func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]model.Category, 0, len(s.Categories)), s.Categories...), nil
}

// Create stores a category with unique name and slug.
func (s *CategoryRepositoryStub) Create(ctx context.Context, in model.NewCategory) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.Categories {
		if c.Name == in.Name || c.Slug == in.Slug {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	now := time.Now()
	c := model.Category{ID: "cat-" + strconv.Itoa(len(s.Categories)+1), Name: in.Name, Slug: in.Slug, Description: in.Description, CreatedAt: now, UpdatedAt: now}
	s.Categories = append(s.Categories, c)
	return &c, nil
}

// Delete removes a category or reports not found.
func (s *CategoryRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.Categories {
		if c.ID == id {
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}
