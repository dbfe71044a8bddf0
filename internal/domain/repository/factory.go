package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Orders() OrderRepository
	Carts() CartRepository
	Wishlists() WishlistRepository
	Products() ProductRepository
	Categories() CategoryRepository
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
