package postgres

import "github.com/polkiloo/storefront/internal/config"

var orderSchema = []string{
	`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            user_id TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending'
                CHECK (status IN ('pending', 'confirmed', 'shipped', 'delivered', 'cancelled')),
            total_amount NUMERIC(10, 2) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE TABLE IF NOT EXISTS order_items (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            product_id TEXT NOT NULL,
            quantity INTEGER NOT NULL CHECK (quantity > 0),
            price_at_purchase NUMERIC(10, 2) NOT NULL
        )`,
	`CREATE TABLE IF NOT EXISTS shipping_addresses (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL UNIQUE REFERENCES orders(id) ON DELETE CASCADE,
            full_name TEXT NOT NULL,
            street TEXT NOT NULL,
            city TEXT NOT NULL,
            postal_code TEXT NOT NULL,
            country TEXT NOT NULL,
            phone TEXT
        )`,
	`CREATE TABLE IF NOT EXISTS order_status_history (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            status TEXT NOT NULL
                CHECK (status IN ('pending', 'confirmed', 'shipped', 'delivered', 'cancelled')),
            note TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_status_history_order ON order_status_history(order_id, created_at)`,
}

var cartSchema = []string{
	`CREATE TABLE IF NOT EXISTS carts (
            id TEXT PRIMARY KEY,
            user_id TEXT UNIQUE NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE TABLE IF NOT EXISTS cart_items (
            id TEXT PRIMARY KEY,
            cart_id TEXT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
            product_id TEXT NOT NULL,
            quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity > 0),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (cart_id, product_id)
        )`,
	`CREATE TABLE IF NOT EXISTS wishlists (
            id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL,
            product_id TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (user_id, product_id)
        )`,
}

var catalogSchema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
            id TEXT PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            slug TEXT UNIQUE NOT NULL,
            description TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE TABLE IF NOT EXISTS products (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT,
            price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
            stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
            image_url TEXT,
            category_id TEXT REFERENCES categories(id) ON DELETE SET NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	`CREATE INDEX IF NOT EXISTS idx_products_created ON products(created_at DESC)`,
}

// schemaStatements returns the bootstrap DDL for the tables a service owns.
func schemaStatements(service config.Service) []string {
	switch service {
	case config.ServiceOrders:
		return orderSchema
	case config.ServiceCart:
		return cartSchema
	case config.ServiceCatalog:
		return catalogSchema
	default:
		return nil
	}
}
