package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

const cartItemColumns = `id, cart_id, product_id, quantity, created_at, updated_at`

func (r *cartRepository) GetByUser(ctx context.Context, userID string) (*model.Cart, error) {
	const query = `SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id=$1`
	var c model.Cart
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetOrCreate returns the user's cart, creating it on first use.
func (r *cartRepository) GetOrCreate(ctx context.Context, userID string) (*model.Cart, error) {
	const query = `INSERT INTO carts (id, user_id) VALUES ($1, $2)
                   ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
                   RETURNING id, user_id, created_at, updated_at`
	var c model.Cart
	err := r.storage.pool.QueryRow(ctx, query, uuid.NewString(), userID).Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cartRepository) Items(ctx context.Context, cartID string) ([]model.CartItem, error) {
	const query = `SELECT ` + cartItemColumns + ` FROM cart_items WHERE cart_id=$1 ORDER BY created_at, id`
	rows, err := r.storage.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.CartItem, 0)
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// AddItem inserts a line or increases the quantity of the existing line for the product.
func (r *cartRepository) AddItem(ctx context.Context, cartID, productID string, quantity int) (*model.CartItem, error) {
	const query = `INSERT INTO cart_items (id, cart_id, product_id, quantity) VALUES ($1, $2, $3, $4)
                   ON CONFLICT (cart_id, product_id) DO UPDATE
                   SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
                   RETURNING ` + cartItemColumns
	var item model.CartItem
	err := r.storage.pool.QueryRow(ctx, query, uuid.NewString(), cartID, productID, quantity).
		Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int) (*model.CartItem, error) {
	const query = `UPDATE cart_items SET quantity=$1, updated_at=NOW() WHERE id=$2 AND cart_id=$3
                   RETURNING ` + cartItemColumns
	var item model.CartItem
	err := r.storage.pool.QueryRow(ctx, query, quantity, itemID, cartID).
		Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, cartID, itemID string) error {
	const query = `DELETE FROM cart_items WHERE id=$1 AND cart_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, itemID, cartID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, cartID string) error {
	const query = `DELETE FROM cart_items WHERE cart_id=$1`
	_, err := r.storage.pool.Exec(ctx, query, cartID)
	return err
}
