package postgres

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

func (r *wishlistRepository) ListByUser(ctx context.Context, userID string) ([]model.WishlistItem, error) {
	const query = `SELECT id, user_id, product_id, created_at FROM wishlists WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.WishlistItem, 0)
	for rows.Next() {
		var w model.WishlistItem
		if err := rows.Scan(&w.ID, &w.UserID, &w.ProductID, &w.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *wishlistRepository) Add(ctx context.Context, userID, productID string) (*model.WishlistItem, error) {
	const query = `INSERT INTO wishlists (id, user_id, product_id) VALUES ($1, $2, $3) RETURNING id, created_at`
	w := model.WishlistItem{UserID: userID, ProductID: productID}
	err := r.storage.pool.QueryRow(ctx, query, uuid.NewString(), userID, productID).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &w, nil
}

func (r *wishlistRepository) Remove(ctx context.Context, userID, productID string) error {
	const query = `DELETE FROM wishlists WHERE user_id=$1 AND product_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, userID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
