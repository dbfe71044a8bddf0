package postgres

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name, slug, description, created_at, updated_at FROM categories ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) Create(ctx context.Context, in model.NewCategory) (*model.Category, error) {
	const query = `INSERT INTO categories (id, name, slug, description) VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at, updated_at`
	c := model.Category{Name: in.Name, Slug: in.Slug, Description: in.Description}
	err := r.storage.pool.QueryRow(ctx, query, uuid.NewString(), in.Name, in.Slug, in.Description).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM categories WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
