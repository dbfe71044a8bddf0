package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

const (
	foreignKeyViolation = "23503"

	productColumns = `id, name, description, price, stock, image_url, category_id, created_at, updated_at`
)

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
}

// List returns all products, newest first, with their category summary.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT p.id, p.name, p.description, p.price, p.stock, p.image_url, p.category_id,
                          p.created_at, p.updated_at, c.id, c.name, c.slug
                   FROM products p LEFT JOIN categories c ON c.id = p.category_id
                   ORDER BY p.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Product, 0)
	for rows.Next() {
		p, err := scanProductWithCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	const query = `SELECT p.id, p.name, p.description, p.price, p.stock, p.image_url, p.category_id,
                          p.created_at, p.updated_at, c.id, c.name, c.slug
                   FROM products p LEFT JOIN categories c ON c.id = p.category_id
                   WHERE p.id=$1`
	p, err := scanProductWithCategory(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanProductWithCategory(row pgx.Row) (*model.Product, error) {
	var (
		p                       model.Product
		catID, catName, catSlug *string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL, &p.CategoryID,
		&p.CreatedAt, &p.UpdatedAt, &catID, &catName, &catSlug); err != nil {
		return nil, err
	}
	if catID != nil {
		ref := &model.CategoryRef{ID: *catID}
		if catName != nil {
			ref.Name = *catName
		}
		if catSlug != nil {
			ref.Slug = *catSlug
		}
		p.Category = ref
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, in model.NewProduct) (*model.Product, error) {
	const query = `INSERT INTO products (id, name, description, price, stock, image_url, category_id)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING ` + productColumns
	var p model.Product
	err := scanProduct(r.storage.pool.QueryRow(ctx, query, uuid.NewString(), in.Name, in.Description, in.Price,
		in.Stock, in.ImageURL, in.CategoryID), &p)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domainErrors.ErrInvalidCategory
		}
		return nil, err
	}
	return &p, nil
}

// Update changes only the fields set in upd.
func (r *productRepository) Update(ctx context.Context, id string, upd model.ProductUpdate) (*model.Product, error) {
	const query = `UPDATE products SET
                       name = COALESCE($2, name),
                       description = COALESCE($3, description),
                       price = COALESCE($4, price),
                       stock = COALESCE($5, stock),
                       image_url = COALESCE($6, image_url),
                       category_id = COALESCE($7, category_id),
                       updated_at = NOW()
                   WHERE id=$1
                   RETURNING ` + productColumns
	var p model.Product
	err := scanProduct(r.storage.pool.QueryRow(ctx, query, id, upd.Name, upd.Description, upd.Price,
		upd.Stock, upd.ImageURL, upd.CategoryID), &p)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, domainErrors.ErrNotFound
		case isForeignKeyViolation(err):
			return nil, domainErrors.ErrInvalidCategory
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) (*model.Product, error) {
	const query = `DELETE FROM products WHERE id=$1 RETURNING ` + productColumns
	var p model.Product
	if err := scanProduct(r.storage.pool.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
