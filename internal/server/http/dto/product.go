package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest is used for creation and for partial updates; absent fields stay nil.
type ProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	ImageURL    *string          `json:"imageUrl"`
	CategoryID  *string          `json:"categoryId"`
}

type ProductResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description *string              `json:"description"`
	Price       string               `json:"price"`
	Stock       int                  `json:"stock"`
	ImageURL    *string              `json:"imageUrl"`
	CategoryID  *string              `json:"categoryId"`
	Category    *CategoryRefResponse `json:"category"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// CategoryRefResponse is the category summary embedded into products.
type CategoryRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// DeleteProductResponse confirms removal together with the removed product.
type DeleteProductResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

type CategoryRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
