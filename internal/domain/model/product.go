package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups catalog products.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryRef is the category summary embedded into products.
type CategoryRef struct {
	ID   string
	Name string
	Slug string
}

// Product is a catalog entry.
type Product struct {
	ID          string
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int
	ImageURL    *string
	CategoryID  *string
	Category    *CategoryRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct carries product creation input.
type NewProduct struct {
	Name        string `validate:"required"`
	Description *string
	Price       decimal.Decimal
	Stock       int `validate:"gte=0"`
	ImageURL    *string
	CategoryID  *string
}

// ProductUpdate holds the fields to change; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int `validate:"omitempty,gte=0"`
	ImageURL    *string
	CategoryID  *string
}

// NewCategory carries category creation input.
type NewCategory struct {
	Name        string `validate:"required"`
	Slug        string
	Description *string
}
