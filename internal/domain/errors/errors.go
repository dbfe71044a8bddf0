package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")

	ErrEmptyOrder             = errors.New("order must have items")
	ErrInvalidOrderItem       = errors.New("invalid order item")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidStatus          = errors.New("invalid order status")
	ErrInvalidShippingAddress = errors.New("invalid shipping address")

	ErrMissingProduct  = errors.New("product id is required")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidCategory = errors.New("invalid category")

	ErrCartNotFound     = fmt.Errorf("cart %w", ErrNotFound)
	ErrCartItemNotFound = fmt.Errorf("cart item %w", ErrNotFound)
)

// IsValidation reports whether err is caused by rejected client input.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrEmptyOrder,
		ErrInvalidOrderItem,
		ErrInvalidAmount,
		ErrInvalidStatus,
		ErrInvalidShippingAddress,
		ErrMissingProduct,
		ErrInvalidQuantity,
		ErrInvalidProduct,
		ErrInvalidCategory,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
