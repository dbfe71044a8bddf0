package usecase

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// Validator checks use case input before it reaches storage.
type Validator struct {
	validate *validator.Validate
}

// NewValidator constructs Validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Order rejects orders without items, malformed lines, a missing or negative total and
// incomplete shipping addresses.
func (v *Validator) Order(in model.NewOrder) error {
	if len(in.Items) == 0 {
		return domainErrors.ErrEmptyOrder
	}

	for i, item := range in.Items {
		if err := v.validate.Struct(item); err != nil {
			return fmt.Errorf("item %d: %w", i, domainErrors.ErrInvalidOrderItem)
		}
		if item.Price == nil || item.Price.IsNegative() {
			return fmt.Errorf("item %d price: %w", i, domainErrors.ErrInvalidOrderItem)
		}
	}

	if in.TotalAmount == nil || in.TotalAmount.IsNegative() {
		return domainErrors.ErrInvalidAmount
	}

	if addr := in.ShippingAddress; addr != nil {
		if err := v.validate.Struct(normalizeAddress(*addr)); err != nil {
			return domainErrors.ErrInvalidShippingAddress
		}
	}

	return nil
}

// normalizeAddress trims every field. A blank phone becomes nil.
func normalizeAddress(addr model.NewShippingAddress) model.NewShippingAddress {
	addr.FullName = strings.TrimSpace(addr.FullName)
	addr.Street = strings.TrimSpace(addr.Street)
	addr.City = strings.TrimSpace(addr.City)
	addr.PostalCode = strings.TrimSpace(addr.PostalCode)
	addr.Country = strings.TrimSpace(addr.Country)
	if addr.Phone != nil {
		phone := strings.TrimSpace(*addr.Phone)
		addr.Phone = nil
		if phone != "" {
			addr.Phone = &phone
		}
	}
	return addr
}

// Status accepts exactly the five lifecycle values.
func (v *Validator) Status(status model.OrderStatus) error {
	if !status.Valid() {
		return domainErrors.ErrInvalidStatus
	}
	return nil
}

// CartQuantity requires at least one unit.
func (v *Validator) CartQuantity(quantity int) error {
	if err := v.validate.Var(quantity, "gte=1"); err != nil {
		return domainErrors.ErrInvalidQuantity
	}
	return nil
}

// ProductID requires a non-blank product reference.
func (v *Validator) ProductID(productID string) error {
	if strings.TrimSpace(productID) == "" {
		return domainErrors.ErrMissingProduct
	}
	return nil
}

// NewProduct requires a name and non-negative price and stock.
func (v *Validator) NewProduct(in model.NewProduct) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("name is required: %w", domainErrors.ErrInvalidProduct)
	}
	if err := v.validate.Struct(in); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), domainErrors.ErrInvalidProduct)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("price must not be negative: %w", domainErrors.ErrInvalidProduct)
	}
	return nil
}

// ProductUpdate checks only the fields being changed.
func (v *Validator) ProductUpdate(upd model.ProductUpdate) error {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return fmt.Errorf("name must not be empty: %w", domainErrors.ErrInvalidProduct)
	}
	if err := v.validate.Struct(upd); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), domainErrors.ErrInvalidProduct)
	}
	if upd.Price != nil && upd.Price.IsNegative() {
		return fmt.Errorf("price must not be negative: %w", domainErrors.ErrInvalidProduct)
	}
	return nil
}

// Category requires a name and a slug that survives normalization.
func (v *Validator) Category(in model.NewCategory) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("name is required: %w", domainErrors.ErrInvalidCategory)
	}
	if in.Slug == "" {
		return fmt.Errorf("slug is required: %w", domainErrors.ErrInvalidCategory)
	}
	return nil
}

// Slugify lowercases s and joins its alphanumeric runs with hyphens.
func Slugify(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
