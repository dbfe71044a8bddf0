package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes order lifecycle. Any status may follow any other.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every accepted status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Valid reports whether s is one of the known statuses. Comparison is case-sensitive.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// OrderCreatedNote is recorded on the initial history entry.
const OrderCreatedNote = "Order created"

// Order is the aggregate root together with its owned entities.
type Order struct {
	ID              int64
	UserID          string
	Status          OrderStatus
	TotalAmount     decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []OrderItem
	ShippingAddress *ShippingAddress
	StatusHistory   []OrderStatusHistory
}

// OrderItem is a purchased line with the price captured at order time.
type OrderItem struct {
	ID              int64
	OrderID         int64
	ProductID       string
	Quantity        int
	PriceAtPurchase decimal.Decimal
}

// ShippingAddress is the optional delivery address of an order.
type ShippingAddress struct {
	ID         int64
	OrderID    int64
	FullName   string
	Street     string
	City       string
	PostalCode string
	Country    string
	Phone      *string
}

// OrderStatusHistory is an append-only audit entry.
type OrderStatusHistory struct {
	ID        int64
	OrderID   int64
	Status    OrderStatus
	Note      *string
	CreatedAt time.Time
}

// NewOrder carries the input of order creation.
type NewOrder struct {
	UserID          string         `validate:"required"`
	Items           []NewOrderItem `validate:"dive"`
	TotalAmount     *decimal.Decimal
	ShippingAddress *NewShippingAddress `validate:"omitempty"`
}

// NewOrderItem is a requested order line.
type NewOrderItem struct {
	ProductID string `validate:"required"`
	Quantity  int    `validate:"gte=1"`
	Price     *decimal.Decimal
}

// NewShippingAddress is the requested delivery address.
type NewShippingAddress struct {
	FullName   string `validate:"required"`
	Street     string `validate:"required"`
	City       string `validate:"required"`
	PostalCode string `validate:"required"`
	Country    string `validate:"required"`
	Phone      *string
}
