package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest describes order creation payload.
type CreateOrderRequest struct {
	Items           []OrderItemRequest      `json:"items"`
	TotalAmount     *decimal.Decimal        `json:"totalAmount"`
	ShippingAddress *ShippingAddressRequest `json:"shippingAddress,omitempty"`
}

// OrderItemRequest is a single requested order line.
type OrderItemRequest struct {
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	Price     *decimal.Decimal `json:"price"`
}

// ShippingAddressRequest is the optional delivery address of a new order.
type ShippingAddressRequest struct {
	FullName   string  `json:"fullName"`
	Street     string  `json:"street"`
	City       string  `json:"city"`
	PostalCode string  `json:"postalCode"`
	Country    string  `json:"country"`
	Phone      *string `json:"phone,omitempty"`
}

// UpdateStatusRequest describes status change payload.
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note,omitempty"`
}

// OrderResponse is the order aggregate as returned to clients.
type OrderResponse struct {
	ID              int64                    `json:"id"`
	UserID          string                   `json:"userId"`
	Status          string                   `json:"status"`
	TotalAmount     string                   `json:"totalAmount"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
	Items           []OrderItemResponse      `json:"items"`
	ShippingAddress *ShippingAddressResponse `json:"shippingAddress"`
	StatusHistory   []StatusHistoryResponse  `json:"statusHistory"`
}

// OrderItemResponse is a purchased line.
type OrderItemResponse struct {
	ID              int64  `json:"id"`
	OrderID         int64  `json:"orderId"`
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	PriceAtPurchase string `json:"priceAtPurchase"`
}

// ShippingAddressResponse is the stored delivery address.
type ShippingAddressResponse struct {
	ID         int64   `json:"id"`
	OrderID    int64   `json:"orderId"`
	FullName   string  `json:"fullName"`
	Street     string  `json:"street"`
	City       string  `json:"city"`
	PostalCode string  `json:"postalCode"`
	Country    string  `json:"country"`
	Phone      *string `json:"phone"`
}

// StatusHistoryResponse is one audit trail entry.
type StatusHistoryResponse struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"orderId"`
	Status    string    `json:"status"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}
