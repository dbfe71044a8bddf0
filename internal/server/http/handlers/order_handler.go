package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
	logger *slog.Logger
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{facade: facade, logger: logger}
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), toNewOrder(userID, req))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyOrder):
			abortWithError(c, http.StatusBadRequest, "Order must have items")
		case domainErrors.IsValidation(err):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			internalError(c, h.logger, err, "Failed to create order")
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// My handles GET /orders/my-orders.
func (h *OrderHandler) My(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	orders, err := h.facade.MyOrders(c.Request.Context(), userID)
	if err != nil {
		internalError(c, h.logger, err, "Failed to fetch orders")
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// All handles GET /orders.
func (h *OrderHandler) All(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		internalError(c, h.logger, err, "Failed to fetch orders")
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parsePositiveID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid order id")
		return
	}
	identity := CurrentIdentity(c)
	if identity == nil {
		abortWithError(c, http.StatusUnauthorized, "Unauthorized: Invalid token")
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id, identity)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Order not found")
			return
		}
		internalError(c, h.logger, err, "Failed to fetch order")
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateStatus handles PATCH /orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parsePositiveID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusBadRequest, "Invalid order id")
		return
	}
	var req dto.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Status == "" {
		abortWithError(c, http.StatusBadRequest, "Status is required")
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status), req.Note)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			abortWithError(c, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, domainErrors.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "Order not found")
		default:
			internalError(c, h.logger, err, "Failed to update order status")
		}
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func toNewOrder(userID string, req dto.CreateOrderRequest) model.NewOrder {
	in := model.NewOrder{
		UserID:      userID,
		TotalAmount: req.TotalAmount,
		Items:       make([]model.NewOrderItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, model.NewOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	if addr := req.ShippingAddress; addr != nil {
		in.ShippingAddress = &model.NewShippingAddress{
			FullName:   addr.FullName,
			Street:     addr.Street,
			City:       addr.City,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
			Phone:      addr.Phone,
		}
	}
	return in
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return response
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		Status:        string(order.Status),
		TotalAmount:   order.TotalAmount.StringFixed(2),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
		Items:         make([]dto.OrderItemResponse, 0, len(order.Items)),
		StatusHistory: make([]dto.StatusHistoryResponse, 0, len(order.StatusHistory)),
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:              item.ID,
			OrderID:         item.OrderID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase.StringFixed(2),
		})
	}
	if addr := order.ShippingAddress; addr != nil {
		resp.ShippingAddress = &dto.ShippingAddressResponse{
			ID:         addr.ID,
			OrderID:    addr.OrderID,
			FullName:   addr.FullName,
			Street:     addr.Street,
			City:       addr.City,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
			Phone:      addr.Phone,
		}
	}
	for _, entry := range order.StatusHistory {
		resp.StatusHistory = append(resp.StatusHistory, dto.StatusHistoryResponse{
			ID:        entry.ID,
			OrderID:   entry.OrderID,
			Status:    string(entry.Status),
			Note:      entry.Note,
			CreatedAt: entry.CreatedAt,
		})
	}
	return resp
}
