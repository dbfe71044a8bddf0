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

// CartHandler manages shopping cart endpoints.
type CartHandler struct {
	facade CartFacade
	logger *slog.Logger
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade, logger *slog.Logger) *CartHandler {
	return &CartHandler{facade: facade, logger: logger}
}

// Get handles GET /cart. The cart is created on first access.
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	cart, items, err := h.facade.Cart(c.Request.Context(), userID)
	if err != nil {
		internalError(c, h.logger, err, "Failed to fetch cart")
		return
	}

	resp := dto.CartResponse{
		Cart: dto.CartInfo{
			ID:        cart.ID,
			UserID:    cart.UserID,
			CreatedAt: cart.CreatedAt,
			UpdatedAt: cart.UpdatedAt,
		},
		Items: make([]dto.CartItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, toCartItemResponse(item))
	}
	c.JSON(http.StatusOK, resp)
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.AddCartItemRequest
	if !bindJSON(c, &req) {
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item, err := h.facade.AddCartItem(c.Request.Context(), userID, req.ProductID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingProduct):
			abortWithError(c, http.StatusBadRequest, "Product ID is required")
		case errors.Is(err, domainErrors.ErrInvalidQuantity):
			abortWithError(c, http.StatusBadRequest, "Quantity must be at least 1")
		default:
			internalError(c, h.logger, err, "Failed to add item to cart")
		}
		return
	}
	c.JSON(http.StatusCreated, toCartItemResponse(*item))
}

// UpdateItem handles PUT /cart/items/:itemId.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateCartItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.facade.UpdateCartItem(c.Request.Context(), userID, c.Param("itemId"), req.Quantity)
	if err != nil {
		if !h.writeCartError(c, err) {
			internalError(c, h.logger, err, "Failed to update cart item")
		}
		return
	}
	c.JSON(http.StatusOK, toCartItemResponse(*item))
}

// RemoveItem handles DELETE /cart/items/:itemId.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.facade.RemoveCartItem(c.Request.Context(), userID, c.Param("itemId")); err != nil {
		if !h.writeCartError(c, err) {
			internalError(c, h.logger, err, "Failed to remove cart item")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.facade.ClearCart(c.Request.Context(), userID); err != nil {
		if !h.writeCartError(c, err) {
			internalError(c, h.logger, err, "Failed to clear cart")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// writeCartError reports whether err was a client error and has been written.
func (h *CartHandler) writeCartError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidQuantity):
		abortWithError(c, http.StatusBadRequest, "Quantity must be at least 1")
	case errors.Is(err, domainErrors.ErrCartNotFound):
		abortWithError(c, http.StatusNotFound, "Cart not found")
	case errors.Is(err, domainErrors.ErrCartItemNotFound):
		abortWithError(c, http.StatusNotFound, "Cart item not found")
	default:
		return false
	}
	return true
}

func toCartItemResponse(item model.CartItem) dto.CartItemResponse {
	return dto.CartItemResponse{
		ID:        item.ID,
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
