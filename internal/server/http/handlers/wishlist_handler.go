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

// WishlistHandler manages wishlist endpoints.
type WishlistHandler struct {
	facade WishlistFacade
	logger *slog.Logger
}

// NewWishlistHandler constructs WishlistHandler.
func NewWishlistHandler(facade WishlistFacade, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{facade: facade, logger: logger}
}

// List handles GET /wishlist.
func (h *WishlistHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	items, err := h.facade.Wishlist(c.Request.Context(), userID)
	if err != nil {
		internalError(c, h.logger, err, "Failed to fetch wishlist")
		return
	}
	resp := make([]dto.WishlistItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toWishlistItemResponse(item))
	}
	c.JSON(http.StatusOK, resp)
}

// Add handles POST /wishlist.
func (h *WishlistHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.WishlistRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.facade.AddToWishlist(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingProduct):
			abortWithError(c, http.StatusBadRequest, "Product ID is required")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			abortWithError(c, http.StatusConflict, "Product already in wishlist")
		default:
			internalError(c, h.logger, err, "Failed to add to wishlist")
		}
		return
	}
	c.JSON(http.StatusCreated, toWishlistItemResponse(*item))
}

// Remove handles DELETE /wishlist/:productId.
func (h *WishlistHandler) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.facade.RemoveFromWishlist(c.Request.Context(), userID, c.Param("productId")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Item not found in wishlist")
			return
		}
		internalError(c, h.logger, err, "Failed to remove from wishlist")
		return
	}
	c.Status(http.StatusNoContent)
}

func toWishlistItemResponse(item model.WishlistItem) dto.WishlistItemResponse {
	return dto.WishlistItemResponse{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		CreatedAt: item.CreatedAt,
	}
}
