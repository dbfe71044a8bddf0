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

// CategoryHandler manages catalog category endpoints.
type CategoryHandler struct {
	facade CatalogFacade
	logger *slog.Logger
}

// NewCategoryHandler constructs CategoryHandler.
func NewCategoryHandler(facade CatalogFacade, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{facade: facade, logger: logger}
}

// List handles GET /categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		internalError(c, h.logger, err, "Failed to fetch categories")
		return
	}
	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, toCategoryResponse(cat))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.facade.CreateCategory(c.Request.Context(), model.NewCategory{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCategory):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			abortWithError(c, http.StatusConflict, "Category already exists")
		default:
			internalError(c, h.logger, err, "Failed to create category")
		}
		return
	}
	c.JSON(http.StatusCreated, toCategoryResponse(*category))
}

// Delete handles DELETE /categories/:id. Products of the category become uncategorized.
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Category not found")
			return
		}
		internalError(c, h.logger, err, "Failed to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}

func toCategoryResponse(cat model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Slug:        cat.Slug,
		Description: cat.Description,
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}
