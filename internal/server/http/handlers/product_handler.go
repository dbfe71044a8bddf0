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

// ProductHandler manages catalog product endpoints.
type ProductHandler struct {
	facade CatalogFacade
	logger *slog.Logger
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{facade: facade, logger: logger}
}

// List handles GET /products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		internalError(c, h.logger, err, "Failed to fetch products")
		return
	}
	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.facade.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Product not found")
			return
		}
		internalError(c, h.logger, err, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Create handles POST /products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Price == nil {
		abortWithError(c, http.StatusBadRequest, "Price is required")
		return
	}

	in := model.NewProduct{
		Price:       *req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Stock != nil {
		in.Stock = *req.Stock
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), in)
	if err != nil {
		if !writeProductError(c, err) {
			internalError(c, h.logger, err, "Failed to create product")
		}
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(*product))
}

// Update handles PUT /products/:id. Only supplied fields change.
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), c.Param("id"), model.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		if !writeProductError(c, err) {
			internalError(c, h.logger, err, "Failed to update product")
		}
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	product, err := h.facade.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if !writeProductError(c, err) {
			internalError(c, h.logger, err, "Failed to delete product")
		}
		return
	}
	c.JSON(http.StatusOK, dto.DeleteProductResponse{
		Message: "Product deleted successfully",
		Product: toProductResponse(*product),
	})
}

func writeProductError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		abortWithError(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, domainErrors.ErrInvalidCategory):
		abortWithError(c, http.StatusBadRequest, "Category not found")
	case errors.Is(err, domainErrors.ErrInvalidProduct):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		return false
	}
	return true
}

func toProductResponse(p model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Category != nil {
		resp.Category = &dto.CategoryRefResponse{ID: p.Category.ID, Name: p.Category.Name, Slug: p.Category.Slug}
	}
	return resp
}
