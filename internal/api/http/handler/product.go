package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeline/storeline-server/internal/logger"
	"github.com/storeline/storeline-server/internal/model"
)

// ProductService defines the product catalog operations.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
}

// Product handles HTTP endpoints for the product catalog.
type Product struct {
	productService ProductService
	logger         *logger.Logger
}

// NewProduct creates a new Product handler.
func NewProduct(productService ProductService, logger *logger.Logger) *Product {
	return &Product{
		productService: productService,
		logger:         logger,
	}
}

// List returns every product in the catalog.
func (h *Product) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("Product handler: list failed", "error", err.Error())
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"products": products})
}
