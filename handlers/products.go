package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tipsybean/tipsybean-backend-go/models"
)

// GetMenu returns the product list, optionally filtered by ?q= name search.
func (h *Handler) GetMenu(c echo.Context) error {
	products, err := h.Products.ListProducts(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch menu"})
	}
	return c.JSON(http.StatusOK, products)
}

func (h *Handler) CreateProduct(c echo.Context) error {
	var product models.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if product.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Product name is required"})
	}
	if product.Price < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Price cannot be negative"})
	}

	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	if err := h.Products.InsertProduct(c.Request().Context(), &product); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create product"})
	}
	return c.JSON(http.StatusCreated, product)
}
