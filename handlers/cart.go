package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	email := userEmail(c)

	cart, err := h.Cart.Cart(ctx, email)
	if err != nil {
		return jsonError(c, err)
	}

	count, err := h.Cart.Count(ctx, email)
	if err != nil {
		return jsonError(c, err)
	}

	total, err := h.Cart.Total(ctx, email)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": cart.Items,
		"count": count,
		"total": total,
	})
}

type addToCartRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (h *Handler) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Item id is required"})
	}
	if req.Price < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Price cannot be negative"})
	}

	if err := h.Cart.AddItem(c.Request().Context(), userEmail(c), req.ID, req.Name, req.Price, req.Quantity); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Item added to cart"})
}

func (h *Handler) RemoveFromCart(c echo.Context) error {
	if err := h.Cart.RemoveItem(c.Request().Context(), userEmail(c), c.Param("itemId")); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Item removed from cart"})
}

type updateQuantityRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) UpdateCartItemQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if err := h.Cart.SetQuantity(c.Request().Context(), userEmail(c), req.ID, req.Quantity); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Quantity updated successfully"})
}

func (h *Handler) ClearCart(c echo.Context) error {
	if err := h.Cart.Clear(c.Request().Context(), userEmail(c)); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Cart cleared"})
}
