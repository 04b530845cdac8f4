package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	AdditionalNotes string `json:"additionalNotes"`
	PaymentMethod   string `json:"paymentMethod"`
}

func (h *Handler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	order, err := h.Orders.PlaceOrder(c.Request().Context(), userEmail(c), req.AdditionalNotes, req.PaymentMethod)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *Handler) ListOrders(c echo.Context) error {
	orders, err := h.Orders.ListOrders(c.Request().Context(), userEmail(c), c.QueryParam("status"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

// GetOrder resolves ownership at read time: an order belongs to whoever
// placed it, and other users get a 404 rather than a hint it exists.
func (h *Handler) GetOrder(c echo.Context) error {
	order, err := h.Orders.GetOrder(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return jsonError(c, err)
	}
	if order.Email != userEmail(c) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) GetOrderStatus(c echo.Context) error {
	order, err := h.Orders.GetOrder(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return jsonError(c, err)
	}
	if order.Email != userEmail(c) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": string(order.Status)})
}

func (h *Handler) GetDeliveryEstimate(c echo.Context) error {
	order, err := h.Orders.GetOrder(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return jsonError(c, err)
	}
	if order.Email != userEmail(c) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
	}

	earliest, latest := h.Orders.EstimateDeliveryWindow(order)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"earliest": earliest,
		"latest":   latest,
	})
}
