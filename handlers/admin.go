package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/tipsybean/tipsybean-backend-go/middleware"
)

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin checks the env-configured admin credentials and issues an
// admin token. The plaintext env value is hashed once at startup.
func (h *Handler) AdminLogin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if req.Email != h.AdminEmail {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid admin credentials"})
	}
	if err := bcrypt.CompareHashAndPassword(h.AdminPasswordHash, []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid admin credentials"})
	}

	token, err := middleware.GenerateToken(req.Email, true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Login successful!",
		"token":   token,
	})
}

func (h *Handler) AdminListOrders(c echo.Context) error {
	orders, err := h.Orders.ListAllOrders(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) AdminUpdateOrderStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if err := h.Orders.UpdateStatus(c.Request().Context(), c.Param("orderId"), req.Status); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Order status updated successfully!"})
}

func (h *Handler) AdminStats(c echo.Context) error {
	stats, err := h.Orders.Stats(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
