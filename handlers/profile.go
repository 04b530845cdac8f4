package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tipsybean/tipsybean-backend-go/service"
)

func (h *Handler) GetProfile(c echo.Context) error {
	profile, err := h.Profile.Profile(c.Request().Context(), userEmail(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	var update service.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	profile, err := h.Profile.UpdateProfile(c.Request().Context(), userEmail(c), update)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}
