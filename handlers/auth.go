package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tipsybean/tipsybean-backend-go/middleware"
	"github.com/tipsybean/tipsybean-backend-go/service"
)

type signupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (h *Handler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if _, err := h.Auth.Signup(c.Request().Context(), req.FirstName, req.LastName, req.Email, req.Password); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"message": "User registered successfully!"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	user, err := h.Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		var notFoundErr *service.NotFoundError
		if errors.As(err, &notFoundErr) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found!"})
		}
		return jsonError(c, err)
	}

	token, err := middleware.GenerateToken(user.Email, false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Login successful!",
		"user":    map[string]string{"firstName": user.FirstName},
		"token":   token,
	})
}

func (h *Handler) Logout(c echo.Context) error {
	if err := h.Auth.Logout(c.Request().Context(), userEmail(c)); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *Handler) GetSession(c echo.Context) error {
	session, err := h.Auth.Session(c.Request().Context(), userEmail(c))
	if err != nil {
		return jsonError(c, err)
	}
	if session == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "No active session"})
	}
	return c.JSON(http.StatusOK, session)
}
