package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tipsybean/tipsybean-backend-go/service"
	"github.com/tipsybean/tipsybean-backend-go/store"
)

// Handler carries the service instances; routes are registered against
// its methods so nothing reaches for package globals.
type Handler struct {
	Auth     *service.AuthService
	Cart     *service.CartService
	Profile  *service.ProfileService
	Orders   *service.OrderService
	Products store.ProductStore

	AdminEmail        string
	AdminPasswordHash []byte
}

func userEmail(c echo.Context) string {
	email, _ := c.Get("email").(string)
	return email
}

// jsonError maps the service error taxonomy onto the HTTP contract.
// Duplicate registration answers 400, same as the signup endpoint always has.
func jsonError(c echo.Context, err error) error {
	var validationErr *service.ValidationError
	var preconditionErr *service.PreconditionError
	var notFoundErr *service.NotFoundError
	var conflictErr *service.ConflictError

	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validationErr.Message})
	case errors.As(err, &preconditionErr):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": preconditionErr.Message})
	case errors.As(err, &conflictErr):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": conflictErr.Message})
	case errors.As(err, &notFoundErr):
		return c.JSON(http.StatusNotFound, map[string]string{"error": notFoundErr.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid password!"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}
