package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tipsybean/tipsybean-backend-go/handlers"
	customMiddleware "github.com/tipsybean/tipsybean-backend-go/middleware"
	"github.com/tipsybean/tipsybean-backend-go/store"
)

func SetupRoutes(e *echo.Echo, h *handlers.Handler, sessions store.SessionStore) {
	// Public routes
	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)
	e.GET("/menu", h.GetMenu)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Protected API routes
	api := e.Group("/api")
	api.Use(customMiddleware.AuthMiddleware(sessions))

	api.POST("/logout", h.Logout)
	api.GET("/session", h.GetSession)

	api.GET("/profile", h.GetProfile)
	api.PUT("/profile", h.UpdateProfile)

	api.GET("/cart", h.GetCart)
	api.POST("/cart", h.AddToCart)
	api.DELETE("/cart", h.ClearCart)
	api.DELETE("/cart/:itemId", h.RemoveFromCart)
	api.PUT("/cart/quantity", h.UpdateCartItemQuantity)

	api.POST("/orders", h.CreateOrder)
	api.GET("/orders", h.ListOrders)
	api.GET("/orders/:orderId", h.GetOrder)
	api.GET("/orders/:orderId/status", h.GetOrderStatus)
	api.GET("/orders/:orderId/estimate", h.GetDeliveryEstimate)

	// Admin routes
	e.POST("/admin/login", h.AdminLogin)

	admin := e.Group("/admin")
	admin.Use(customMiddleware.AdminMiddleware())

	admin.GET("/orders", h.AdminListOrders)
	admin.PUT("/orders/:orderId/status", h.AdminUpdateOrderStatus)
	admin.GET("/stats", h.AdminStats)
	admin.POST("/menu", h.CreateProduct)
}
