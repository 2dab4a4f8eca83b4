package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/server/http/handlers"
	"github.com/shopline/storefront/internal/server/http/middleware"
)

// HealthChecker reports backing store availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, health HealthChecker, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	invoiceHandler := handlers.NewInvoiceHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	activityHandler := handlers.NewActivityHandler(facade)

	engine.GET("/health", func(c *gin.Context) {
		if err := health.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:productID", productHandler.Get)

	productsAdmin := products.Group("")
	productsAdmin.Use(middleware.AuthRequired(facade), middleware.RequireRoles(model.RoleAdmin, model.RoleSuperadmin))
	productsAdmin.POST("", productHandler.Create)
	productsAdmin.PUT("/:productID", productHandler.Update)
	productsAdmin.DELETE("/:productID", productHandler.Delete)

	users := api.Group("/users")
	users.Use(middleware.AuthRequired(facade), middleware.RequireRoles(model.RoleAdmin, model.RoleSuperadmin))
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:userID", userHandler.Get)
	users.PUT("/:userID", userHandler.Update)
	users.DELETE("/:userID", userHandler.Delete)

	cart := api.Group("/cart")
	cart.Use(middleware.AuthRequired(facade))
	cart.GET("", cartHandler.Items)
	cart.POST("", cartHandler.Add)
	cart.DELETE("", cartHandler.Clear)
	cart.PUT("/:productID", cartHandler.Update)
	cart.DELETE("/:productID", cartHandler.Remove)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.POST("", orderHandler.Checkout)
	orders.GET("", orderHandler.List)
	orders.GET("/:orderID", orderHandler.Get)
	orders.PUT("/:orderID/status", orderHandler.UpdateStatus)
	orders.DELETE("/:orderID", orderHandler.Delete)
	orders.GET("/:orderID/invoice", invoiceHandler.Get)
	orders.GET("/:orderID/invoice/html", invoiceHandler.HTML)
	orders.GET("/:orderID/invoice/download", invoiceHandler.Download)

	activity := api.Group("/activity")
	activity.Use(middleware.AuthRequired(facade), middleware.RequireRoles(model.RoleAdmin, model.RoleSuperadmin))
	activity.GET("", activityHandler.Recent)

	return engine
}
