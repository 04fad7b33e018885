package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"parlour-backend-go/internal/core"
	"parlour-backend-go/internal/middleware"
)

// SetupRoutes configures all application routes with their handlers and
// per-route gates. Global middleware (logging, recovery, CORS) is applied
// to the router before this function is called, in main.go.
//
// POST /carts and DELETE /carts/:id are deliberately open, matching the
// public storefront flow: items land in a cart before the visitor has
// signed in.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	gate *middleware.AccessGate,
	tokenSecret []byte,
	userService core.UserService,
	cartService core.CartService,
	reviewService core.ReviewService,
	settlementService core.SettlementService,
	billingService core.BillingService,
) {
	tokenHandler := NewTokenHandler(tokenSecret, logger)
	userHandler := NewUserHandler(userService, logger)
	cartHandler := NewCartHandler(cartService, logger)
	reviewHandler := NewReviewHandler(reviewService, logger)
	paymentHandler := NewPaymentHandler(settlementService, logger)
	billingHandler := NewBillingHandler(billingService, logger)

	router.POST("/auth/token", tokenHandler.IssueToken)

	usersGroup := router.Group("/users")
	{
		usersGroup.GET("", gate.RequireAuth(), gate.RequireAdmin(), userHandler.List)
		usersGroup.POST("", userHandler.Register)
		usersGroup.GET("/admin/:email", gate.RequireAuth(), gate.RequireSelfOrAdmin(middleware.PathEmail("email")), userHandler.AdminStatus)
		usersGroup.PATCH("/admin/:id", gate.RequireAuth(), gate.RequireAdmin(), userHandler.Promote)
		usersGroup.DELETE("/:id", gate.RequireAuth(), gate.RequireAdmin(), userHandler.Remove)
	}

	cartsGroup := router.Group("/carts")
	{
		cartsGroup.POST("", cartHandler.Add)
		cartsGroup.GET("", gate.RequireAuth(), gate.RequireSelfOrAdmin(middleware.QueryEmail("email")), cartHandler.ListByOwner)
		cartsGroup.DELETE("/:id", cartHandler.Remove)
	}

	router.GET("/reviews", reviewHandler.List)

	router.POST("/payment-intent", billingHandler.CreateIntent)

	paymentsGroup := router.Group("/payments")
	{
		paymentsGroup.GET("/:email", gate.RequireAuth(), gate.RequireSelfOrAdmin(middleware.PathEmail("email")), paymentHandler.History)
		paymentsGroup.POST("", gate.RequireAuth(), paymentHandler.Settle)
	}

	// Liveness probe.
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Parlour backend is running")
	})

	logger.Info("API routes configured successfully.")
}
