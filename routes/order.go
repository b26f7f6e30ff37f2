package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/shakibwebx/GadegtsHub-Server/controllers/order"
	"github.com/shakibwebx/GadegtsHub-Server/middleware"
	"github.com/shakibwebx/GadegtsHub-Server/models"
)

// SetupOrderRoutes registers the /api/orders/* endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, deps *Deps) {
	userAuth := middleware.Auth(deps.Cfg.JWTSecret, deps.Accounts, models.RoleUser)
	anyAuth := middleware.Auth(deps.Cfg.JWTSecret, deps.Accounts, models.RoleUser, models.RoleAdmin)
	adminOnly := middleware.Auth(deps.Cfg.JWTSecret, deps.Accounts, models.RoleAdmin)

	frontendURL := deps.Cfg.FrontendURL

	orders := api.Group("/orders")
	{
		// Gateway callbacks (no auth, vendor-initiated). Redirects also
		// accept GET since the gateway may use either method.
		orders.POST("/payment/ipn", orderControllers.PaymentIPNHandler(deps.Orders))
		orders.POST("/payment/success", orderControllers.PaymentSuccessHandler(deps.Orders, frontendURL))
		orders.POST("/payment/fail", orderControllers.PaymentFailHandler(frontendURL))
		orders.POST("/payment/cancel", orderControllers.PaymentCancelHandler(frontendURL))
		orders.GET("/payment/success", orderControllers.PaymentSuccessHandler(deps.Orders, frontendURL))
		orders.GET("/payment/fail", orderControllers.PaymentFailHandler(frontendURL))
		orders.GET("/payment/cancel", orderControllers.PaymentCancelHandler(frontendURL))

		// Payment verification
		orders.GET("/verify-public", orderControllers.VerifyPaymentPublicHandler(deps.Orders))
		orders.GET("/verify", userAuth, orderControllers.VerifyPaymentHandler(deps.Orders))

		// Admin dashboard
		orders.GET("/revenue", adminOnly, orderControllers.OrderRevenueHandler(deps.Orders))
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Order lifecycle
		orders.POST("", userAuth, orderControllers.CreateOrderHandler(deps.Orders))
		orders.GET("", anyAuth, orderControllers.GetOrdersHandler(deps.Orders))
		orders.PUT("/:id", adminOnly, orderControllers.UpdateOrderStatusHandler(deps.Orders))
	}
}
