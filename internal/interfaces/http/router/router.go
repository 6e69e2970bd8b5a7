package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/interfaces/http/handler"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/interfaces/http/middleware"
)

// Handlers bundles everything RegisterRoutes mounts.
type Handlers struct {
	Menu    *handler.MenuHandler
	Order   *handler.OrderHandler
	Payment *handler.PaymentHandler
	Admin   *handler.AdminHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, adminKey string) {
	api := r.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.GET("/menu", h.Menu.GetMenu)
		api.POST("/orders", h.Order.CreateOrder)
		api.POST("/payment/order", h.Payment.CreatePaymentOrder)

		admin := api.Group("/admin", middleware.AdminKey(adminKey))
		{
			admin.GET("/orders", h.Admin.ListOrders)
			admin.POST("/orders/:order_id/complete", h.Admin.CompleteOrder)
			admin.GET("/analytics", h.Admin.Analytics)
		}
	}
}
