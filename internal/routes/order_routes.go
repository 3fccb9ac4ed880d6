package routes

import (
	"fishyy_admin/internal/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(r *gin.Engine) {
	orders := r.Group("/orders")
	{
		orders.GET("", controllers.ListOrders)
		orders.POST("/:id/status", controllers.UpdateOrderStatus)
		orders.PUT("/:id/driver", controllers.SelectDriver)
		orders.POST("/:id/assign", controllers.AssignDriver)
	}
}
