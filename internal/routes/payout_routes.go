package routes

import (
	"fishyy_admin/internal/controllers"
	"github.com/gin-gonic/gin"
)

func PayoutRoutes(r *gin.Engine) {
	payouts := r.Group("/payouts")
	{
		payouts.GET("", controllers.ListPayouts)
	}
}
