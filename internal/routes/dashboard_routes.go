package routes

import (
	"fishyy_admin/internal/controllers"
	"github.com/gin-gonic/gin"
)

func DashboardRoutes(r *gin.Engine) {
	dash := r.Group("/dashboard")
	{
		dash.GET("", controllers.GetDashboard)
		dash.POST("/view", controllers.SetView)
		dash.PUT("/search", controllers.SetSearch)
	}
}
