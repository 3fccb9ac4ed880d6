package routes

import (
	"fishyy_admin/internal/controllers"
	"github.com/gin-gonic/gin"
)

func DriverRoutes(r *gin.Engine) {
	drivers := r.Group("/drivers")
	{
		drivers.GET("", controllers.ListDrivers)
	}
}
