package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"fishyy_admin/internal/middleware"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Recovery middleware
	r.Use(gin.Recovery())

	// Request logging middleware
	r.Use(ginlogger.SetLogger())

	r.Use(middleware.RequestID())

	DashboardRoutes(r)
	OrderRoutes(r)
	DriverRoutes(r)
	PayoutRoutes(r)
	InventoryRoutes(r)

	return r
}
