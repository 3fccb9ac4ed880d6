package routes

import (
	"fishyy_admin/internal/controllers"
	"github.com/gin-gonic/gin"
)

func InventoryRoutes(r *gin.Engine) {
	inv := r.Group("/inventory")
	{
		inv.POST("/unlock", controllers.UnlockInventory)
		inv.GET("/products", controllers.ListProducts)
		inv.POST("/products", controllers.CreateProduct)
		inv.PUT("/products/:id", controllers.UpdateProduct)
		inv.DELETE("/products/:id", controllers.DeleteProduct)
	}
}
