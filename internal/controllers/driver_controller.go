package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListDrivers renders the fleet roster. Existence and online status are
// backend-owned; the dashboard only displays them.
func ListDrivers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data":    dashboard.Drivers(),
		"loading": dashboard.Loading(),
	})
}
