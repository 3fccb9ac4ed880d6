package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fishyy_admin/internal/models"
)

// --- Helper Structs for Request Bodies ---

// viewPayload selects the active dashboard section.
type viewPayload struct {
	View string `json:"view" binding:"required"`
}

// searchPayload carries the search term; a pointer so an empty string can
// clear the box without tripping required-field validation.
type searchPayload struct {
	Search *string `json:"search" binding:"required"`
}

// GetDashboard reports the section state the frontend renders from.
func GetDashboard(c *gin.Context) {
	view := dashboard.View()
	c.JSON(http.StatusOK, gin.H{
		"view":       view,
		"loading":    dashboard.Loading(),
		"searchTerm": dashboard.SearchTerm(),
		"searchable": view.Searchable(),
	})
}

// SetView switches the active section. The store resets the search term
// and restarts the polling cycle for the new section.
func SetView(c *gin.Context) {
	var payload viewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := dashboard.SetView(models.View(payload.View)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown view. Use orders, drivers, menu or payouts."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "View changed.", "view": payload.View})
}

// SetSearch updates the search term for the active section.
func SetSearch(c *gin.Context) {
	var payload searchPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	dashboard.SetSearch(*payload.Search)
	c.JSON(http.StatusOK, gin.H{"searchTerm": *payload.Search})
}
