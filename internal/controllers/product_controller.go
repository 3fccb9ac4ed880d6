package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fishyy_admin/internal/inventory"
	"fishyy_admin/internal/models"
)

// --- Helper Structs for Request Bodies ---

// pinPayload unlocks the inventory screen.
type pinPayload struct {
	PIN string `json:"pin" binding:"required"`
}

// productInput is the add/edit form. Name and price are required and the
// category is a closed choice, matching the form controls; the rest is
// free text.
type productInput struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required,oneof=Fish Prawns Crabs Squid Frozen"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"imageUrl"`
	DeliveryTime string  `json:"deliveryTime"`
}

// deletePayload must carry confirm=true before a delete goes out.
type deletePayload struct {
	Confirm bool `json:"confirm"`
}

func (in productInput) toProduct(id string) models.Product {
	return models.Product{
		ID:           id,
		Name:         in.Name,
		Category:     in.Category,
		Price:        in.Price,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		DeliveryTime: in.DeliveryTime,
	}
}

// --- Inventory Controller Functions ---

// UnlockInventory checks the PIN and, on success, loads the menu.
// This gate is a screen convenience, not an auth mechanism.
func UnlockInventory(c *gin.Context) {
	var payload pinPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := inv.Unlock(c.Request.Context(), payload.PIN); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory unlocked."})
}

// ListProducts returns the menu once the gate is open.
func ListProducts(c *gin.Context) {
	products, err := inv.Products()
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

// CreateProduct adds a new menu item.
func CreateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product: " + err.Error()})
		return
	}

	saved, err := inv.Save(c.Request.Context(), input.toProduct(""))
	if errors.Is(err, inventory.ErrLocked) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error saving product: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product Added!", "product": saved})
}

// UpdateProduct replaces an existing menu item's fields.
func UpdateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product: " + err.Error()})
		return
	}

	saved, err := inv.Save(c.Request.Context(), input.toProduct(c.Param("id")))
	if errors.Is(err, inventory.ErrLocked) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error saving product: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product Updated!", "product": saved})
}

// DeleteProduct removes a menu item after an explicit confirmation.
func DeleteProduct(c *gin.Context) {
	var payload deletePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	err := inv.Delete(c.Request.Context(), c.Param("id"), payload.Confirm)
	switch {
	case errors.Is(err, inventory.ErrLocked):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, inventory.ErrDeleteNotConfirmed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error deleting product: " + err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted."})
	}
}
