package models

// Categories is the closed set of menu categories the shop sells.
var Categories = []string{"Fish", "Prawns", "Crabs", "Squid", "Frozen"}

// Product is a menu item. ID is empty until the backend has created it.
type Product struct {
	ID           string  `json:"_id,omitempty"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"imageUrl"`
	DeliveryTime string  `json:"deliveryTime"`
}
