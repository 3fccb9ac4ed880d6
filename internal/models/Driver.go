package models

// Driver is a fleet member as the backend serves it. Existence and the
// online flag are backend-owned; this service only reads them.
type Driver struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	VehicleNumber string `json:"vehicleNumber"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	IsOnline      bool   `json:"isOnline"`
}

// DriverName resolves a driver id against a roster for display.
func DriverName(drivers []Driver, id string) string {
	for _, d := range drivers {
		if d.ID == id {
			return d.Name
		}
	}
	return "Unknown Driver"
}
