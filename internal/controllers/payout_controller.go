package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fishyy_admin/internal/filter"
	"fishyy_admin/internal/models"
)

// ListPayouts renders the payout history with driver ids resolved to
// display names against the roster snapshot.
func ListPayouts(c *gin.Context) {
	term := dashboard.SearchTerm()
	if q, ok := c.GetQuery("search"); ok {
		term = q
	}

	drivers := dashboard.Drivers()
	payouts := filter.Withdrawals(dashboard.Withdrawals(), drivers, term)
	cards := make([]gin.H, 0, len(payouts))
	for _, w := range payouts {
		cards = append(cards, gin.H{
			"payout":     w,
			"driverName": models.DriverName(drivers, w.DriverID),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": cards, "loading": dashboard.Loading()})
}
