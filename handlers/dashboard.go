package handlers

import (
	"log"
	"net/http"

	"finance-api/middleware"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Dashboard StatsProvider
}

func NewDashboardHandler(dashboard StatsProvider) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

// Get returns the user's dashboard snapshot. A user with no records gets an
// all-zero snapshot, never an error.
func (h *DashboardHandler) Get(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	stats, err := h.Dashboard.Stats(ctx, middleware.GetUserID(c))
	if err != nil {
		log.Printf("Dashboard computation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
