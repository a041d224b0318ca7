package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freelancetrack/services"
)

var dashboardService = services.NewDashboardService()

// GetDashboardStats returns the aggregated dashboard payload: totals,
// hours-by-project distribution, trailing-week activity and status breakdowns
func GetDashboardStats(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	statsResponse, err := dashboardService.GetStats(userID.(string), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute dashboard stats: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   statsResponse,
	})
}

// GetRoadmap returns the timeline rows for the roadmap view
func GetRoadmap(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	rows, err := dashboardService.GetRoadmap(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build roadmap: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   rows,
	})
}
