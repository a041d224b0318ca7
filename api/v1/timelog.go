package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freelancetrack/dto"
	"github.com/freelancetrack/models"
	"github.com/freelancetrack/services"
)

var timeLogService = services.NewTimeLogService()

// ListTimeLogs returns the authenticated user's time logs, most recent first
func ListTimeLogs(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	logs, err := timeLogService.ListTimeLogs(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve time logs: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   logs,
	})
}

// CreateTimeLog persists a completed interval (timer stop or manual entry)
func CreateTimeLog(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.CreateTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	log, err := timeLogService.CreateTimeLog(userID.(string), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInterval) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "End time must be after start time",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create time log: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   log,
	})
}

// UpdateTimeLog edits an existing time log
func UpdateTimeLog(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	logID := c.Param("id")

	var req dto.UpdateTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	log, err := timeLogService.UpdateTimeLog(logID, userID.(string), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInterval) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "End time must be after start time",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update time log: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   log,
	})
}

// DeleteTimeLog removes a time log
func DeleteTimeLog(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	logID := c.Param("id")
	if err := timeLogService.DeleteTimeLog(logID, userID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete time log: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Time log deleted successfully",
	})
}
