package controllers

import (
	"net/http"

	"github.com/dhall711/health-coach/config"
	"github.com/dhall711/health-coach/models"

	"github.com/gin-gonic/gin"
)

type toggleReq struct {
	Enabled bool `json:"enabled"`
}

// ToggleNotifications enables or disables push on all of the user's
// registered devices.
func ToggleNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := config.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", uid).
		Update("enabled", req.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": req.Enabled,
	})
}

// ListAlerts returns the user's most recent alerts, newest first.
func ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	var alerts []models.Alert
	if err := config.DB.
		Where("user_id = ?", uid).
		Order("created_at DESC").
		Limit(50).
		Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
