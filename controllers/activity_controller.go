package controllers

import (
	"net/http"
	"time"

	"github.com/dhall711/health-coach/services"

	"github.com/gin-gonic/gin"
)

// UpdateDailyActivity handles manual updates for the current day's water
// and mobility totals.
func UpdateDailyActivity(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		WaterOz     float64 `json:"water_oz"`
		MobilityMin float64 `json:"mobility_min"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpsertDailyActivity(uid, body.WaterOz, body.MobilityMin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func GetDailyActivity(c *gin.Context) {
	uid := c.GetUint("userID")

	day := time.Now()
	if s := c.Query("date"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = t
	}

	waterOz, mobilityMin, err := services.GetDailyActivity(uid, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         day.Format("2006-01-02"),
		"water_oz":     waterOz,
		"mobility_min": mobilityMin,
		"water_goal":   services.WaterGoalOz,
	})
}
