package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dhall711/health-coach/services"
	"github.com/dhall711/health-coach/utils"

	"github.com/gin-gonic/gin"
)

func GetWeeklyInsights(c *gin.Context) {
	uid := c.GetUint("userID")

	insights, err := services.GetWeeklyInsights(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, insights)
}

func GetPatternInsights(c *gin.Context) {
	uid := c.GetUint("userID")

	insights, err := services.GetPatternInsights(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Empty means "nothing detected", which the client renders as-is.
	if insights == nil {
		insights = []services.Insight{}
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// EmailWeeklyDigest mails the signed-in user their weekly summary.
func EmailWeeklyDigest(c *gin.Context) {
	uid := c.GetUint("userID")

	user, err := services.GetUser(uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	weekly, err := services.GetWeeklyInsights(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Average calories: %.0f (target %.0f)\n", weekly.AvgCalories, weekly.CalorieTarget)
	fmt.Fprintf(&sb, "Average protein: %.0fg (target %.0fg)\n", weekly.AvgProtein, weekly.ProteinTarget)
	fmt.Fprintf(&sb, "Workouts: %d\n", weekly.TotalWorkouts)
	if weekly.WeightCount > 0 {
		fmt.Fprintf(&sb, "Average weight: %.1f lbs over %d weigh-ins\n", weekly.AvgWeight, weekly.WeightCount)
	}
	if weekly.AvgWaterOz > 0 {
		fmt.Fprintf(&sb, "Average water: %.0f oz\n", weekly.AvgWaterOz)
	}

	if err := utils.SendWeeklyDigest(user.Email, sb.String()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send digest"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "digest sent"})
}
