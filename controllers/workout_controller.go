package controllers

import (
	"net/http"
	"time"

	"github.com/dhall711/health-coach/services"

	"github.com/gin-gonic/gin"
)

type WorkoutInput struct {
	StartedAt      time.Time `json:"started_at"`
	Type           string    `json:"type" binding:"required"`
	DurationMin    int       `json:"duration_min" binding:"required"`
	CaloriesBurned float64   `json:"calories_burned"`
	AvgHR          *int      `json:"avg_hr"`
	ExternalID     string    `json:"external_id"`
	Source         string    `json:"source"`
}

func AddWorkout(c *gin.Context) {
	uid := c.GetUint("userID")

	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, created, err := services.AddWorkout(uid, input.StartedAt, input.Type, input.DurationMin,
		input.CaloriesBurned, input.AvgHR, input.ExternalID, input.Source)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "duplicate session ignored", "created": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"created": true, "id": entry.ID})
}

func ListWorkouts(c *gin.Context) {
	uid := c.GetUint("userID")

	from, to, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dates must be YYYY-MM-DD"})
		return
	}

	logs, err := services.ListWorkouts(uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workouts": logs})
}

func DeleteWorkout(c *gin.Context) {
	uid := c.GetUint("userID")

	id, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := services.DeleteWorkout(uid, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
