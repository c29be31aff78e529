package controllers

import (
	"net/http"
	"time"

	"github.com/dhall711/health-coach/services"

	"github.com/gin-gonic/gin"
)

type WeighInInput struct {
	MeasuredAt time.Time `json:"measured_at"`
	WeightLbs  float64   `json:"weight_lbs" binding:"required"`
	BodyFatPct *float64  `json:"body_fat_pct"`
	Source     string    `json:"source"`
}

func AddWeighIn(c *gin.Context) {
	uid := c.GetUint("userID")

	var input WeighInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, created, err := services.AddWeighIn(uid, input.MeasuredAt, input.WeightLbs, input.BodyFatPct, input.Source)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !created {
		// A near-identical reading already exists; not an error.
		c.JSON(http.StatusOK, gin.H{"message": "duplicate reading ignored", "created": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"created": true, "id": entry.ID})
}

func ListWeighIns(c *gin.Context) {
	uid := c.GetUint("userID")

	from, to, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dates must be YYYY-MM-DD"})
		return
	}

	logs, err := services.ListWeighIns(uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"weigh_ins": logs})
}

func DeleteWeighIn(c *gin.Context) {
	uid := c.GetUint("userID")

	id, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := services.DeleteWeighIn(uid, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func GetWeightTrend(c *gin.Context) {
	uid := c.GetUint("userID")

	user, err := services.GetUser(uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	window := intQuery(c, "window", 7)
	trend, err := services.GetWeightTrend(uid, user.GoalWeightLbs, window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, trend)
}

func GetWeightTrajectory(c *gin.Context) {
	uid := c.GetUint("userID")

	user, err := services.GetUser(uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	points, err := services.GetWeightTrajectory(uid, user.GoalWeightLbs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trajectory": points})
}
