package controllers

import (
	"net/http"
	"time"

	"github.com/dhall711/health-coach/services"

	"github.com/gin-gonic/gin"
)

type FoodLogInput struct {
	MealType     string                     `json:"meal_type" binding:"required"`
	AteAt        time.Time                  `json:"ate_at"`
	LapseContext string                     `json:"lapse_context"`
	Items        []services.FoodItemRequest `json:"items" binding:"required,min=1"`
}

func AddFoodLog(c *gin.Context) {
	uid := c.GetUint("userID")

	var input FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.AddFoodLog(uid, input.MealType, input.AteAt, input.LapseContext, input.Items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": log.ID, "total_calories": log.TotalCalories})
}

func ListFoodLogs(c *gin.Context) {
	uid := c.GetUint("userID")

	from, to, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dates must be YYYY-MM-DD"})
		return
	}

	logs, err := services.ListFoodLogs(uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"food_logs": logs})
}

func DeleteFoodLog(c *gin.Context) {
	uid := c.GetUint("userID")

	id, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := services.DeleteFoodLog(uid, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func GetCalorieAdherence(c *gin.Context) {
	uid := c.GetUint("userID")

	days := intQuery(c, "days", 7)
	rows, err := services.GetCalorieAdherence(uid, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": rows})
}

func GetMacroBreakdown(c *gin.Context) {
	uid := c.GetUint("userID")

	days := intQuery(c, "days", 7)
	summary, err := services.GetMacroBreakdown(uid, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
