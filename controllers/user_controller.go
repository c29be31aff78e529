package controllers

import (
	"net/http"

	"github.com/dhall711/health-coach/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	user, err := services.GetUser(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":           user.Email,
		"full_name":       user.FullName,
		"goal_weight_lbs": user.GoalWeightLbs,
		"timezone":        user.Timezone,
	})
}

func UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateProfile(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":           user.Email,
		"full_name":       user.FullName,
		"goal_weight_lbs": user.GoalWeightLbs,
		"timezone":        user.Timezone,
	})
}
