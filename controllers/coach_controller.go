package controllers

import (
	"net/http"

	"github.com/dhall711/health-coach/services"

	"github.com/gin-gonic/gin"
)

type CoachController struct {
	Coach *services.CoachService
}

func NewCoachController(coach *services.CoachService) *CoachController {
	return &CoachController{Coach: coach}
}

func (cc *CoachController) GetSuggestions(c *gin.Context) {
	uid := c.GetUint("userID")

	recs, err := cc.Coach.GetSuggestions(uid)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": recs})
}
