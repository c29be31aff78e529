package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/dhall711/health-coach/services"

	"github.com/gin-gonic/gin"
)

type ScheduleController struct {
	Cal *services.CalendarService
}

func NewScheduleController(cal *services.CalendarService) *ScheduleController {
	return &ScheduleController{Cal: cal}
}

type ConnectCalendarInput struct {
	Provider     string    `json:"provider" binding:"required"`
	AccessToken  string    `json:"access_token" binding:"required"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (sc *ScheduleController) ConnectCalendar(c *gin.Context) {
	uid := c.GetUint("userID")

	var input ConnectCalendarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := sc.Cal.Connect(uid, input.Provider, input.AccessToken, input.RefreshToken, input.ExpiresAt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"connected": true})
}

func (sc *ScheduleController) DisconnectCalendar(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := sc.Cal.Disconnect(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"connected": false})
}

// SmartSchedule returns the multi-day availability view. A user without
// a connected calendar gets a normal 200 with connected=false.
func (sc *ScheduleController) SmartSchedule(c *gin.Context) {
	uid := c.GetUint("userID")

	days := intQuery(c, "days", 7)
	sched, err := sc.Cal.SmartSchedule(uid, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sched)
}

func (sc *ScheduleController) TodaySchedule(c *gin.Context) {
	uid := c.GetUint("userID")

	sched, err := sc.Cal.TodaySchedule(uid)
	if err != nil {
		if errors.Is(err, services.ErrCalendarNotConnected) {
			c.JSON(http.StatusOK, gin.H{"connected": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connected": true,
		"events":    sched.Events,
		"freeSlots": sched.FreeSlots,
		"bestSlot":  sched.BestSlot,
	})
}
