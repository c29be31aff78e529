package controllers

import (
	"net/http"
	"time"

	"github.com/dhall711/health-coach/models"
	"github.com/dhall711/health-coach/services"

	"github.com/gin-gonic/gin"
)

func streakJSON(st *models.StreakState) gin.H {
	out := gin.H{
		"current_streak":    st.CurrentStreak,
		"longest_streak":    st.LongestStreak,
		"freezes_remaining": st.FreezesRemaining,
		"freezes_used":      st.FreezesUsed,
	}
	if st.LastCheckInDate != nil {
		out["last_check_in_date"] = time.Time(*st.LastCheckInDate).Format("2006-01-02")
	}
	return out
}

func GetStreak(c *gin.Context) {
	uid := c.GetUint("userID")

	st, err := services.GetOrCreateStreak(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, streakJSON(st))
}

func StreakCheckIn(c *gin.Context) {
	uid := c.GetUint("userID")

	st, status, err := services.CheckIn(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := streakJSON(st)
	out["status"] = status
	c.JSON(http.StatusOK, out)
}
