package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dhall711/health-coach/config"
	"github.com/dhall711/health-coach/models"
	"github.com/dhall711/health-coach/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StreakStatus string

const (
	StatusAlreadyCheckedIn StreakStatus = "already_checked_in"
	StatusNoActivity       StreakStatus = "no_activity_today"
	StatusStreakUpdated    StreakStatus = "streak_updated"
	StatusStreakReset      StreakStatus = "streak_reset"
	StatusFreezeUsed       StreakStatus = "freeze_used"
)

// waterCheckInOz is the minimum daily water that counts as activity on
// its own.
const waterCheckInOz = 8.0

// AdvanceStreak applies one day's check-in to the streak state machine.
// Idempotent per day. A freeze bridges exactly one missed day; larger
// gaps reset the streak to 1. Pure; persistence and the activity probe
// live in CheckIn.
func AdvanceStreak(st models.StreakState, today time.Time, hasActivity bool) (models.StreakState, StreakStatus) {
	day := dayStartLocal(today)
	last := lastCheckInDay(&st)

	if last != nil && last.Equal(day) {
		return st, StatusAlreadyCheckedIn
	}
	if !hasActivity {
		return st, StatusNoActivity
	}

	var status StreakStatus
	switch {
	case last != nil && last.Equal(day.AddDate(0, 0, -1)):
		st.CurrentStreak++
		status = StatusStreakUpdated
	case last != nil && last.Equal(day.AddDate(0, 0, -2)) && st.FreezesRemaining > 0:
		st.FreezesRemaining--
		st.FreezesUsed++
		st.CurrentStreak++
		status = StatusFreezeUsed
	default:
		st.CurrentStreak = 1
		status = StatusStreakReset
	}

	if st.CurrentStreak > st.LongestStreak {
		st.LongestStreak = st.CurrentStreak
	}
	d := datatypes.Date(day)
	st.LastCheckInDate = &d
	return st, status
}

func lastCheckInDay(st *models.StreakState) *time.Time {
	if st.LastCheckInDate == nil {
		return nil
	}
	day := dayStartLocal(time.Time(*st.LastCheckInDate))
	return &day
}

// CheckIn runs today's streak transition for the user. The write is a
// conditional update guarded on the last_check_in_date we read, so two
// concurrent check-ins cannot both apply: the loser re-reads and
// reports already_checked_in instead of silently losing an increment.
func CheckIn(userID uint) (*models.StreakState, StreakStatus, error) {
	st, err := GetOrCreateStreak(userID)
	if err != nil {
		return nil, "", err
	}

	today := dayStartLocal(time.Now())
	hasActivity, err := hasActivityOn(userID, today)
	if err != nil {
		return nil, "", err
	}

	next, status := AdvanceStreak(*st, today, hasActivity)
	if status == StatusAlreadyCheckedIn || status == StatusNoActivity {
		return st, status, nil
	}

	res := config.DB.Model(&models.StreakState{}).
		Where("id = ? AND last_check_in_date IS NOT DISTINCT FROM ?", st.ID, st.LastCheckInDate).
		Updates(map[string]any{
			"current_streak":     next.CurrentStreak,
			"longest_streak":     next.LongestStreak,
			"last_check_in_date": next.LastCheckInDate,
			"freezes_remaining":  next.FreezesRemaining,
			"freezes_used":       next.FreezesUsed,
		})
	if res.Error != nil {
		return nil, "", res.Error
	}
	if res.RowsAffected == 0 {
		// A concurrent check-in won the race; report theirs.
		fresh, err := GetOrCreateStreak(userID)
		if err != nil {
			return nil, "", err
		}
		return fresh, StatusAlreadyCheckedIn, nil
	}

	if next.CurrentStreak > 0 && next.CurrentStreak%7 == 0 {
		EmitAlert(userID, "info", fmt.Sprintf("%d-day streak! Keep the chain going.", next.CurrentStreak))
		if user, err := GetUser(userID); err == nil {
			if err := utils.SendStreakMilestoneEmail(user.Email, next.CurrentStreak); err != nil {
				log.Printf("streak milestone email failed for user %d: %v", userID, err)
			}
		}
	}

	return &next, status, nil
}

// GetOrCreateStreak returns the user's streak row, seeding a fresh user
// with one free freeze.
func GetOrCreateStreak(userID uint) (*models.StreakState, error) {
	var st models.StreakState
	err := config.DB.Where("user_id = ?", userID).First(&st).Error
	if err == nil {
		return &st, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	st = models.StreakState{UserID: userID, FreezesRemaining: 1}
	if err := config.DB.Create(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

// hasActivityOn reports whether the user logged anything that counts as
// activity on the given local day: food, a workout, a weigh-in, any
// mobility minutes, or at least 8oz of water.
func hasActivityOn(userID uint, day time.Time) (bool, error) {
	start := dayStartLocal(day)
	end := start.AddDate(0, 0, 1)

	var n int64
	if err := config.DB.Model(&models.FoodLog{}).
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, start, end).
		Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}

	if err := config.DB.Model(&models.WorkoutLog{}).
		Where("user_id = ? AND started_at >= ? AND started_at < ?", userID, start, end).
		Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}

	if err := config.DB.Model(&models.WeightLog{}).
		Where("user_id = ? AND measured_at >= ? AND measured_at < ?", userID, start, end).
		Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}

	waterOz, mobilityMin, err := GetDailyActivity(userID, start)
	if err != nil {
		return false, err
	}
	return waterOz >= waterCheckInOz || mobilityMin > 0, nil
}
