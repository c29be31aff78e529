package services

import (
	"fmt"
	"time"

	"github.com/dhall711/health-coach/config"
	"github.com/dhall711/health-coach/models"
)

// AddWorkout stores a session. Mirrors of sessions already in the store
// (matching external id, or fuzzy start/duration match) are refused
// with ok=false rather than inserted.
func AddWorkout(userID uint, startedAt time.Time, workoutType string, durationMin int, caloriesBurned float64, avgHR *int, externalID, source string) (*models.WorkoutLog, bool, error) {
	if durationMin <= 0 {
		return nil, false, fmt.Errorf("duration must be positive")
	}
	if startedAt.IsZero() {
		startedAt = time.Now()
	}
	if source == "" {
		source = models.SourceManual
	}

	var nearby []models.WorkoutLog
	q := config.DB.Where("user_id = ? AND started_at BETWEEN ? AND ?",
		userID, startedAt.Add(-workoutDedupWindow), startedAt.Add(workoutDedupWindow))
	if externalID != "" {
		q = config.DB.Where(
			"user_id = ? AND (external_id = ? OR started_at BETWEEN ? AND ?)",
			userID, externalID, startedAt.Add(-workoutDedupWindow), startedAt.Add(workoutDedupWindow))
	}
	if err := q.Find(&nearby).Error; err != nil {
		return nil, false, err
	}

	cand := models.WorkoutLog{
		UserID:         userID,
		StartedAt:      startedAt,
		Type:           workoutType,
		DurationMin:    durationMin,
		CaloriesBurned: caloriesBurned,
		AvgHR:          avgHR,
		ExternalID:     externalID,
		Source:         source,
	}
	if isDuplicateWorkout(nearby, cand) {
		return nil, false, nil
	}

	if err := config.DB.Create(&cand).Error; err != nil {
		return nil, false, err
	}
	return &cand, true, nil
}

// ListWorkouts returns the reconciled view of sessions in [from, to).
func ListWorkouts(userID uint, from, to time.Time) ([]models.WorkoutLog, error) {
	var logs []models.WorkoutLog
	err := config.DB.
		Where("user_id = ? AND started_at >= ? AND started_at < ?", userID, from, to).
		Order("started_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return ReconcileWorkouts(logs), nil
}

func DeleteWorkout(userID, logID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.WorkoutLog{}).Error
}

func workoutsSince(userID uint, days int) ([]models.WorkoutLog, error) {
	from := dayStartLocal(time.Now()).AddDate(0, 0, -(days - 1))
	var logs []models.WorkoutLog
	err := config.DB.
		Where("user_id = ? AND started_at >= ?", userID, from).
		Order("started_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return ReconcileWorkouts(logs), nil
}
