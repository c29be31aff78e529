package services

import (
	"fmt"
	"time"

	"github.com/dhall711/health-coach/config"
	"github.com/dhall711/health-coach/models"
)

const maxPlausibleWeightLbs = 500.0

// AddWeighIn validates and stores a weigh-in. Near-duplicates of rows
// already in the store are refused with ok=false so webhook mirrors
// don't re-insert readings the reconciler would drop anyway.
func AddWeighIn(userID uint, measuredAt time.Time, weightLbs float64, bodyFatPct *float64, source string) (*models.WeightLog, bool, error) {
	if weightLbs <= 0 || weightLbs > maxPlausibleWeightLbs {
		return nil, false, fmt.Errorf("weight must be between 0 and %.0f lbs", maxPlausibleWeightLbs)
	}
	if source == "" {
		source = models.SourceManual
	}
	if _, known := sourceRank[source]; !known {
		return nil, false, fmt.Errorf("unknown weight source %q", source)
	}
	if measuredAt.IsZero() {
		measuredAt = time.Now()
	}

	var nearby []models.WeightLog
	if err := config.DB.
		Where("user_id = ? AND measured_at BETWEEN ? AND ?",
			userID, measuredAt.Add(-weighInDedupWindow), measuredAt.Add(weighInDedupWindow)).
		Find(&nearby).Error; err != nil {
		return nil, false, err
	}
	cand := models.WeightLog{
		UserID:     userID,
		MeasuredAt: measuredAt,
		WeightLbs:  weightLbs,
		BodyFatPct: bodyFatPct,
		Source:     source,
	}
	if isDuplicateWeighIn(nearby, cand) {
		return nil, false, nil
	}

	if err := config.DB.Create(&cand).Error; err != nil {
		return nil, false, err
	}
	return &cand, true, nil
}

// ListWeighIns returns the reconciled read-time view of the user's
// weigh-ins in [from, to).
func ListWeighIns(userID uint, from, to time.Time) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	err := config.DB.
		Where("user_id = ? AND measured_at >= ? AND measured_at < ?", userID, from, to).
		Order("measured_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return ReconcileWeighIns(logs), nil
}

func DeleteWeighIn(userID, logID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.WeightLog{}).Error
}

// WeightTrend bundles the smoothed series with the projection outputs.
type WeightTrend struct {
	Points           []RollingAveragePoint `json:"points"`
	GoalWeightLbs    float64               `json:"goal_weight_lbs,omitempty"`
	EstimatedGoal    string                `json:"estimated_goal_date,omitempty"`
	WeeklyChangeRate *float64              `json:"weekly_change_rate,omitempty"`
}

func GetWeightTrend(userID uint, goalWeightLbs float64, windowDays int) (*WeightTrend, error) {
	var logs []models.WeightLog
	if err := config.DB.
		Where("user_id = ?", userID).
		Order("measured_at ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}

	points := RollingAverage(ReconcileWeighIns(logs), windowDays)
	return &WeightTrend{
		Points:           points,
		GoalWeightLbs:    goalWeightLbs,
		EstimatedGoal:    EstimateGoalDate(points, goalWeightLbs),
		WeeklyChangeRate: WeeklyWeightChangeRate(points),
	}, nil
}

func GetWeightTrajectory(userID uint, goalWeightLbs float64) ([]TrajectoryPoint, error) {
	var logs []models.WeightLog
	if err := config.DB.
		Where("user_id = ?", userID).
		Order("measured_at ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	points := RollingAverage(ReconcileWeighIns(logs), 7)
	return ProjectWeightTrajectory(points, goalWeightLbs), nil
}
