package services

import (
	"time"

	"github.com/dhall711/health-coach/config"
	"github.com/dhall711/health-coach/models"

	"gorm.io/datatypes"
)

// DailyProtein is one day of the protein series in the weekly report.
type DailyProtein struct {
	Date     string  `json:"date"`
	ProteinG float64 `json:"protein_g"`
}

// WeeklyInsights is the 7-day dashboard summary. Everything here is
// recomputed from source records on each call; nothing derived is
// persisted.
type WeeklyInsights struct {
	AvgWeight     float64          `json:"avgWeight"`
	WeightCount   int              `json:"weightCount"`
	AvgCalories   float64          `json:"avgCalories"`
	AvgProtein    float64          `json:"avgProtein"`
	CalorieTarget float64          `json:"calorieTarget"`
	ProteinTarget float64          `json:"proteinTarget"`
	TotalWorkouts int              `json:"totalWorkouts"`
	AvgWaterOz    float64          `json:"avgWaterOz"`
	DailyCalories []DailyAdherence `json:"dailyCalories"`
	DailyProtein  []DailyProtein   `json:"dailyProtein"`
}

func GetWeeklyInsights(userID uint) (*WeeklyInsights, error) {
	const days = 7
	now := time.Now()
	from := dayStartLocal(now).AddDate(0, 0, -(days - 1))

	out := &WeeklyInsights{
		CalorieTarget: CalorieTarget,
		ProteinTarget: ProteinTargetG,
	}

	// Weight: averaged over the reconciled view, not the raw rows.
	var weighIns []models.WeightLog
	if err := config.DB.
		Where("user_id = ? AND measured_at >= ?", userID, from).
		Order("measured_at ASC").
		Find(&weighIns).Error; err != nil {
		return nil, err
	}
	reconciled := ReconcileWeighIns(weighIns)
	out.WeightCount = len(reconciled)
	if len(reconciled) > 0 {
		var sum float64
		for _, w := range reconciled {
			sum += w.WeightLbs
		}
		out.AvgWeight = round1(sum / float64(len(reconciled)))
	}

	foodLogs, err := foodLogsSince(userID, days)
	if err != nil {
		return nil, err
	}
	out.DailyCalories = WeeklyCalorieAdherence(foodLogs, CalorieTarget, days)

	proteinByDay := make(map[string]float64)
	for _, l := range foodLogs {
		proteinByDay[localDayKey(l.AteAt)] += l.ProteinG
	}
	var calSum, protSum float64
	var calDays, protDays int
	for _, row := range out.DailyCalories {
		out.DailyProtein = append(out.DailyProtein, DailyProtein{Date: row.Date, ProteinG: proteinByDay[row.Date]})
		if row.Calories > 0 {
			calSum += row.Calories
			calDays++
		}
		if p := proteinByDay[row.Date]; p > 0 {
			protSum += p
			protDays++
		}
	}
	if calDays > 0 {
		out.AvgCalories = round1(calSum / float64(calDays))
	}
	if protDays > 0 {
		out.AvgProtein = round1(protSum / float64(protDays))
	}

	workouts, err := workoutsSince(userID, days)
	if err != nil {
		return nil, err
	}
	out.TotalWorkouts = len(workouts)

	var activity []models.DailyActivityLog
	if err := config.DB.
		Where("user_id = ? AND date >= ?", userID, datatypes.Date(from)).
		Find(&activity).Error; err != nil {
		return nil, err
	}
	if len(activity) > 0 {
		var waterSum float64
		for _, a := range activity {
			waterSum += a.WaterOz
		}
		out.AvgWaterOz = round1(waterSum / float64(len(activity)))
	}

	return out, nil
}

// GetPatternInsights runs the behavioral rule engine over the trailing
// two weeks of logs.
func GetPatternInsights(userID uint) ([]Insight, error) {
	const days = 14
	foodLogs, err := foodLogsSince(userID, days)
	if err != nil {
		return nil, err
	}
	workouts, err := workoutsSince(userID, days)
	if err != nil {
		return nil, err
	}
	return DetectPatterns(foodLogs, workouts, CalorieTarget, days), nil
}
