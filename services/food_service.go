package services

import (
	"time"

	"github.com/dhall711/health-coach/config"
	"github.com/dhall711/health-coach/models"
)

type FoodItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// AddFoodLog stores a meal with its item snapshot. Totals are taken
// from the items when the caller didn't supply them.
func AddFoodLog(userID uint, mealType string, ateAt time.Time, lapseContext string, items []FoodItemRequest) (*models.FoodLog, error) {
	if ateAt.IsZero() {
		ateAt = time.Now()
	}
	log := &models.FoodLog{
		UserID:       userID,
		AteAt:        ateAt,
		MealType:     mealType,
		LapseContext: lapseContext,
	}
	for _, it := range items {
		log.Items = append(log.Items, models.FoodLogItem{
			Name:     it.Name,
			Calories: it.Calories,
			ProteinG: it.ProteinG,
			CarbsG:   it.CarbsG,
			FatG:     it.FatG,
		})
		log.TotalCalories += it.Calories
		log.ProteinG += it.ProteinG
		log.CarbsG += it.CarbsG
		log.FatG += it.FatG
	}
	if err := config.DB.Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

func ListFoodLogs(userID uint, from, to time.Time) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := config.DB.
		Preload("Items").
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, from, to).
		Order("ate_at DESC").
		Find(&logs).Error
	return logs, err
}

func DeleteFoodLog(userID, logID uint) error {
	if err := config.DB.
		Where("food_log_id = ?", logID).
		Delete(&models.FoodLogItem{}).Error; err != nil {
		return err
	}
	return config.DB.
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.FoodLog{}).Error
}

// foodLogsSince fetches logs from local midnight `days-1` days ago
// through now, the window the aggregators and the pattern detector
// operate over.
func foodLogsSince(userID uint, days int) ([]models.FoodLog, error) {
	from := dayStartLocal(time.Now()).AddDate(0, 0, -(days - 1))
	var logs []models.FoodLog
	err := config.DB.
		Where("user_id = ? AND ate_at >= ?", userID, from).
		Order("ate_at ASC").
		Find(&logs).Error
	return logs, err
}

func GetCalorieAdherence(userID uint, days int) ([]DailyAdherence, error) {
	if days <= 0 {
		days = 7
	}
	logs, err := foodLogsSince(userID, days)
	if err != nil {
		return nil, err
	}
	return WeeklyCalorieAdherence(logs, CalorieTarget, days), nil
}

func GetMacroBreakdown(userID uint, days int) (*MacroSummary, error) {
	if days <= 0 {
		days = 7
	}
	logs, err := foodLogsSince(userID, days)
	if err != nil {
		return nil, err
	}
	m := MacroBreakdown(logs)
	return &m, nil
}
