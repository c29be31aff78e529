package services

import (
	"errors"
	"time"

	"github.com/dhall711/health-coach/config"
	"github.com/dhall711/health-coach/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// UpsertDailyActivity stores the day's water and mobility totals,
// keyed by (user_id, local date).
func UpsertDailyActivity(userID uint, waterOz, mobilityMin float64) error {
	date := datatypes.Date(dayStartLocal(time.Now()))

	log := models.DailyActivityLog{
		UserID:      userID,
		Date:        date,
		WaterOz:     waterOz,
		MobilityMin: mobilityMin,
	}

	return config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Assign(log).
		FirstOrCreate(&log).Error
}

func GetDailyActivity(userID uint, day time.Time) (waterOz, mobilityMin float64, err error) {
	date := datatypes.Date(dayStartLocal(day))

	var log models.DailyActivityLog
	err = config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, nil
		}
		return 0, 0, err
	}
	return log.WaterOz, log.MobilityMin, nil
}
