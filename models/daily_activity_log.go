package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Per-day water and mobility totals, upserted by (user_id, date).
type DailyActivityLog struct {
	gorm.Model
	UserID      uint           `gorm:"index;not null" json:"user_id"`
	Date        datatypes.Date `gorm:"index;not null" json:"-"`
	WaterOz     float64        `json:"water_oz"`
	MobilityMin float64        `json:"mobility_min"`
}
