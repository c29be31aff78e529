package models

import (
	"time"

	"gorm.io/gorm"
)

// Weight sources, in authority order. When two sources mirror the same
// weigh-in, the lower-ranked source wins (see services.ReconcileWeighIns).
const (
	SourceWithings    = "withings"
	SourceManual      = "manual"
	SourceAppleHealth = "apple_health"
	SourceTrendweight = "trendweight"
)

type WeightLog struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	MeasuredAt time.Time `gorm:"index;not null" json:"measured_at"`
	WeightLbs  float64   `gorm:"not null" json:"weight_lbs"`
	BodyFatPct *float64  `json:"body_fat_pct,omitempty"`
	Source     string    `gorm:"size:20;default:manual" json:"source"`
}
