package models

import (
	"time"

	"gorm.io/gorm"
)

type WorkoutLog struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	StartedAt      time.Time `gorm:"index;not null" json:"started_at"`
	Type           string    `gorm:"size:40" json:"type"`
	DurationMin    int       `json:"duration_min"`
	CaloriesBurned float64   `json:"calories_burned"`
	AvgHR          *int      `json:"avg_hr,omitempty"`
	// ExternalID is the upstream event id when the workout was mirrored
	// from an integration; used as an idempotency key on ingest.
	ExternalID string `gorm:"size:128;index" json:"external_id,omitempty"`
	Source     string `gorm:"size:20;default:manual" json:"source"`
}
