package models

import (
	"time"

	"gorm.io/gorm"
)

// CalendarAccount holds the OAuth material for a user's calendar
// provider. Token acquisition/refresh happens outside this service; we
// only read the stored token and the Connected flag.
type CalendarAccount struct {
	gorm.Model
	UserID       uint   `gorm:"uniqueIndex;not null"`
	Provider     string `gorm:"size:20;default:google"`
	AccessToken  string `gorm:"type:text"`
	RefreshToken string `gorm:"type:text"`
	ExpiresAt    time.Time
	Connected    bool `gorm:"default:false"`
}
