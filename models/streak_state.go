package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StreakState is a singleton row per user, mutated only by the check-in
// transition in services. Invariant: LongestStreak >= CurrentStreak.
type StreakState struct {
	gorm.Model
	UserID           uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	CurrentStreak    int             `json:"current_streak"`
	LongestStreak    int             `json:"longest_streak"`
	LastCheckInDate  *datatypes.Date `json:"-"`
	FreezesRemaining int             `json:"freezes_remaining"`
	FreezesUsed      int             `json:"freezes_used"`
}
