package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	FullName      string
	GoalWeightLbs float64 // 0 = no goal set
	Timezone      string  `gorm:"size:64"` // IANA name; empty = server local
}
