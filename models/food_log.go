package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged eating event (breakfast/lunch/…) with an item snapshot.
// Totals are stored denormalized so analytics never need the items.
type FoodLog struct {
	gorm.Model
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	AteAt         time.Time `gorm:"index;not null" json:"ate_at"`
	MealType      string    `gorm:"size:20" json:"meal_type"` // breakfast|lunch|dinner|snack|drink
	TotalCalories float64   `json:"total_calories"`
	ProteinG      float64   `json:"protein_g"`
	CarbsG        float64   `json:"carbs_g"`
	FatG          float64   `json:"fat_g"`
	LapseContext  string    `gorm:"size:40" json:"lapse_context,omitempty"` // situational trigger tag, e.g. "stressed"
	Items         []FoodLogItem `json:"items"`
}

type FoodLogItem struct {
	gorm.Model
	FoodLogID uint    `gorm:"index" json:"food_log_id"`
	Name      string  `gorm:"not null" json:"name"`
	Calories  float64 `json:"calories"`
	ProteinG  float64 `json:"protein_g"`
	CarbsG    float64 `json:"carbs_g"`
	FatG      float64 `json:"fat_g"`
}
