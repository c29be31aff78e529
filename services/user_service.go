package services

import (
	"github.com/dhall711/health-coach/config"
	"github.com/dhall711/health-coach/models"
)

func GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type ProfileUpdate struct {
	FullName      *string  `json:"full_name"`
	GoalWeightLbs *float64 `json:"goal_weight_lbs"`
	Timezone      *string  `json:"timezone"`
}

func UpdateProfile(userID uint, in ProfileUpdate) (*models.User, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.GoalWeightLbs != nil {
		user.GoalWeightLbs = *in.GoalWeightLbs
	}
	if in.Timezone != nil {
		user.Timezone = *in.Timezone
	}
	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
