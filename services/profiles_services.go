package services

import (
	"errors"

	"gamediary/database"
	"gamediary/models"

	"gorm.io/gorm"
)

// GetProfile fetches one profile with its owning user loaded
func GetProfile(profileID uint) (*models.Profile, error) {
	var profile models.Profile
	err := database.DB.Preload("User").First(&profile, "user_id = ?", profileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// AllProfiles returns every profile with its owning user loaded
func AllProfiles() ([]models.Profile, error) {
	var profiles []models.Profile
	err := database.DB.Preload("User").Order("user_id").Find(&profiles).Error
	return profiles, err
}

// ToggleProfilePrivacy flips the is_private flag on a profile and
// returns the new value. Each call flips state, so two identical calls
// restore the original value.
func ToggleProfilePrivacy(profile *models.Profile) (bool, error) {
	if profile == nil {
		return false, ErrNotFound
	}
	profile.IsPrivate = !profile.IsPrivate
	if err := database.DB.Model(profile).Update("is_private", profile.IsPrivate).Error; err != nil {
		return false, err
	}
	return profile.IsPrivate, nil
}

// ProfileStats aggregates profile counts for the profile list view
type ProfileStats struct {
	TotalProfiles int64 `json:"total_profiles"`
	TotalPrivate  int64 `json:"total_private"`
}

// CollectProfileStats computes the profile aggregates shown on the profile list
func CollectProfileStats() (ProfileStats, error) {
	var stats ProfileStats
	if err := database.DB.Model(&models.Profile{}).Count(&stats.TotalProfiles).Error; err != nil {
		return stats, err
	}
	err := database.DB.Model(&models.Profile{}).Where("is_private = ?", true).Count(&stats.TotalPrivate).Error
	return stats, err
}
