package services

import (
	"errors"
	"fmt"

	"gamediary/config"
	"gamediary/database"
	"gamediary/models"

	"gorm.io/gorm"
)

// PendingRequests returns all active requests, newest first
func PendingRequests() ([]models.PlayerRequest, error) {
	var requests []models.PlayerRequest
	err := database.DB.Preload("Profile").Preload("Profile.User").
		Where("active = ?", true).Order("timestamp DESC").Find(&requests).Error
	return requests, err
}

// SolvedRequests returns all solved requests, newest first
func SolvedRequests() ([]models.PlayerRequest, error) {
	var requests []models.PlayerRequest
	err := database.DB.Preload("Profile").Preload("Profile.User").
		Where("active = ?", false).Order("timestamp DESC").Find(&requests).Error
	return requests, err
}

// AllRequests returns every request, newest first
func AllRequests() ([]models.PlayerRequest, error) {
	var requests []models.PlayerRequest
	err := database.DB.Preload("Profile").Preload("Profile.User").
		Order("timestamp DESC").Find(&requests).Error
	return requests, err
}

// PendingCountForProfile counts the profile's active requests.
// A nil profile counts as zero rather than counting the whole table.
func PendingCountForProfile(profile *models.Profile) (int64, error) {
	if profile == nil {
		return 0, nil
	}
	var count int64
	err := database.DB.Model(&models.PlayerRequest{}).
		Where("profile_id = ? AND active = ?", profile.UserID, true).Count(&count).Error
	return count, err
}

// CreateRequest files a new support request for the profile. A profile
// may hold at most config.MaxPendingRequests pending requests at once;
// creation beyond the limit fails with ErrQuotaExceeded.
func CreateRequest(profile *models.Profile, text string) (*models.PlayerRequest, error) {
	if profile == nil {
		return nil, ErrPermissionDenied
	}

	pending, err := PendingCountForProfile(profile)
	if err != nil {
		return nil, err
	}
	if pending >= int64(config.MaxPendingRequests) {
		return nil, ErrQuotaExceeded
	}

	request := models.PlayerRequest{
		ProfileID: profile.UserID,
		Text:      text,
		Active:    true,
	}
	if err := database.DB.Create(&request).Error; err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Profile = profile
	return &request, nil
}

// SwitchRequestStatus flips a request between pending and solved.
// There is no terminal state: a solved request can always be reopened.
func SwitchRequestStatus(requestID uint) (*models.PlayerRequest, error) {
	var request models.PlayerRequest
	err := database.DB.Preload("Profile").Preload("Profile.User").
		First(&request, "id = ?", requestID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	request.Active = !request.Active
	if err := database.DB.Model(&request).Update("active", request.Active).Error; err != nil {
		return nil, err
	}
	return &request, nil
}
