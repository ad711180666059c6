package profiles

import (
	"gamediary/models"
	"gamediary/services"
)

// Error messages constants
const (
	ErrProfileNotFound    = "Profile was not found in our database"
	ErrProfileIsPrivate   = "This profile is private"
	ErrNoPermissionEdit   = "You don't have permission to edit this profile"
	ErrFailedToGetProfile = "Failed to get profile"
)

// ProfileResponse is a profile detail with its scoped game cards
type ProfileResponse struct {
	Profile        *models.Profile   `json:"profile"`
	GameCards      []models.GameCard `json:"gamecards"`
	TotalGameCards int64             `json:"total_gamecards"`
}

// ProfileListResponse is the profile list with its aggregates
type ProfileListResponse struct {
	Profiles []models.Profile       `json:"profiles"`
	Stats    services.ProfileStats  `json:"stats"`
	Cards    services.GameCardStats `json:"card_stats"`
}
