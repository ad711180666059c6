package permissions

import "gamediary/models"

// Predicates deciding whether the acting user may view or mutate a
// target record. All of them are pure functions over already-loaded
// records; callers fetch the target first and fall back to a safe
// default (error response, empty result) when a predicate fails.

// IsMemberOf returns true when the allowed set contains the RoleAll
// wildcard, or when the acting user's role is in the allowed set.
// A nil user never matches anything but the wildcard.
func IsMemberOf(user *models.User, allowed []models.Role) bool {
	for _, role := range allowed {
		if role == models.RoleAll {
			return true
		}
	}
	if user == nil {
		return false
	}
	for _, role := range allowed {
		if user.Role == role {
			return true
		}
	}
	return false
}

// IsAdmin returns true when the acting user carries the admin role
func IsAdmin(user *models.User) bool {
	return user.IsAdmin()
}

// OwnsProfile returns true when the acting user is an administrator or
// the target profile belongs to them
func OwnsProfile(user *models.User, profile *models.Profile) bool {
	if user == nil || profile == nil {
		return false
	}
	return user.IsAdmin() || profile.UserID == user.ID
}

// CanViewProfile returns true when the acting user is an administrator,
// owns the target profile, or the target profile is public
func CanViewProfile(user *models.User, profile *models.Profile) bool {
	if user == nil || profile == nil {
		return false
	}
	return user.IsAdmin() || profile.UserID == user.ID || !profile.IsPrivate
}

// OwnsGameCard returns true when the acting user is an administrator or
// the card belongs to their profile
func OwnsGameCard(user *models.User, card *models.GameCard) bool {
	if user == nil || card == nil {
		return false
	}
	return user.IsAdmin() || card.ProfileID == user.ID
}

// CanViewGameCard returns true when the acting user is an administrator,
// owns the card, or the card's owning profile is public. Requires the
// card's Profile to be loaded for the privacy check.
func CanViewGameCard(user *models.User, card *models.GameCard) bool {
	if user == nil || card == nil {
		return false
	}
	if user.IsAdmin() || card.ProfileID == user.ID {
		return true
	}
	return card.Profile != nil && !card.Profile.IsPrivate
}
