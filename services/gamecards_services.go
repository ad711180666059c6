package services

import (
	"errors"
	"fmt"
	"strings"

	"gamediary/database"
	"gamediary/models"

	"gorm.io/gorm"
)

// GameCardsForProfile returns all cards owned by the given profile.
// A nil profile yields an empty set, never the whole table.
func GameCardsForProfile(profile *models.Profile) ([]models.GameCard, error) {
	if profile == nil {
		return []models.GameCard{}, nil
	}
	var cards []models.GameCard
	err := database.DB.Preload("Game").Preload("Game.Franchise").
		Joins("JOIN games ON games.id = game_cards.game_id").
		Where("game_cards.profile_id = ?", profile.UserID).
		Order("games.ordering_name").Find(&cards).Error
	return cards, err
}

// GameCardsForProfileStartingWith narrows GameCardsForProfile to cards
// whose game ordering name starts with the given letter. An invalid
// letter yields an empty set.
func GameCardsForProfileStartingWith(profile *models.Profile, letter string) ([]models.GameCard, error) {
	if profile == nil || !validLetter(letter) {
		return []models.GameCard{}, nil
	}
	var cards []models.GameCard
	err := database.DB.Preload("Game").Preload("Game.Franchise").
		Joins("JOIN games ON games.id = game_cards.game_id").
		Where("game_cards.profile_id = ? AND LOWER(games.ordering_name) LIKE ?",
			profile.UserID, strings.ToLower(letter)+"%").
		Order("games.ordering_name").Find(&cards).Error
	return cards, err
}

// GameCardsForGame returns all cards referencing the given game,
// regardless of owner privacy. Callers that expose the result must
// scope it with PublicGameCardsForGame instead.
func GameCardsForGame(game *models.Game) ([]models.GameCard, error) {
	if game == nil {
		return []models.GameCard{}, nil
	}
	var cards []models.GameCard
	err := database.DB.Preload("Profile").Preload("Profile.User").
		Where("game_id = ?", game.ID).Find(&cards).Error
	return cards, err
}

// PublicGameCardsForGame returns the cards referencing the given game
// whose owning profile is public, ordered by owner username
func PublicGameCardsForGame(game *models.Game) ([]models.GameCard, error) {
	if game == nil {
		return []models.GameCard{}, nil
	}
	var cards []models.GameCard
	err := database.DB.Preload("Profile").Preload("Profile.User").
		Joins("JOIN profiles ON profiles.user_id = game_cards.profile_id").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("game_cards.game_id = ? AND profiles.is_private = ?", game.ID, false).
		Order("users.username").Find(&cards).Error
	return cards, err
}

// CardForProfileAndGame returns the profile's card for the given game,
// or nil when the profile has none
func CardForProfileAndGame(profile *models.Profile, game *models.Game) (*models.GameCard, error) {
	if profile == nil || game == nil {
		return nil, nil
	}
	var card models.GameCard
	err := database.DB.Where("profile_id = ? AND game_id = ?", profile.UserID, game.ID).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// GetGameCard fetches one card with its game and owning profile loaded
func GetGameCard(cardID uint) (*models.GameCard, error) {
	var card models.GameCard
	err := database.DB.Preload("Game").Preload("Game.Genres").Preload("Game.Franchise").
		Preload("Profile").Preload("Profile.User").
		First(&card, "id = ?", cardID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// CreateGameCard attaches a new card with default play state to the
// given profile. The unique (profile, game) constraint is relied on to
// catch racing duplicates: a violation surfaces as ErrAlreadyExists.
func CreateGameCard(profile *models.Profile, gameID uint) (*models.GameCard, error) {
	if profile == nil {
		return nil, ErrPermissionDenied
	}

	var game models.Game
	if err := database.DB.First(&game, "id = ?", gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	card := models.GameCard{
		ProfileID: profile.UserID,
		GameID:    game.ID,
	}
	if err := database.DB.Create(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create game card: %w", err)
	}
	card.Game = &game
	return &card, nil
}

// GameCardUpdate carries the owner-editable fields of a card
type GameCardUpdate struct {
	IsFinished  bool   `json:"is_finished"`
	HoursPlayed int    `json:"hours_played" binding:"min=0"`
	AvatarNames string `json:"avatar_names"`
	ReviewLink  string `json:"review_link"`
	Notes       string `json:"notes" binding:"max=1023"`
}

// UpdateGameCard overwrites the editable fields of a card
func UpdateGameCard(card *models.GameCard, update GameCardUpdate) error {
	if card == nil {
		return ErrNotFound
	}
	return database.DB.Model(card).Updates(map[string]interface{}{
		"is_finished":  update.IsFinished,
		"hours_played": update.HoursPlayed,
		"avatar_names": update.AvatarNames,
		"review_link":  update.ReviewLink,
		"notes":        update.Notes,
	}).Error
}

// DeleteGameCard removes a card permanently
func DeleteGameCard(card *models.GameCard) error {
	if card == nil {
		return ErrNotFound
	}
	return database.DB.Delete(card).Error
}

// GameCardStats aggregates card counts and played hours across all profiles
type GameCardStats struct {
	TotalCards    int64 `json:"total_gamecards"`
	TotalFinished int64 `json:"total_finished"`
	TotalHours    int64 `json:"total_hours"`
}

// CollectGameCardStats computes the aggregates shown on the profile list
func CollectGameCardStats() (GameCardStats, error) {
	var stats GameCardStats
	if err := database.DB.Model(&models.GameCard{}).Count(&stats.TotalCards).Error; err != nil {
		return stats, err
	}
	if err := database.DB.Model(&models.GameCard{}).Where("is_finished = ?", true).Count(&stats.TotalFinished).Error; err != nil {
		return stats, err
	}
	err := database.DB.Model(&models.GameCard{}).
		Select("COALESCE(SUM(hours_played), 0)").Scan(&stats.TotalHours).Error
	return stats, err
}
