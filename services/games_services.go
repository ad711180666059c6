package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode"

	"gamediary/database"
	"gamediary/igdb"
	"gamediary/models"

	"gorm.io/gorm"
)

// AllGames returns the whole catalog ordered for display
func AllGames() ([]models.Game, error) {
	var games []models.Game
	err := database.DB.Preload("Franchise").Preload("Genres").
		Order("ordering_name").Find(&games).Error
	return games, err
}

// GamesStartingWith returns the games whose ordering name starts with
// the given letter, case-insensitive. Anything but a single letter
// yields an empty set rather than the full catalog.
func GamesStartingWith(letter string) ([]models.Game, error) {
	if !validLetter(letter) {
		return []models.Game{}, nil
	}
	var games []models.Game
	err := database.DB.Preload("Franchise").Preload("Genres").
		Where("LOWER(ordering_name) LIKE ?", strings.ToLower(letter)+"%").
		Order("ordering_name").Find(&games).Error
	return games, err
}

// GetGame fetches one game with its reference data preloaded
func GetGame(gameID uint) (*models.Game, error) {
	var game models.Game
	err := database.DB.Preload("Franchise").Preload("Genres").Preload("Perspectives").
		First(&game, "id = ?", gameID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// SaveGame stores a game fetched from the metadata API. A second save
// of the same id fails with ErrAlreadyExists unless rewrite is set, in
// which case ratings and franchise data are refreshed in place.
func SaveGame(data *igdb.GameData, rewrite bool) (*models.Game, error) {
	var existing models.Game
	err := database.DB.First(&existing, "id = ?", data.ID).Error
	if err == nil && !rewrite {
		return nil, ErrAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	game := models.Game{
		ID:       data.ID,
		Name:     data.Name,
		CoverURL: data.CoverURL,
		Year:     data.Year,
		Rating:   data.Rating,
		Summary:  data.Summary,
	}

	if data.FranchiseID != nil {
		franchise := models.Franchise{ID: *data.FranchiseID, Name: data.FranchiseName}
		if err := database.DB.FirstOrCreate(&franchise, "id = ?", franchise.ID).Error; err != nil {
			return nil, fmt.Errorf("failed to resolve franchise: %w", err)
		}
		game.FranchiseID = &franchise.ID
		game.Franchise = &franchise
	}
	game.SetOrderingName()

	if err := database.DB.Save(&game).Error; err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	var genres []models.Genre
	if len(data.Genres) > 0 {
		if err := database.DB.Find(&genres, data.Genres).Error; err != nil {
			return nil, err
		}
	}
	if err := database.DB.Model(&game).Association("Genres").Replace(genres); err != nil {
		return nil, err
	}

	var perspectives []models.Perspective
	if len(data.Perspectives) > 0 {
		if err := database.DB.Find(&perspectives, data.Perspectives).Error; err != nil {
			return nil, err
		}
	}
	if err := database.DB.Model(&game).Association("Perspectives").Replace(perspectives); err != nil {
		return nil, err
	}

	return &game, nil
}

// SyncGenres refreshes the genre reference table from the metadata API
func SyncGenres(client *igdb.Client) (int, error) {
	genres, err := client.Genres()
	if err != nil {
		return 0, err
	}
	for _, genre := range genres {
		record := models.Genre{ID: genre.ID, Name: genre.Name}
		if err := database.DB.Save(&record).Error; err != nil {
			return 0, err
		}
	}
	return len(genres), nil
}

// SyncPerspectives refreshes the perspective reference table from the metadata API
func SyncPerspectives(client *igdb.Client) (int, error) {
	perspectives, err := client.Perspectives()
	if err != nil {
		return 0, err
	}
	for _, perspective := range perspectives {
		record := models.Perspective{ID: perspective.ID, Name: perspective.Name}
		if err := database.DB.Save(&record).Error; err != nil {
			return 0, err
		}
	}
	return len(perspectives), nil
}

// RebuildOrderingNames recomputes every game's ordering name, used as
// a backfill after franchise data changes
func RebuildOrderingNames() (int, error) {
	var games []models.Game
	if err := database.DB.Preload("Franchise").Find(&games).Error; err != nil {
		return 0, err
	}
	count := 0
	for i := range games {
		games[i].SetOrderingName()
		if err := database.DB.Model(&games[i]).Update("ordering_name", games[i].OrderingName).Error; err != nil {
			log.Printf("Failed to update ordering name for game %d: %v", games[i].ID, err)
			continue
		}
		count++
	}
	return count, nil
}

func validLetter(letter string) bool {
	if len(letter) != 1 {
		return false
	}
	return unicode.IsLetter(rune(letter[0]))
}
