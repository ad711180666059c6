package services

import (
	"testing"

	"gamediary/database"
	"gamediary/igdb"
	"gamediary/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveGame_OrderingNameFromOwnName(t *testing.T) {
	setupTestDB(t)

	game, err := SaveGame(&igdb.GameData{ID: 1, Name: "The Witcher 3", Year: 2015}, false)
	require.NoError(t, err)
	assert.Equal(t, "Witcher 3", game.OrderingName)
}

func TestSaveGame_OrderingNameFromFranchise(t *testing.T) {
	setupTestDB(t)

	franchiseID := uint(7)
	game, err := SaveGame(&igdb.GameData{
		ID:            1,
		Name:          "Dark Souls III",
		Year:          2016,
		FranchiseID:   &franchiseID,
		FranchiseName: "The Dark Souls",
	}, false)
	require.NoError(t, err)
	assert.Equal(t, "Dark Souls", game.OrderingName)

	var franchise models.Franchise
	require.NoError(t, database.DB.First(&franchise, "id = ?", franchiseID).Error)
	assert.Equal(t, "The Dark Souls", franchise.Name)
}

func TestSaveGame_Duplicate(t *testing.T) {
	setupTestDB(t)

	_, err := SaveGame(&igdb.GameData{ID: 1, Name: "Doom", Year: 1993}, false)
	require.NoError(t, err)

	_, err = SaveGame(&igdb.GameData{ID: 1, Name: "Doom", Year: 1993}, false)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	rating := 85
	game, err := SaveGame(&igdb.GameData{ID: 1, Name: "Doom", Year: 1993, Rating: &rating}, true)
	require.NoError(t, err)
	require.NotNil(t, game.Rating)
	assert.Equal(t, 85, *game.Rating)
}

func TestSaveGame_ReferenceAssociations(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, database.DB.Create(&models.Genre{ID: 5, Name: "Shooter"}).Error)
	require.NoError(t, database.DB.Create(&models.Genre{ID: 12, Name: "RPG"}).Error)
	require.NoError(t, database.DB.Create(&models.Perspective{ID: 1, Name: "First person"}).Error)

	_, err := SaveGame(&igdb.GameData{
		ID:           1,
		Name:         "Doom",
		Year:         1993,
		Genres:       []uint{5},
		Perspectives: []uint{1},
	}, false)
	require.NoError(t, err)

	game, err := GetGame(1)
	require.NoError(t, err)
	assert.Equal(t, "Shooter", game.GenresNames())
	assert.Equal(t, "First person", game.PerspectivesNames())

	// Rewrite replaces the association set instead of appending to it.
	_, err = SaveGame(&igdb.GameData{ID: 1, Name: "Doom", Year: 1993, Genres: []uint{12}}, true)
	require.NoError(t, err)

	game, err = GetGame(1)
	require.NoError(t, err)
	assert.Equal(t, "RPG", game.GenresNames())
	assert.Empty(t, game.PerspectivesNames())
}

func TestGamesStartingWith(t *testing.T) {
	setupTestDB(t)
	createTestGame(t, 1, "The Witcher 3", "Witcher 3")
	createTestGame(t, 2, "Warcraft III", "Warcraft III")
	createTestGame(t, 3, "Doom", "Doom")

	games, err := GamesStartingWith("W")
	require.NoError(t, err)
	assert.Len(t, games, 2)

	games, err = GamesStartingWith("w")
	require.NoError(t, err)
	assert.Len(t, games, 2)

	games, err = GamesStartingWith("%")
	require.NoError(t, err)
	assert.Empty(t, games)

	games, err = GamesStartingWith("wi")
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestGetGame_NotFound(t *testing.T) {
	setupTestDB(t)

	_, err := GetGame(404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRebuildOrderingNames(t *testing.T) {
	setupTestDB(t)
	createTestGame(t, 1, "The Witcher 3", "stale")
	createTestGame(t, 2, "Doom", "Doom")

	updated, err := RebuildOrderingNames()
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	game, err := GetGame(1)
	require.NoError(t, err)
	assert.Equal(t, "Witcher 3", game.OrderingName)
}
