package services

import (
	"testing"

	"gamediary/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGameCard(t *testing.T) {
	setupTestDB(t)
	_, profile := createTestUser(t, "alice", models.RolePlayer, false)
	createTestGame(t, 10, "The Witcher 3", "Witcher 3")

	card, err := CreateGameCard(profile, 10)
	require.NoError(t, err)
	assert.Equal(t, profile.UserID, card.ProfileID)
	assert.Equal(t, uint(10), card.GameID)
	assert.False(t, card.IsFinished)
	assert.Equal(t, "The Witcher 3", card.GameName())
}

func TestCreateGameCard_DuplicateGame(t *testing.T) {
	setupTestDB(t)
	_, profile := createTestUser(t, "alice", models.RolePlayer, false)
	createTestGame(t, 10, "The Witcher 3", "Witcher 3")

	_, err := CreateGameCard(profile, 10)
	require.NoError(t, err)

	_, err = CreateGameCard(profile, 10)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateGameCard_UnknownGame(t *testing.T) {
	setupTestDB(t)
	_, profile := createTestUser(t, "alice", models.RolePlayer, false)

	_, err := CreateGameCard(profile, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGameCardsForProfile_NilProfile(t *testing.T) {
	setupTestDB(t)

	cards, err := GameCardsForProfile(nil)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestGameCardsForProfileStartingWith(t *testing.T) {
	setupTestDB(t)
	_, profile := createTestUser(t, "alice", models.RolePlayer, false)
	createTestGame(t, 1, "The Witcher 3", "Witcher 3")
	createTestGame(t, 2, "Warcraft III", "Warcraft III")
	createTestGame(t, 3, "Doom", "Doom")

	for _, gameID := range []uint{1, 2, 3} {
		_, err := CreateGameCard(profile, gameID)
		require.NoError(t, err)
	}

	cards, err := GameCardsForProfileStartingWith(profile, "w")
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	cards, err = GameCardsForProfileStartingWith(profile, "7")
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestPublicGameCardsForGame(t *testing.T) {
	setupTestDB(t)
	_, open := createTestUser(t, "bob", models.RolePlayer, false)
	_, hidden := createTestUser(t, "carol", models.RolePlayer, true)
	game := createTestGame(t, 10, "Doom", "Doom")

	_, err := CreateGameCard(open, 10)
	require.NoError(t, err)
	_, err = CreateGameCard(hidden, 10)
	require.NoError(t, err)

	cards, err := PublicGameCardsForGame(game)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, open.UserID, cards[0].ProfileID)

	all, err := GameCardsForGame(game)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCardForProfileAndGame_NoCard(t *testing.T) {
	setupTestDB(t)
	_, profile := createTestUser(t, "alice", models.RolePlayer, false)
	game := createTestGame(t, 10, "Doom", "Doom")

	card, err := CardForProfileAndGame(profile, game)
	require.NoError(t, err)
	assert.Nil(t, card)
}

func TestUpdateGameCard(t *testing.T) {
	setupTestDB(t)
	_, profile := createTestUser(t, "alice", models.RolePlayer, false)
	createTestGame(t, 10, "Doom", "Doom")

	card, err := CreateGameCard(profile, 10)
	require.NoError(t, err)

	err = UpdateGameCard(card, GameCardUpdate{
		IsFinished:  true,
		HoursPlayed: 42,
		AvatarNames: "Doomguy",
		Notes:       "rip and tear",
	})
	require.NoError(t, err)

	reloaded, err := GetGameCard(card.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsFinished)
	assert.Equal(t, 42, reloaded.HoursPlayed)
	assert.Equal(t, "Doomguy", reloaded.AvatarNames)
	assert.Equal(t, "rip and tear", reloaded.Notes)
}

func TestDeleteGameCard(t *testing.T) {
	setupTestDB(t)
	_, profile := createTestUser(t, "alice", models.RolePlayer, false)
	createTestGame(t, 10, "Doom", "Doom")

	card, err := CreateGameCard(profile, 10)
	require.NoError(t, err)

	require.NoError(t, DeleteGameCard(card))

	_, err = GetGameCard(card.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The slot is free again after deletion.
	_, err = CreateGameCard(profile, 10)
	assert.NoError(t, err)
}

func TestCollectGameCardStats(t *testing.T) {
	setupTestDB(t)
	_, alice := createTestUser(t, "alice", models.RolePlayer, false)
	_, bob := createTestUser(t, "bob", models.RolePlayer, false)
	createTestGame(t, 10, "Doom", "Doom")
	createTestGame(t, 11, "Quake", "Quake")

	first, err := CreateGameCard(alice, 10)
	require.NoError(t, err)
	require.NoError(t, UpdateGameCard(first, GameCardUpdate{IsFinished: true, HoursPlayed: 30}))

	second, err := CreateGameCard(bob, 11)
	require.NoError(t, err)
	require.NoError(t, UpdateGameCard(second, GameCardUpdate{HoursPlayed: 12}))

	stats, err := CollectGameCardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalCards)
	assert.Equal(t, int64(1), stats.TotalFinished)
	assert.Equal(t, int64(42), stats.TotalHours)
}
