package services

import (
	"testing"

	"gamediary/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	setupTestDB(t)
	user, _ := createTestUser(t, "alice", models.RolePlayer, false)

	profile, err := GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	assert.Equal(t, "alice", profile.Username())

	_, err = GetProfile(404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleProfilePrivacy(t *testing.T) {
	setupTestDB(t)
	user, profile := createTestUser(t, "alice", models.RolePlayer, false)

	private, err := ToggleProfilePrivacy(profile)
	require.NoError(t, err)
	assert.True(t, private)

	reloaded, err := GetProfile(user.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsPrivate)

	private, err = ToggleProfilePrivacy(reloaded)
	require.NoError(t, err)
	assert.False(t, private)

	reloaded, err = GetProfile(user.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsPrivate)
}

func TestCollectProfileStats(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "alice", models.RolePlayer, false)
	createTestUser(t, "bob", models.RolePlayer, true)
	createTestUser(t, "root", models.RoleAdmin, false)

	stats, err := CollectProfileStats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalProfiles)
	assert.Equal(t, int64(1), stats.TotalPrivate)
}
