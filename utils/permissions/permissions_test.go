package permissions

import (
	"testing"

	"gamediary/models"

	"github.com/stretchr/testify/assert"
)

var (
	admin  = &models.User{ID: 1, Username: "root", Role: models.RoleAdmin}
	player = &models.User{ID: 2, Username: "alice", Role: models.RolePlayer}
	other  = &models.User{ID: 3, Username: "bob", Role: models.RolePlayer}
)

func TestIsMemberOf(t *testing.T) {
	assert.True(t, IsMemberOf(player, []models.Role{models.RolePlayer}))
	assert.True(t, IsMemberOf(admin, []models.Role{models.RoleAdmin}))
	assert.False(t, IsMemberOf(player, []models.Role{models.RoleAdmin}))
	assert.False(t, IsMemberOf(admin, []models.Role{models.RolePlayer}))

	// The wildcard admits everyone, even an unauthenticated caller.
	assert.True(t, IsMemberOf(player, []models.Role{models.RoleAll}))
	assert.True(t, IsMemberOf(nil, []models.Role{models.RoleAll}))

	assert.False(t, IsMemberOf(nil, []models.Role{models.RolePlayer, models.RoleAdmin}))
	assert.False(t, IsMemberOf(player, nil))
}

func TestOwnsProfile(t *testing.T) {
	profile := &models.Profile{UserID: player.ID}

	assert.True(t, OwnsProfile(player, profile))
	assert.True(t, OwnsProfile(admin, profile))
	assert.False(t, OwnsProfile(other, profile))
	assert.False(t, OwnsProfile(nil, profile))
	assert.False(t, OwnsProfile(player, nil))
}

func TestCanViewProfile(t *testing.T) {
	public := &models.Profile{UserID: player.ID, IsPrivate: false}
	private := &models.Profile{UserID: player.ID, IsPrivate: true}

	assert.True(t, CanViewProfile(other, public))
	assert.False(t, CanViewProfile(other, private))
	assert.True(t, CanViewProfile(player, private))
	assert.True(t, CanViewProfile(admin, private))
	assert.False(t, CanViewProfile(nil, public))
}

func TestOwnsGameCard(t *testing.T) {
	card := &models.GameCard{ID: 7, ProfileID: player.ID}

	assert.True(t, OwnsGameCard(player, card))
	assert.True(t, OwnsGameCard(admin, card))
	assert.False(t, OwnsGameCard(other, card))
	assert.False(t, OwnsGameCard(nil, card))
}

func TestCanViewGameCard(t *testing.T) {
	publicCard := &models.GameCard{
		ID:        7,
		ProfileID: player.ID,
		Profile:   &models.Profile{UserID: player.ID, IsPrivate: false},
	}
	privateCard := &models.GameCard{
		ID:        8,
		ProfileID: player.ID,
		Profile:   &models.Profile{UserID: player.ID, IsPrivate: true},
	}
	// No profile loaded: only the owner and admins get through.
	bareCard := &models.GameCard{ID: 9, ProfileID: player.ID}

	assert.True(t, CanViewGameCard(other, publicCard))
	assert.False(t, CanViewGameCard(other, privateCard))
	assert.True(t, CanViewGameCard(player, privateCard))
	assert.True(t, CanViewGameCard(admin, privateCard))

	assert.True(t, CanViewGameCard(player, bareCard))
	assert.False(t, CanViewGameCard(other, bareCard))
}
