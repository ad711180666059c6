package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetOrderingName(t *testing.T) {
	game := Game{Name: "The Witcher 3"}
	game.SetOrderingName()
	assert.Equal(t, "Witcher 3", game.OrderingName)

	franchised := Game{
		Name:      "Dark Souls III",
		Franchise: &Franchise{ID: 7, Name: "The Dark Souls"},
	}
	franchised.SetOrderingName()
	assert.Equal(t, "Dark Souls", franchised.OrderingName)
}

func TestDisplayRating(t *testing.T) {
	unrated := Game{Name: "Doom"}
	assert.Equal(t, "---", unrated.DisplayRating())

	rating := 0
	zero := Game{Name: "Doom", Rating: &rating}
	assert.Equal(t, "0", zero.DisplayRating())

	high := 92
	rated := Game{Name: "Doom", Rating: &high}
	assert.Equal(t, "92", rated.DisplayRating())
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "Player", RolePlayer.String())
	assert.Equal(t, "Admin", RoleAdmin.String())
	assert.Equal(t, "All", RoleAll.String())
	assert.Equal(t, "Unknown", Role(42).String())
}
