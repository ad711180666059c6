package gamecards

// Error messages constants
const (
	ErrGameCardNotFound   = "Game Card was not found in our database"
	ErrGameNotFound       = "Game was not found in our game database"
	ErrCardIsPrivate      = "This game card belongs to a private profile"
	ErrNoPermissionEdit   = "You don't have permission to edit this game card"
	ErrAlreadyInPortfolio = "This game is already in your portfolio"
	ErrFailedToGetCards   = "Failed to get game cards"
)

// GameCardCreateRequest attaches a game to the acting user's profile
type GameCardCreateRequest struct {
	GameID uint `json:"game_id" binding:"required"`
}
