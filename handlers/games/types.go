package games

// Error messages constants
const (
	ErrGameNotFound        = "Game was not found in our game database"
	ErrUnauthorized        = "Unauthorized access"
	ErrFailedToGetGames    = "Failed to get games"
	ErrGameAlreadyInDB     = "Game is already in the database"
	ErrMetadataUnavailable = "Game metadata API is unavailable"
)

// GameSearchRequest is an admin's title search against the metadata API
type GameSearchRequest struct {
	Name string `json:"name" binding:"required"`
}

// GameSaveRequest asks to persist a game by its metadata API id
type GameSaveRequest struct {
	GameID  uint `json:"game_id" binding:"required"`
	Rewrite bool `json:"rewrite"`
}

// GameResponse decorates a game with its display fields
type GameResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	OrderingName  string `json:"ordering_name"`
	CoverURL      string `json:"cover_url"`
	Year          int    `json:"year"`
	Rating        string `json:"rating"`
	Summary       string `json:"summary"`
	FranchiseName string `json:"franchise_name,omitempty"`
	Genres        string `json:"genres"`
	Perspectives  string `json:"perspectives"`
}
