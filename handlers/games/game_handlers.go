package games

import (
    "errors"
    "net/http"

    "gamediary/models"
    "gamediary/services"
    "gamediary/utils/response"

    "github.com/gin-gonic/gin"
)

func toGameResponse(game *models.Game) GameResponse {
    resp := GameResponse{
        ID:           game.ID,
        Name:         game.Name,
        OrderingName: game.OrderingName,
        CoverURL:     game.CoverURL,
        Year:         game.Year,
        Rating:       game.DisplayRating(),
        Summary:      game.Summary,
        Genres:       game.GenresNames(),
        Perspectives: game.PerspectivesNames(),
    }
    if game.Franchise != nil {
        resp.FranchiseName = game.Franchise.Name
    }
    return resp
}

// GetGames lists the catalog, optionally narrowed to one starting letter
// @Summary List games
// @Description List catalog games ordered by ordering name. display=all returns everything, display=<letter> filters by starting letter, anything else returns an empty list
// @Tags Games
// @Produce json
// @Param display query string false "all or a single letter"
// @Success 200 {array} GameResponse
// @Failure 500 {object} map[string]string
// @Router /games [get]
func GetGames(c *gin.Context) {
    display := c.DefaultQuery("display", "all")

    var games []models.Game
    var err error
    if display == "all" {
        games, err = services.AllGames()
    } else {
        games, err = services.GamesStartingWith(display)
    }
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetGames)
        return
    }

    results := make([]GameResponse, 0, len(games))
    for i := range games {
        results = append(results, toGameResponse(&games[i]))
    }
    c.JSON(http.StatusOK, results)
}

// GetGame returns one game's details
// @Summary Game detail
// @Description Get one catalog game with genres, perspectives and franchise
// @Tags Games
// @Produce json
// @Param gameID path int true "Game ID"
// @Success 200 {object} GameResponse
// @Failure 404 {object} map[string]string
// @Router /games/{gameID} [get]
func GetGame(c *gin.Context) {
    gameID, err := services.ParseID(c.Param("gameID"))
    if err != nil {
        // Malformed ids read the same as missing ones for the caller
        response.Error(c, http.StatusNotFound, ErrGameNotFound)
        return
    }

    game, err := services.GetGame(gameID)
    if err != nil {
        if errors.Is(err, services.ErrNotFound) {
            response.Error(c, http.StatusNotFound, ErrGameNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetGames)
        return
    }
    c.JSON(http.StatusOK, toGameResponse(game))
}
