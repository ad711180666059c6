package gamecards

import (
    "errors"
    "net/http"

    "gamediary/middleware"
    "gamediary/services"
    "gamediary/utils/response"

    "github.com/gin-gonic/gin"
)

// GetGameCardsByGame lists the public cards attached to one game
// @Summary Game cards for a game
// @Description List the cards referencing a game whose owning profile is public, ordered by owner username. Includes the acting user's own card id for the game when one exists
// @Tags GameCards
// @Produce json
// @Param gameID path int true "Game ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /games/{gameID}/gamecards [get]
// @Security Bearer
func GetGameCardsByGame(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    gameID, err := services.ParseID(c.Param("gameID"))
    if err != nil {
        response.Error(c, http.StatusNotFound, ErrGameNotFound)
        return
    }

    game, err := services.GetGame(gameID)
    if err != nil {
        if errors.Is(err, services.ErrNotFound) {
            response.Error(c, http.StatusNotFound, ErrGameNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetCards)
        return
    }

    cards, err := services.PublicGameCardsForGame(game)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetCards)
        return
    }

    // The acting user's own card for this game, when they have one,
    // lets the client link straight to it
    var ownCardID *uint
    ownCard, err := services.CardForProfileAndGame(user.Profile, game)
    if err == nil && ownCard != nil {
        ownCardID = &ownCard.ID
    }

    c.JSON(http.StatusOK, gin.H{
        "game":        game,
        "gamecards":   cards,
        "own_card_id": ownCardID,
    })
}
