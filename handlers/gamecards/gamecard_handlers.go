package gamecards

import (
    "errors"
    "fmt"
    "net/http"

    "gamediary/metrics"
    "gamediary/middleware"
    "gamediary/services"
    "gamediary/utils/permissions"
    "gamediary/utils/response"

    "github.com/gin-gonic/gin"
)

// CreateGameCard attaches a game to the acting user's own profile
// @Summary Create a game card
// @Description Add a game to the acting user's diary with default play state
// @Tags GameCards
// @Accept json
// @Produce json
// @Param request body GameCardCreateRequest true "Game to add"
// @Success 201 {object} models.GameCard
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /gamecards [post]
// @Security Bearer
func CreateGameCard(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    var request GameCardCreateRequest
    if err := c.ShouldBindJSON(&request); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    card, err := services.CreateGameCard(user.Profile, request.GameID)
    if err != nil {
        switch {
        case errors.Is(err, services.ErrNotFound):
            response.Error(c, http.StatusNotFound, ErrGameNotFound)
        case errors.Is(err, services.ErrAlreadyExists):
            response.Error(c, http.StatusConflict, ErrAlreadyInPortfolio)
        case errors.Is(err, services.ErrPermissionDenied):
            response.Error(c, http.StatusForbidden, ErrNoPermissionEdit)
        default:
            response.Error(c, http.StatusInternalServerError, "Failed to create game card")
        }
        return
    }

    metrics.GameCardsCreated.Inc()
    c.JSON(http.StatusCreated, gin.H{
        "message":  fmt.Sprintf("%s was added to your game profile.", card.GameName()),
        "gamecard": card,
    })
}

// GetGameCard returns one card's details
// @Summary Game card detail
// @Description Get one game card. Cards on private profiles are visible to their owner and administrators only
// @Tags GameCards
// @Produce json
// @Param cardID path int true "Game Card ID"
// @Success 200 {object} models.GameCard
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /gamecards/{cardID} [get]
// @Security Bearer
func GetGameCard(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    cardID, err := services.ParseID(c.Param("cardID"))
    if err != nil {
        response.Error(c, http.StatusNotFound, ErrGameCardNotFound)
        return
    }

    card, err := services.GetGameCard(cardID)
    if err != nil {
        if errors.Is(err, services.ErrNotFound) {
            response.Error(c, http.StatusNotFound, ErrGameCardNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetCards)
        return
    }

    if !permissions.CanViewGameCard(&user, card) {
        response.Error(c, http.StatusForbidden, ErrCardIsPrivate)
        return
    }

    c.JSON(http.StatusOK, card)
}

// UpdateGameCard overwrites a card's editable play state
// @Summary Update a game card
// @Description Update is_finished, hours_played, avatar_names, review_link and notes. Owner or administrator only
// @Tags GameCards
// @Accept json
// @Produce json
// @Param cardID path int true "Game Card ID"
// @Param request body services.GameCardUpdate true "New play state"
// @Success 200 {object} models.GameCard
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /gamecards/{cardID} [put]
// @Security Bearer
func UpdateGameCard(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    cardID, err := services.ParseID(c.Param("cardID"))
    if err != nil {
        response.Error(c, http.StatusNotFound, ErrGameCardNotFound)
        return
    }

    card, err := services.GetGameCard(cardID)
    if err != nil {
        if errors.Is(err, services.ErrNotFound) {
            response.Error(c, http.StatusNotFound, ErrGameCardNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetCards)
        return
    }

    if !permissions.OwnsGameCard(&user, card) {
        response.Error(c, http.StatusForbidden, ErrNoPermissionEdit)
        return
    }

    var update services.GameCardUpdate
    if err := c.ShouldBindJSON(&update); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    if err := services.UpdateGameCard(card, update); err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to update game card")
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "message":  "Game Card Successfully Updated.",
        "gamecard": card,
    })
}

// DeleteGameCard removes a card permanently
// @Summary Delete a game card
// @Description Remove a game card. Owner or administrator only. The redirect field always points at the acting user's own profile, even when an administrator deletes another player's card
// @Tags GameCards
// @Produce json
// @Param cardID path int true "Game Card ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /gamecards/{cardID} [delete]
// @Security Bearer
func DeleteGameCard(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    cardID, err := services.ParseID(c.Param("cardID"))
    if err != nil {
        response.Error(c, http.StatusNotFound, ErrGameCardNotFound)
        return
    }

    card, err := services.GetGameCard(cardID)
    if err != nil {
        if errors.Is(err, services.ErrNotFound) {
            response.Error(c, http.StatusNotFound, ErrGameCardNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetCards)
        return
    }

    if !permissions.OwnsGameCard(&user, card) {
        response.Error(c, http.StatusForbidden, ErrNoPermissionEdit)
        return
    }

    gameName := card.GameName()
    if err := services.DeleteGameCard(card); err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to delete game card")
        return
    }

    // The caller lands on their own profile regardless of whose card
    // this was
    c.JSON(http.StatusOK, gin.H{
        "message":  fmt.Sprintf("%s was removed from your profile.", gameName),
        "redirect": fmt.Sprintf("/profiles/%d?display=all", user.ID),
    })
}
