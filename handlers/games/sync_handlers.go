package games

import (
    "errors"
    "net/http"

    "gamediary/igdb"
    "gamediary/metrics"
    "gamediary/middleware"
    "gamediary/models"
    "gamediary/services"
    "gamediary/utils/permissions"
    "gamediary/utils/response"

    "github.com/gin-gonic/gin"
)

// requireAdmin resolves the acting user and rejects non-administrators.
// Catalog writes are an administrative sync concern.
func requireAdmin(c *gin.Context) (models.User, bool) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return models.User{}, false // Error already handled by middleware
    }
    if !permissions.IsMemberOf(&user, []models.Role{models.RoleAdmin}) {
        response.Error(c, http.StatusForbidden, ErrUnauthorized)
        return models.User{}, false
    }
    return user, true
}

// SearchGames searches the metadata API for games by title
// @Summary Search games in the metadata API
// @Description Search the external metadata API by title (admin only)
// @Tags Games
// @Accept json
// @Produce json
// @Param request body GameSearchRequest true "Search terms"
// @Success 200 {array} igdb.SearchResult
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /games/search [post]
// @Security Bearer
func SearchGames(c *gin.Context) {
    if _, ok := requireAdmin(c); !ok {
        return
    }

    var request GameSearchRequest
    if err := c.ShouldBindJSON(&request); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    results, err := igdb.NewClient().SearchGames(request.Name)
    if err != nil {
        response.Error(c, http.StatusBadGateway, ErrMetadataUnavailable)
        return
    }
    c.JSON(http.StatusOK, results)
}

// SaveGame persists one game from the metadata API into the catalog
// @Summary Save a game from the metadata API
// @Description Fetch a game by metadata id and store it with genres, perspectives and franchise (admin only)
// @Tags Games
// @Accept json
// @Produce json
// @Param request body GameSaveRequest true "Game to save"
// @Success 201 {object} GameResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /games/save [post]
// @Security Bearer
func SaveGame(c *gin.Context) {
    if _, ok := requireAdmin(c); !ok {
        return
    }

    var request GameSaveRequest
    if err := c.ShouldBindJSON(&request); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    data, err := igdb.NewClient().GameData(request.GameID)
    if err != nil {
        response.Error(c, http.StatusBadGateway, ErrMetadataUnavailable)
        return
    }

    game, err := services.SaveGame(data, request.Rewrite)
    if err != nil {
        if errors.Is(err, services.ErrAlreadyExists) {
            response.Error(c, http.StatusConflict, ErrGameAlreadyInDB)
            return
        }
        response.Error(c, http.StatusInternalServerError, "Failed to save game")
        return
    }

    metrics.GamesSynced.Inc()
    c.JSON(http.StatusCreated, toGameResponse(game))
}

// SyncReferenceData refreshes genres and perspectives from the metadata API
// @Summary Sync genres and perspectives
// @Description Refresh the genre and perspective reference tables from the metadata API (admin only)
// @Tags Games
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 403 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /games/sync-reference [post]
// @Security Bearer
func SyncReferenceData(c *gin.Context) {
    if _, ok := requireAdmin(c); !ok {
        return
    }

    client := igdb.NewClient()
    genres, err := services.SyncGenres(client)
    if err != nil {
        response.Error(c, http.StatusBadGateway, ErrMetadataUnavailable)
        return
    }
    perspectives, err := services.SyncPerspectives(client)
    if err != nil {
        response.Error(c, http.StatusBadGateway, ErrMetadataUnavailable)
        return
    }
    c.JSON(http.StatusOK, gin.H{"genres": genres, "perspectives": perspectives})
}

// RebuildOrderingNames recomputes ordering names for the whole catalog
// @Summary Rebuild ordering names
// @Description Recompute every game's ordering name after franchise changes (admin only)
// @Tags Games
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games/rebuild-ordering [post]
// @Security Bearer
func RebuildOrderingNames(c *gin.Context) {
    if _, ok := requireAdmin(c); !ok {
        return
    }

    count, err := services.RebuildOrderingNames()
    if err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to rebuild ordering names")
        return
    }
    c.JSON(http.StatusOK, gin.H{"updated": count})
}
