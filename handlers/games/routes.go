package games

import (
	"gamediary/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the game catalog
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
    // The metadata API endpoints are expensive, keep a tighter budget on them
    syncRateLimiter := middleware.NewRateLimiter(60, 10)

    games := r.Group("/games")
    games.Use(middleware.AuthMiddleware())
    {
        games.GET("", GetGames)
        games.GET("/:gameID", GetGame)
        games.POST("/search", middleware.RateLimiterMiddleware(syncRateLimiter), SearchGames)
        games.POST("/save", middleware.RateLimiterMiddleware(syncRateLimiter), SaveGame)
        games.POST("/sync-reference", middleware.RateLimiterMiddleware(syncRateLimiter), SyncReferenceData)
        games.POST("/rebuild-ordering", RebuildOrderingNames)
    }
}
