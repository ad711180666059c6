package gamecards

import (
	"gamediary/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to game cards
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
    gamecards := r.Group("/gamecards")
    gamecards.Use(middleware.AuthMiddleware())
    {
        gamecards.POST("", CreateGameCard)
        gamecards.GET("/:cardID", GetGameCard)
        gamecards.PUT("/:cardID", UpdateGameCard)
        gamecards.DELETE("/:cardID", DeleteGameCard)
    }

    // Public cards of one game live under the game resource
    r.GET("/games/:gameID/gamecards", middleware.AuthMiddleware(), GetGameCardsByGame)
}
