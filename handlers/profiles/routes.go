package profiles

import (
	"gamediary/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to profiles
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
    profiles := r.Group("/profiles")
    profiles.Use(middleware.AuthMiddleware())
    {
        profiles.GET("", GetProfiles)
        profiles.GET("/:profileID", GetProfile)
        profiles.POST("/:profileID/privacy", TogglePrivacy)
    }
}
