package v1

import (
	"gamediary/handlers/auth"
	"gamediary/handlers/gamecards"
	"gamediary/handlers/games"
	"gamediary/handlers/profiles"
	"gamediary/handlers/requests"
	"gamediary/handlers/templates"
	"gamediary/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
    v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
    v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	games.RegisterRoutes(v1)
	gamecards.RegisterRoutes(v1)
	profiles.RegisterRoutes(v1)
	requests.RegisterRoutes(v1)
	templates.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
