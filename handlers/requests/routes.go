package requests

import (
	"gamediary/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to support requests
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
    requests := r.Group("/requests")
    requests.Use(middleware.AuthMiddleware())
    {
        requests.POST("", CreateRequest)
        requests.GET("", GetRequests)
        requests.POST("/:requestID/switch", SwitchRequestStatus)
        requests.GET("/stream", StreamRequests)
    }
}
