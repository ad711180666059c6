package templates

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to form templates
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
    templates := r.Group("/templates")
    {
        templates.GET("", GetTemplates)
        templates.POST("", SaveTemplate)
        templates.POST("/:templateID", SaveTemplate)
        templates.GET("/:templateID/load", LoadTemplate)
    }
}
