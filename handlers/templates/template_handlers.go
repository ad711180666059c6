package templates

import (
    "errors"
    "net/http"

    "gamediary/services"

    "github.com/gin-gonic/gin"
)

// GetTemplates lists all form templates, most recently updated first
// @Summary List form templates
// @Description List all form templates ordered by last update
// @Tags Templates
// @Produce json
// @Success 200 {array} models.FormTemplate
// @Failure 500 {object} ErrorResponse
// @Router /templates [get]
func GetTemplates(c *gin.Context) {
    list, err := services.ListTemplates()
    if err != nil {
        c.JSON(http.StatusInternalServerError, ErrorResponse{Status: "error", Message: err.Error()})
        return
    }
    c.JSON(http.StatusOK, list)
}

// SaveTemplate stores a form editor document
// @Summary Save a form template
// @Description Store the posted document as the template configuration. With a template id the existing record is overwritten, without one a new record is created
// @Tags Templates
// @Accept json
// @Produce json
// @Param templateID path int false "Template ID"
// @Param document body map[string]interface{} true "Editor document, requires at least a name"
// @Success 200 {object} SaveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /templates/{templateID} [post]
func SaveTemplate(c *gin.Context) {
    var document map[string]interface{}
    if err := c.ShouldBindJSON(&document); err != nil {
        c.JSON(http.StatusBadRequest, ErrorResponse{Status: "error", Message: ErrInvalidDocument})
        return
    }

    var templateID *uint
    if raw := c.Param("templateID"); raw != "" {
        id, err := services.ParseID(raw)
        if err != nil {
            c.JSON(http.StatusNotFound, ErrorResponse{Status: "error", Message: ErrTemplateNotFound})
            return
        }
        templateID = &id
    }

    resolved, err := services.SaveTemplate(templateID, document)
    if err != nil {
        if errors.Is(err, services.ErrNotFound) {
            c.JSON(http.StatusNotFound, ErrorResponse{Status: "error", Message: ErrTemplateNotFound})
            return
        }
        c.JSON(http.StatusBadRequest, ErrorResponse{Status: "error", Message: err.Error()})
        return
    }

    c.JSON(http.StatusOK, SaveResponse{Status: "success", TemplateID: resolved})
}

// LoadTemplate returns the editor projection of one template
// @Summary Load a form template
// @Description Return name, description and the elements and elementCounts configuration keys of one template. Other configuration keys are stored but never surfaced here
// @Tags Templates
// @Produce json
// @Param templateID path int true "Template ID"
// @Success 200 {object} services.TemplateProjection
// @Failure 404 {object} ErrorResponse
// @Router /templates/{templateID}/load [get]
func LoadTemplate(c *gin.Context) {
    templateID, err := services.ParseID(c.Param("templateID"))
    if err != nil {
        c.JSON(http.StatusNotFound, ErrorResponse{Status: "error", Message: ErrTemplateNotFound})
        return
    }

    projection, err := services.LoadTemplate(templateID)
    if err != nil {
        if errors.Is(err, services.ErrNotFound) {
            c.JSON(http.StatusNotFound, ErrorResponse{Status: "error", Message: ErrTemplateNotFound})
            return
        }
        c.JSON(http.StatusBadRequest, ErrorResponse{Status: "error", Message: err.Error()})
        return
    }
    c.JSON(http.StatusOK, projection)
}
