package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"gamediary/database"
	"gamediary/models"

	"gorm.io/gorm"
)

// TemplateProjection is what the loader exposes of a stored template:
// the two configuration keys the editor needs, and nothing else. All
// other configuration keys are write-only through this interface.
type TemplateProjection struct {
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Elements      interface{} `json:"elements"`
	ElementCounts interface{} `json:"elementCounts"`
}

// SaveTemplate stores a form editor document. The whole document is
// persisted verbatim as the template configuration; name and
// description are lifted out of it for listing. With a template id the
// existing record is overwritten, without one a new record is created.
// Returns the resolved template id.
func SaveTemplate(templateID *uint, document map[string]interface{}) (uint, error) {
	name, ok := document["name"].(string)
	if !ok || name == "" {
		return 0, fmt.Errorf("template document requires a name")
	}
	description, _ := document["description"].(string)

	configuration, err := json.Marshal(document)
	if err != nil {
		return 0, fmt.Errorf("failed to encode configuration: %w", err)
	}

	if templateID != nil {
		var template models.FormTemplate
		err := database.DB.First(&template, "id = ?", *templateID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		if err != nil {
			return 0, err
		}
		template.Name = name
		template.Description = description
		template.Configuration = configuration
		if err := database.DB.Save(&template).Error; err != nil {
			return 0, err
		}
		return template.ID, nil
	}

	template := models.FormTemplate{
		Name:          name,
		Description:   description,
		Configuration: configuration,
	}
	if err := database.DB.Create(&template).Error; err != nil {
		return 0, err
	}
	return template.ID, nil
}

// LoadTemplate returns the projection of one stored template
func LoadTemplate(templateID uint) (*TemplateProjection, error) {
	var template models.FormTemplate
	err := database.DB.First(&template, "id = ?", templateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var configuration map[string]interface{}
	if err := json.Unmarshal(template.Configuration, &configuration); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return &TemplateProjection{
		Name:          template.Name,
		Description:   template.Description,
		Elements:      configuration["elements"],
		ElementCounts: configuration["elementCounts"],
	}, nil
}

// ListTemplates returns all templates, most recently updated first
func ListTemplates() ([]models.FormTemplate, error) {
	var templates []models.FormTemplate
	err := database.DB.Order("updated_at DESC").Find(&templates).Error
	return templates, err
}
