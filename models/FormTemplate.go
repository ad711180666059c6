package models

import (
    "time"

    "gorm.io/datatypes"
)

// FormTemplate stores a form editor document. The configuration column
// holds the saved payload verbatim; the API never interprets its shape
// beyond the two keys the loader projects out.
type FormTemplate struct {
    ID            uint           `gorm:"primaryKey" json:"id"`
    Name          string         `gorm:"type:varchar(100);not null" json:"name"`
    Description   string         `gorm:"type:text" json:"description"`
    CreatedAt     time.Time      `json:"created_at"`
    UpdatedAt     time.Time      `json:"updated_at"`
    Configuration datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"configuration"`
}
