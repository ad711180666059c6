package models

// Genre represents a game genre synced from the metadata API
type Genre struct {
    ID    uint    `gorm:"primaryKey" json:"id"`
    Name  string  `gorm:"type:varchar(100);not null" json:"name"`
    Games []*Game `gorm:"many2many:game_genres;" json:"games,omitempty"`
}
