package models

// Perspective represents a player perspective (first person, isometric, ...)
// synced from the metadata API
type Perspective struct {
    ID    uint    `gorm:"primaryKey" json:"id"`
    Name  string  `gorm:"type:varchar(100);not null" json:"name"`
    Games []*Game `gorm:"many2many:game_perspectives;" json:"games,omitempty"`
}
