package models

import (
    "strconv"
    "strings"

    "gamediary/utils"
)

// Game represents a catalog entry synced from the metadata API.
// The primary key is the metadata API's own game id.
// Rating is nullable: absent means the API had no aggregate rating,
// which is distinct from a rating of zero.
type Game struct {
    ID           uint           `gorm:"primaryKey" json:"id"`
    Name         string         `gorm:"type:varchar(100);not null" json:"name"`
    OrderingName string         `gorm:"type:varchar(100);not null;column:ordering_name" json:"ordering_name"`
    CoverURL     string         `gorm:"type:varchar(255);column:cover_url" json:"cover_url"`
    Year         int            `gorm:"not null" json:"year"`
    Rating       *int           `json:"rating"`
    Summary      string         `gorm:"type:text" json:"summary"`
    FranchiseID  *uint          `gorm:"column:franchise_id" json:"franchise_id"`
    Franchise    *Franchise     `gorm:"foreignKey:FranchiseID" json:"franchise,omitempty"`
    Genres       []*Genre       `gorm:"many2many:game_genres;" json:"genres,omitempty"`
    Perspectives []*Perspective `gorm:"many2many:game_perspectives;" json:"perspectives,omitempty"`
}

// SetOrderingName derives the name the catalog sorts and filters on:
// the franchise's clean name when the game belongs to one, the game's
// own clean name otherwise. Requires Franchise to be loaded when
// FranchiseID is set.
func (g *Game) SetOrderingName() {
    if g.Franchise != nil {
        g.OrderingName = g.Franchise.CleanName()
        return
    }
    g.OrderingName = utils.CleanName(g.Name)
}

// DisplayRating renders the rating for lists and details, with "---"
// standing in for games the API has no rating for
func (g *Game) DisplayRating() string {
    if g.Rating == nil {
        return "---"
    }
    return strconv.Itoa(*g.Rating)
}

// GenresNames returns a comma-separated list of the game's genre names
func (g *Game) GenresNames() string {
    names := make([]string, 0, len(g.Genres))
    for _, genre := range g.Genres {
        names = append(names, genre.Name)
    }
    return strings.Join(names, ", ")
}

// PerspectivesNames returns a comma-separated list of the game's perspective names
func (g *Game) PerspectivesNames() string {
    names := make([]string, 0, len(g.Perspectives))
    for _, perspective := range g.Perspectives {
        names = append(names, perspective.Name)
    }
    return strings.Join(names, ", ")
}
