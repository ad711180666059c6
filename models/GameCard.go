package models

// GameCard captures one profile's personal play state for one game.
// A profile may own at most one card per game.
type GameCard struct {
    ID          uint     `gorm:"primaryKey" json:"id"`
    ProfileID   uint     `gorm:"not null;column:profile_id;uniqueIndex:idx_gamecards_profile_game" json:"profile_id"`
    GameID      uint     `gorm:"not null;column:game_id;uniqueIndex:idx_gamecards_profile_game" json:"game_id"`
    IsFinished  bool     `gorm:"not null;default:false;column:is_finished" json:"is_finished"`
    HoursPlayed int      `gorm:"not null;default:0;column:hours_played" json:"hours_played"`
    AvatarNames string   `gorm:"type:varchar(255);column:avatar_names" json:"avatar_names"`
    ReviewLink  string   `gorm:"type:varchar(255);column:review_link" json:"review_link"`
    Notes       string   `gorm:"type:varchar(1023)" json:"notes"`
    Profile     *Profile `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
    Game        *Game    `gorm:"foreignKey:GameID" json:"game,omitempty"`
}

// GameName returns the associated game's name when the game is loaded
func (gc *GameCard) GameName() string {
    if gc.Game == nil {
        return ""
    }
    return gc.Game.Name
}
