package models

import "time"

// Profile is the one-to-one game diary record attached to a user.
// Its primary key is the owning user's id, so there is exactly one
// profile per account.
type Profile struct {
    UserID       uint             `gorm:"primaryKey;column:user_id" json:"id"`
    User         *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
    RegisterDate time.Time        `gorm:"type:date;not null;column:register_date" json:"register_date"`
    IsPrivate    bool             `gorm:"not null;default:false;column:is_private" json:"is_private"`
    GameCards    []*GameCard      `gorm:"foreignKey:ProfileID" json:"gamecards,omitempty"`
    Requests     []*PlayerRequest `gorm:"foreignKey:ProfileID" json:"requests,omitempty"`
}

// Username returns the owning account's username when the user is loaded
func (p *Profile) Username() string {
    if p.User == nil {
        return ""
    }
    return p.User.Username
}
