package models

import "time"

// PlayerRequest is a free-text support request filed by a profile.
// Requests are toggled between pending (active) and solved, never
// hard-deleted.
type PlayerRequest struct {
    ID        uint      `gorm:"primaryKey" json:"id"`
    ProfileID uint      `gorm:"not null;column:profile_id" json:"profile_id"`
    Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
    Text      string    `gorm:"type:text;not null" json:"text"`
    Active    bool      `gorm:"not null;default:true" json:"active"`
    Profile   *Profile  `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
}
