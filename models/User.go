package models

// Role is the enumerated role attached to a user account.
// RoleAll is a wildcard used for route gating only and is never stored.
type Role int

const (
    RolePlayer Role = iota
    RoleAdmin
    RoleAll
)

func (r Role) String() string {
    switch r {
    case RolePlayer:
        return "Player"
    case RoleAdmin:
        return "Admin"
    case RoleAll:
        return "All"
    }
    return "Unknown"
}

// User represents a registered account with a typed role
type User struct {
    ID       uint     `gorm:"primaryKey" json:"id"`
    Username string   `gorm:"type:varchar(100);unique;not null" json:"username"`
    Password string   `gorm:"type:varchar(255);not null" json:"-"`
    Role     Role     `gorm:"type:integer;not null;default:0" json:"role"`
    Profile  *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

func (u *User) IsAdmin() bool {
    return u != nil && u.Role == RoleAdmin
}
