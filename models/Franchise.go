package models

import "gamediary/utils"

// Franchise groups games under a shared series name
type Franchise struct {
    ID    uint    `gorm:"primaryKey" json:"id"`
    Name  string  `gorm:"type:varchar(100);not null" json:"name"`
    Games []*Game `gorm:"foreignKey:FranchiseID" json:"games,omitempty"`
}

// CleanName returns the franchise name with a leading article stripped,
// used to build ordering names of franchised games
func (f *Franchise) CleanName() string {
    return utils.CleanName(f.Name)
}
