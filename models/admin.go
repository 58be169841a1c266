package models

import "time"

type Admin struct {
	AdminID         uint   `gorm:"primaryKey;column:admin_id" json:"admin_id"`
	EstablishmentID uint   `gorm:"column:establishment_id;index" json:"establishment_id"`
	AdminFirstName  string `gorm:"column:admin_first_name;size:100" json:"adminFirstName"`
	AdminLastName   string `gorm:"column:admin_last_name;size:100" json:"adminLastName"`
	AdminEmail      string `gorm:"column:admin_email;uniqueIndex;size:255" json:"adminEmail"`
	Password        string `gorm:"column:password;size:255" json:"-"`
	AdminProfile    string `gorm:"column:admin_profile;size:255" json:"adminProfile,omitempty"`
	Verified        bool   `gorm:"column:verified;default:false" json:"verified"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Establishment Establishment `gorm:"foreignKey:EstablishmentID;references:EstablishmentID" json:"establishment,omitempty"`
}
