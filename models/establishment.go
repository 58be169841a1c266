package models

import "time"

type Establishment struct {
	EstablishmentID uint   `gorm:"primaryKey;column:establishment_id" json:"establishment_id"`
	EName           string `gorm:"column:e_name;size:255" json:"eName"`
	Address         string `gorm:"column:address;size:255" json:"address,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
