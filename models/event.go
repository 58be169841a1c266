package models

import "time"

// Event is a tracker entry on the admin calendar.
type Event struct {
	EventID          uint      `gorm:"primaryKey;column:event_id" json:"event_id"`
	EstablishmentID  uint      `gorm:"column:establishment_id;index" json:"establishment_id"`
	EventName        string    `gorm:"column:event_name;size:255" json:"event_name"`
	EventDescription string    `gorm:"column:event_description;type:text" json:"event_description,omitempty"`
	Start            time.Time `gorm:"column:start" json:"start"`
	End              time.Time `gorm:"column:end" json:"end"`
	Status           string    `gorm:"column:status;size:32" json:"status"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
