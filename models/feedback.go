package models

import "time"

type Feedback struct {
	FeedbackID      uint   `gorm:"primaryKey;column:feedback_id" json:"feedback_id"`
	AdminID         *uint  `gorm:"column:admin_id;index" json:"admin_id,omitempty"`
	TenantID        *uint  `gorm:"column:tenant_id;index" json:"tenant_id,omitempty"`
	EstablishmentID uint   `gorm:"column:establishment_id;index" json:"establishment_id"`
	Category        string `gorm:"column:category;size:50" json:"category"`
	Message         string `gorm:"column:message;type:text" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
