package models

import "time"

const (
	FixPending    = "pending"
	FixInProgress = "in progress"
	FixCompleted  = "completed"
)

const (
	UrgencyScheduled = "scheduled"
	UrgencyUrgent    = "urgent"
)

// Fix is a maintenance request raised by a tenant.
type Fix struct {
	FixID           uint   `gorm:"primaryKey;column:fix_id" json:"fix_id"`
	TenantID        uint   `gorm:"column:tenant_id;index;not null" json:"tenant_id"`
	RoomID          uint   `gorm:"column:room_id;index" json:"room_id"`
	EstablishmentID uint   `gorm:"column:establishment_id;index" json:"establishment_id"`
	IssueType       string `gorm:"column:issue_type;size:100" json:"issueType"`
	Description     string `gorm:"column:description;type:text" json:"description"`
	Urgency         string `gorm:"column:urgency;size:20;default:scheduled" json:"urgency"`
	Status          string `gorm:"column:status;size:20;default:pending" json:"status"`
	PhotoName       string `gorm:"column:photo_name;size:255" json:"photoName,omitempty"`

	ReportedAt time.Time `gorm:"column:reported_at" json:"reportedAt"`
	UpdatedAt  time.Time `json:"-"`

	Tenant Tenant `gorm:"foreignKey:TenantID;references:TenantID" json:"tenant,omitempty"`
}
