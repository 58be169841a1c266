package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog is an append-only audit trail entry. Writes are best-effort:
// a failed log write never fails the action that triggered it.
type ActivityLog struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	ActorID       uint              `gorm:"column:actor_id;index;not null" json:"actor_id"`
	ActorRole     string            `gorm:"column:actor_role;size:20;not null" json:"actor_role"`
	ActionType    string            `gorm:"column:action_type;size:64;not null" json:"actionType"`
	ActionDetails string            `gorm:"column:action_details;type:text" json:"actionDetails"`
	Metadata      datatypes.JSONMap `gorm:"column:metadata;type:json" json:"metadata,omitempty"`
	Timestamp     time.Time         `gorm:"column:timestamp;index" json:"timestamp"`
}

const (
	ActorAdmin  = "admin"
	ActorTenant = "tenant"
)
