package models

import "time"

// PasswordReset holds a one-shot reset token. Delivery of the token to the
// account owner happens outside this service.
type PasswordReset struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Token    string `gorm:"column:token;size:64;uniqueIndex" json:"-"`
	AdminID  *uint  `gorm:"column:admin_id;index" json:"admin_id,omitempty"`
	TenantID *uint  `gorm:"column:tenant_id;index" json:"tenant_id,omitempty"`
	Used     bool   `gorm:"column:used;default:false" json:"used"`

	ExpiresAt time.Time `gorm:"column:expires_at" json:"expires_at"`
	CreatedAt time.Time `json:"-"`
}
