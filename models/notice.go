package models

import "time"

type Notice struct {
	NoticeID        uint   `gorm:"primaryKey;column:notice_id" json:"notice_id"`
	EstablishmentID uint   `gorm:"column:establishment_id;index" json:"establishment_id"`
	Title           string `gorm:"column:title;size:255" json:"title"`
	Content         string `gorm:"column:content;type:text" json:"content"`
	Pinned          bool   `gorm:"column:pinned;default:false" json:"pinned"`
	Permanent       bool   `gorm:"column:permanent;default:false" json:"permanent"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}
