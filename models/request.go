package models

import "time"

// RequestStatus is the closed set of visitor-request states. pending is the
// only non-terminal state; every other value refuses further transitions.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestApproved  RequestStatus = "approved"
	RequestRejected  RequestStatus = "rejected"
	RequestCancelled RequestStatus = "cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected, RequestCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further status transition is accepted.
func (s RequestStatus) Terminal() bool {
	return s.Valid() && s != RequestPending
}

type VisitType string

const (
	VisitRegular   VisitType = "regular"
	VisitOvernight VisitType = "overnight"
)

func (v VisitType) Valid() bool {
	return v == VisitRegular || v == VisitOvernight
}

// Request is a visitor request raised by a tenant. Rows are never deleted;
// cancelled and rejected requests stay on record for the visitor log.
type Request struct {
	RequestID       uint `gorm:"primaryKey;column:request_id" json:"request_id"`
	TenantID        uint `gorm:"column:tenant_id;index;not null" json:"tenant_id"`
	RoomID          uint `gorm:"column:room_id;index;not null" json:"room_id"`
	EstablishmentID uint `gorm:"column:establishment_id;index;not null" json:"establishment_id"`

	VisitorName        string `gorm:"column:visitor_name;size:255;not null" json:"visitorName"`
	VisitorAffiliation string `gorm:"column:visitor_affiliation;size:255" json:"visitorAffiliation,omitempty"`
	ContactInfo        string `gorm:"column:contact_info;size:255" json:"contactInfo,omitempty"`
	Purpose            string `gorm:"column:purpose;type:text" json:"purpose,omitempty"`

	VisitDateFrom time.Time `gorm:"column:visit_date_from;not null" json:"visitDateFrom"`
	VisitDateTo   time.Time `gorm:"column:visit_date_to;not null" json:"visitDateTo"`

	VisitType VisitType     `gorm:"column:visit_type;size:20;default:regular" json:"visitType"`
	Status    RequestStatus `gorm:"column:status;size:20;default:pending;index" json:"status"`

	AdminComments     string     `gorm:"column:admin_comments;type:text" json:"adminComments,omitempty"`
	RequestDate       time.Time  `gorm:"column:request_date" json:"requestDate"`
	DecisionTimestamp *time.Time `gorm:"column:decision_timestamp" json:"decisionTimestamp,omitempty"`
	Checkin           bool       `gorm:"column:checkin;default:false" json:"checkin"`

	Tenant Tenant `gorm:"foreignKey:TenantID;references:TenantID" json:"tenant,omitempty"`
	Room   Room   `gorm:"foreignKey:RoomID;references:RoomID" json:"-"`
}
