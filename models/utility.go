package models

import "time"

type UtilityType string

const (
	UtilityElectricity UtilityType = "electricity consumption"
	UtilityWater       UtilityType = "water usage"
	UtilityInternet    UtilityType = "internet connection"
	UtilityUnitRental  UtilityType = "unit rental"
	UtilityMaintenance UtilityType = "maintenance fees"
	UtilityAmenities   UtilityType = "dorm amenities"
)

// AllUtilityTypes is the fixed dashboard order. Display formatting always
// emits one row per entry, in this order.
var AllUtilityTypes = []UtilityType{
	UtilityElectricity,
	UtilityWater,
	UtilityInternet,
	UtilityUnitRental,
	UtilityMaintenance,
	UtilityAmenities,
}

func (t UtilityType) Valid() bool {
	for _, known := range AllUtilityTypes {
		if t == known {
			return true
		}
	}
	return false
}

const (
	UtilityPaid    = "paid"
	UtilityPending = "pending"
)

// Utility is one billed charge for a room in a billing period. The stored
// per_tenant value is a snapshot from billing time; the allocation code
// recomputes it from current occupancy and treats the column as informational.
type Utility struct {
	UtilityID       uint `gorm:"primaryKey;column:utility_id" json:"utility_id"`
	RoomID          uint `gorm:"column:room_id;index;not null" json:"room_id"`
	EstablishmentID uint `gorm:"column:establishment_id;index" json:"establishment_id"`

	UtilityType   UtilityType `gorm:"column:utility_type;size:50;not null" json:"utilityType"`
	Charge        float64     `gorm:"column:charge" json:"charge"`
	SharedBalance float64     `gorm:"column:shared_balance" json:"sharedBalance"`
	TotalBalance  float64     `gorm:"column:total_balance" json:"totalBalance"`
	PerTenant     float64     `gorm:"column:per_tenant" json:"perTenant"`
	Status        string      `gorm:"column:status;size:20;default:pending" json:"status"`

	StatementDate time.Time `gorm:"column:statement_date" json:"statementDate"`
	DueDate       time.Time `gorm:"column:due_date" json:"dueDate"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Room Room `gorm:"foreignKey:RoomID;references:RoomID" json:"-"`
}
