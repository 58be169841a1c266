package models

import "time"

type Room struct {
	RoomID          uint   `gorm:"primaryKey;column:room_id" json:"room_id"`
	EstablishmentID uint   `gorm:"column:establishment_id;index" json:"establishment_id"`
	RoomNumber      string `gorm:"column:room_number;size:10" json:"roomNumber"`
	RoomType        string `gorm:"column:room_type;size:50" json:"roomType"`
	FloorNumber     int    `gorm:"column:floor_number" json:"floorNumber"`

	// roomRemainingSlot counts free beds; occupants = total - remaining.
	RoomTotalSlot     int `gorm:"column:room_total_slot" json:"roomTotalSlot"`
	RoomRemainingSlot int `gorm:"column:room_remaining_slot" json:"roomRemainingSlot"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Occupants derives the occupant count from the slot counters.
func (r Room) Occupants() int {
	n := r.RoomTotalSlot - r.RoomRemainingSlot
	if n < 0 {
		return 0
	}
	return n
}
