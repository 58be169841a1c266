package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"hive-backend/models"
)

type RoomService struct {
	DB       *gorm.DB
	Activity *ActivityService
}

func NewRoomService(db *gorm.DB, activity *ActivityService) *RoomService {
	return &RoomService{DB: db, Activity: activity}
}

func (s *RoomService) Create(room models.Room, byAdminID uint) (*models.Room, error) {
	if room.RoomNumber == "" {
		return nil, validationErr("room number is required")
	}
	if room.RoomTotalSlot < 1 {
		return nil, validationErr("room must have at least one slot")
	}
	if room.RoomRemainingSlot < 0 || room.RoomRemainingSlot > room.RoomTotalSlot {
		return nil, validationErr("remaining slots must be between 0 and %d", room.RoomTotalSlot)
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return nil, storageErr("failed to create room", err)
	}
	s.Activity.Record(byAdminID, models.ActorAdmin, "create",
		fmt.Sprintf("Added unit %s.", room.RoomNumber))
	return &room, nil
}

func (s *RoomService) GetByID(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, "room_id = ?", roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("room %d not found", roomID)
		}
		return nil, storageErr("failed to load room", err)
	}
	return &room, nil
}

func (s *RoomService) ListByEstablishment(establishmentID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("establishment_id = ?", establishmentID).
		Order("room_number ASC").
		Find(&rooms).Error; err != nil {
		return nil, storageErr("failed to retrieve rooms", err)
	}
	return rooms, nil
}

// AvailableRooms lists units with at least one free slot.
func (s *RoomService) AvailableRooms(establishmentID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.
		Where("establishment_id = ? AND room_remaining_slot > 0", establishmentID).
		Order("room_number ASC").
		Find(&rooms).Error; err != nil {
		return nil, storageErr("failed to retrieve available rooms", err)
	}
	return rooms, nil
}

// OccupiedUnits lists units with at least one occupant.
func (s *RoomService) OccupiedUnits(establishmentID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.
		Where("establishment_id = ? AND room_remaining_slot < room_total_slot", establishmentID).
		Order("room_number ASC").
		Find(&rooms).Error; err != nil {
		return nil, storageErr("failed to retrieve occupied units", err)
	}
	return rooms, nil
}

// TotalUnits sums every room's slot capacity for an establishment.
func (s *RoomService) TotalUnits(establishmentID uint) (int64, error) {
	var total int64
	err := s.DB.Model(&models.Room{}).
		Where("establishment_id = ?", establishmentID).
		Select("COALESCE(SUM(room_total_slot), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, storageErr("failed to sum room slots", err)
	}
	return total, nil
}

// OccupantCount returns the room's occupant count from the tenants table.
// The slot counters are cross-checked against it; on disagreement the tenant
// count wins and the drift is logged for repair.
func (s *RoomService) OccupantCount(roomID uint) (int, error) {
	room, err := s.GetByID(roomID)
	if err != nil {
		return 0, err
	}
	var assigned int64
	if err := s.DB.Model(&models.Tenant{}).Where("room_id = ?", roomID).Count(&assigned).Error; err != nil {
		return 0, storageErr("failed to count tenants", err)
	}
	if int(assigned) != room.Occupants() {
		log.Printf("warning: room %s slot counters disagree with tenant table (slots say %d, tenants say %d)",
			room.RoomNumber, room.Occupants(), assigned)
	}
	return int(assigned), nil
}

func (s *RoomService) Update(roomID uint, patch models.Room, byAdminID uint) (*models.Room, error) {
	room, err := s.GetByID(roomID)
	if err != nil {
		return nil, err
	}
	if patch.RoomTotalSlot > 0 && (patch.RoomRemainingSlot < 0 || patch.RoomRemainingSlot > patch.RoomTotalSlot) {
		return nil, validationErr("remaining slots must be between 0 and %d", patch.RoomTotalSlot)
	}
	if err := s.DB.Model(room).Updates(map[string]interface{}{
		"room_number":         patch.RoomNumber,
		"room_type":           patch.RoomType,
		"floor_number":        patch.FloorNumber,
		"room_total_slot":     patch.RoomTotalSlot,
		"room_remaining_slot": patch.RoomRemainingSlot,
	}).Error; err != nil {
		return nil, storageErr("failed to update room", err)
	}
	s.Activity.Record(byAdminID, models.ActorAdmin, "update",
		fmt.Sprintf("Updated unit %s.", room.RoomNumber))
	return s.GetByID(roomID)
}

// Delete removes an empty unit. Units with assigned tenants are protected.
func (s *RoomService) Delete(roomID, byAdminID uint) error {
	var assigned int64
	if err := s.DB.Model(&models.Tenant{}).Where("room_id = ?", roomID).Count(&assigned).Error; err != nil {
		return storageErr("failed to count tenants", err)
	}
	if assigned > 0 {
		return conflictErr("room %d still has %d tenants assigned", roomID, assigned)
	}
	res := s.DB.Delete(&models.Room{}, "room_id = ?", roomID)
	if res.Error != nil {
		return storageErr("failed to delete room", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundErr("room %d not found", roomID)
	}
	s.Activity.Record(byAdminID, models.ActorAdmin, "delete",
		fmt.Sprintf("Deleted unit #%d.", roomID))
	return nil
}
