package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hive-backend/models"
)

func TestCreateRoomValidatesSlots(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db, NewActivityService(db))

	_, err := svc.Create(models.Room{RoomTotalSlot: 2}, 1)
	require.True(t, IsValidation(err))

	_, err = svc.Create(models.Room{RoomNumber: "301", RoomTotalSlot: 0}, 1)
	require.True(t, IsValidation(err))

	_, err = svc.Create(models.Room{RoomNumber: "301", RoomTotalSlot: 2, RoomRemainingSlot: 3}, 1)
	require.True(t, IsValidation(err))

	room, err := svc.Create(models.Room{RoomNumber: "301", RoomTotalSlot: 2, RoomRemainingSlot: 2}, 1)
	require.NoError(t, err)
	require.NotZero(t, room.RoomID)
}

func TestRoomOccupancyViews(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db, NewActivityService(db))
	occupied, _ := seedRoomWithTenant(t, db, 4)

	empty := models.Room{
		EstablishmentID:   occupied.EstablishmentID,
		RoomNumber:        "102",
		RoomTotalSlot:     2,
		RoomRemainingSlot: 2,
	}
	require.NoError(t, db.Create(&empty).Error)

	full := models.Room{
		EstablishmentID:   occupied.EstablishmentID,
		RoomNumber:        "103",
		RoomTotalSlot:     1,
		RoomRemainingSlot: 0,
	}
	require.NoError(t, db.Create(&full).Error)

	available, err := svc.AvailableRooms(occupied.EstablishmentID)
	require.NoError(t, err)
	require.Len(t, available, 2) // 101 has free slots, 102 is empty

	inUse, err := svc.OccupiedUnits(occupied.EstablishmentID)
	require.NoError(t, err)
	require.Len(t, inUse, 2) // 101 and 103

	total, err := svc.TotalUnits(occupied.EstablishmentID)
	require.NoError(t, err)
	require.Equal(t, int64(7), total)
}

func TestOccupantCountPrefersTenantTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db, NewActivityService(db))
	room, _ := seedRoomWithTenant(t, db, 4)

	// force the slot counters out of sync with the tenant table
	require.NoError(t, db.Model(&models.Room{}).
		Where("room_id = ?", room.RoomID).
		Update("room_remaining_slot", 4).Error)

	count, err := svc.OccupantCount(room.RoomID)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestDeleteRoomWithTenantsConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db, NewActivityService(db))
	room, tenant := seedRoomWithTenant(t, db, 4)

	err := svc.Delete(room.RoomID, 1)
	require.True(t, IsConflict(err))

	require.NoError(t, db.Delete(&models.Tenant{}, "tenant_id = ?", tenant.TenantID).Error)
	require.NoError(t, svc.Delete(room.RoomID, 1))

	err = svc.Delete(room.RoomID, 1)
	require.True(t, IsNotFound(err))
}
