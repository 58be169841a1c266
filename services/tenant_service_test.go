package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hive-backend/models"
)

func addInput(room *models.Room, email string) AddTenantInput {
	return AddTenantInput{
		EstablishmentID: room.EstablishmentID,
		RoomID:          room.RoomID,
		TenantFirstName: "Carla",
		TenantLastName:  "Dizon",
		TenantEmail:     email,
		Password:        "secret123",
	}
}

func TestAddTenantClaimsRoomSlot(t *testing.T) {
	db := newTestDB(t)
	svc := NewTenantService(db, NewActivityService(db))
	room, _ := seedRoomWithTenant(t, db, 4)

	tenant, err := svc.Add(addInput(room, "Carla.Dizon@Example.com"), 1)
	require.NoError(t, err)
	require.Equal(t, "carla.dizon@example.com", tenant.TenantEmail)
	require.NotEqual(t, "secret123", tenant.Password)

	var reloaded models.Room
	require.NoError(t, db.First(&reloaded, "room_id = ?", room.RoomID).Error)
	require.Equal(t, 2, reloaded.RoomRemainingSlot)
}

func TestAddTenantFailsWhenRoomFull(t *testing.T) {
	db := newTestDB(t)
	svc := NewTenantService(db, NewActivityService(db))
	room, _ := seedRoomWithTenant(t, db, 1)

	_, err := svc.Add(addInput(room, "carla@example.com"), 1)
	require.True(t, IsConflict(err))

	// the failed add must not leave a tenant behind
	var count int64
	require.NoError(t, db.Model(&models.Tenant{}).Where("room_id = ?", room.RoomID).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestAddTenantRejectsShortPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewTenantService(db, NewActivityService(db))
	room, _ := seedRoomWithTenant(t, db, 4)

	in := addInput(room, "carla@example.com")
	in.Password = "abc"
	_, err := svc.Add(in, 1)
	require.True(t, IsValidation(err))
}

func TestDeleteTenantReleasesRoomSlot(t *testing.T) {
	db := newTestDB(t)
	svc := NewTenantService(db, NewActivityService(db))
	room, tenant := seedRoomWithTenant(t, db, 4)

	require.NoError(t, svc.Delete(tenant.TenantID, 1))

	var reloaded models.Room
	require.NoError(t, db.First(&reloaded, "room_id = ?", room.RoomID).Error)
	require.Equal(t, 4, reloaded.RoomRemainingSlot)
}

func TestDeleteUnknownTenantNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewTenantService(db, NewActivityService(db))
	seedRoomWithTenant(t, db, 2)

	err := svc.Delete(9999, 1)
	require.True(t, IsNotFound(err))
}

func TestUpdatePasswordVerifiesCurrent(t *testing.T) {
	db := newTestDB(t)
	svc := NewTenantService(db, NewActivityService(db))
	room, _ := seedRoomWithTenant(t, db, 4)

	tenant, err := svc.Add(addInput(room, "carla@example.com"), 1)
	require.NoError(t, err)

	err = svc.UpdatePassword(tenant.TenantID, "wrong-password", "newsecret1")
	require.True(t, IsForbidden(err))

	require.NoError(t, svc.UpdatePassword(tenant.TenantID, "secret123", "newsecret1"))
}

func TestSearchMatchesNameAndEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewTenantService(db, NewActivityService(db))
	room, _ := seedRoomWithTenant(t, db, 4)

	_, err := svc.Add(addInput(room, "carla.dizon@example.com"), 1)
	require.NoError(t, err)

	byName, err := svc.Search(room.EstablishmentID, "DIZON")
	require.NoError(t, err)
	require.Len(t, byName, 1)

	byEmail, err := svc.Search(room.EstablishmentID, "carla.dizon@")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)

	none, err := svc.Search(room.EstablishmentID, "nobody")
	require.NoError(t, err)
	require.Empty(t, none)
}
