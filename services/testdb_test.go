package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hive-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection would see its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Establishment{},
		&models.Admin{},
		&models.Room{},
		&models.Tenant{},
		&models.Request{},
		&models.Utility{},
		&models.Notice{},
		&models.Fix{},
		&models.Event{},
		&models.Feedback{},
		&models.ActivityLog{},
		&models.PasswordReset{},
	))
	return db
}

// seedRoomWithTenant creates an establishment, a room with the given
// capacity and one tenant already assigned to it.
func seedRoomWithTenant(t *testing.T, db *gorm.DB, totalSlots int) (*models.Room, *models.Tenant) {
	t.Helper()

	establishment := models.Establishment{EName: "Hive Dormitory"}
	require.NoError(t, db.Create(&establishment).Error)

	room := models.Room{
		EstablishmentID:   establishment.EstablishmentID,
		RoomNumber:        "101",
		RoomType:          "standard",
		FloorNumber:       1,
		RoomTotalSlot:     totalSlots,
		RoomRemainingSlot: totalSlots - 1,
	}
	require.NoError(t, db.Create(&room).Error)

	tenant := models.Tenant{
		EstablishmentID: establishment.EstablishmentID,
		RoomID:          room.RoomID,
		TenantFirstName: "Alice",
		TenantLastName:  "Reyes",
		TenantEmail:     "alice@example.com",
		Password:        "x",
	}
	require.NoError(t, db.Create(&tenant).Error)

	return &room, &tenant
}
