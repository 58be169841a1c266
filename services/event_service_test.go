package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hive-backend/models"
)

func TestEventAddValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, NewActivityService(db))

	_, err := svc.Add(models.Event{EventName: "  "}, 1)
	require.True(t, IsValidation(err))

	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	_, err = svc.Add(models.Event{
		EventName: "Fire drill",
		Start:     start,
		End:       start.Add(-time.Hour),
	}, 1)
	require.True(t, IsValidation(err))
}

func TestEventListOrderedByStart(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, NewActivityService(db))

	establishment := models.Establishment{EName: "Hive Dormitory"}
	require.NoError(t, db.Create(&establishment).Error)

	later := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	earlier := later.AddDate(0, -1, 0)

	_, err := svc.Add(models.Event{
		EstablishmentID: establishment.EstablishmentID, EventName: "Inspection", Start: later,
	}, 1)
	require.NoError(t, err)
	_, err = svc.Add(models.Event{
		EstablishmentID: establishment.EstablishmentID, EventName: "Fire drill", Start: earlier,
	}, 1)
	require.NoError(t, err)

	events, err := svc.List(establishment.EstablishmentID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "Fire drill", events[0].EventName)
}

func TestEventUpdateAndDeleteUnknown(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, NewActivityService(db))

	_, err := svc.Update(9999, models.Event{EventName: "x"}, 1)
	require.True(t, IsNotFound(err))

	require.True(t, IsNotFound(svc.Delete(9999, 1)))
}
