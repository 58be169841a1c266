package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hive-backend/models"
)

func TestSubmitFixDefaultsToScheduledPending(t *testing.T) {
	db := newTestDB(t)
	svc := NewFixService(db, NewActivityService(db))
	room, tenant := seedRoomWithTenant(t, db, 4)

	fix, err := svc.Submit(SubmitFixInput{
		TenantID:    tenant.TenantID,
		IssueType:   "plumbing",
		Description: "leaking faucet",
	})
	require.NoError(t, err)
	require.Equal(t, models.FixPending, fix.Status)
	require.Equal(t, models.UrgencyScheduled, fix.Urgency)
	require.Equal(t, room.RoomID, fix.RoomID)
	require.False(t, fix.ReportedAt.IsZero())
}

func TestSubmitFixValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewFixService(db, NewActivityService(db))
	_, tenant := seedRoomWithTenant(t, db, 4)

	_, err := svc.Submit(SubmitFixInput{TenantID: tenant.TenantID, Description: "  "})
	require.True(t, IsValidation(err))

	_, err = svc.Submit(SubmitFixInput{TenantID: tenant.TenantID, Description: "broken light", Urgency: "asap"})
	require.True(t, IsValidation(err))

	_, err = svc.Submit(SubmitFixInput{TenantID: 9999, Description: "broken light"})
	require.True(t, IsNotFound(err))
}

func TestUpdateFixStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewFixService(db, NewActivityService(db))
	_, tenant := seedRoomWithTenant(t, db, 4)

	fix, err := svc.Submit(SubmitFixInput{TenantID: tenant.TenantID, Description: "broken light"})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(fix.FixID, models.FixInProgress, 1)
	require.NoError(t, err)
	require.Equal(t, models.FixInProgress, updated.Status)

	_, err = svc.UpdateStatus(fix.FixID, "done", 1)
	require.True(t, IsValidation(err))

	_, err = svc.UpdateStatus(9999, models.FixCompleted, 1)
	require.True(t, IsNotFound(err))

	pending, err := svc.Pending(tenant.EstablishmentID)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestCountFixesTalliesStatusAndUrgency(t *testing.T) {
	counts := CountFixes([]models.Fix{
		{Status: models.FixPending, Urgency: models.UrgencyUrgent},
		{Status: models.FixPending, Urgency: models.UrgencyScheduled},
		{Status: models.FixCompleted, Urgency: models.UrgencyScheduled},
	})
	require.Equal(t, 2, counts.Pending)
	require.Equal(t, 0, counts.InProgress)
	require.Equal(t, 1, counts.Completed)
	require.Equal(t, 2, counts.Scheduled)
	require.Equal(t, 1, counts.Urgent)
}
