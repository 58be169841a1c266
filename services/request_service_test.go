package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hive-backend/models"
)

func newRequestService(t *testing.T) (*RequestService, *models.Room, *models.Tenant) {
	t.Helper()
	db := newTestDB(t)
	svc := NewRequestService(db, NewActivityService(db))
	room, tenant := seedRoomWithTenant(t, db, 4)
	return svc, room, tenant
}

func submitInput(room *models.Room, tenant *models.Tenant) SubmitRequestInput {
	return SubmitRequestInput{
		TenantID:      tenant.TenantID,
		RoomID:        room.RoomID,
		VisitorName:   "Ben Cruz",
		Purpose:       "study group",
		VisitDateFrom: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		VisitDateTo:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestSubmitStartsPending(t *testing.T) {
	svc, room, tenant := newRequestService(t)

	req, err := svc.Submit(submitInput(room, tenant))
	require.NoError(t, err)
	require.Equal(t, models.RequestPending, req.Status)
	require.Equal(t, models.VisitRegular, req.VisitType)
	require.Nil(t, req.DecisionTimestamp)
	require.False(t, req.Checkin)
	require.False(t, req.RequestDate.IsZero())
}

func TestSubmitRejectsInvertedDates(t *testing.T) {
	svc, room, tenant := newRequestService(t)

	in := submitInput(room, tenant)
	in.VisitDateTo = in.VisitDateFrom.AddDate(0, 0, -1)

	_, err := svc.Submit(in)
	require.Error(t, err)
	require.True(t, IsValidation(err))
}

func TestSubmitRejectsUnknownVisitType(t *testing.T) {
	svc, room, tenant := newRequestService(t)

	in := submitInput(room, tenant)
	in.VisitType = "weekend"

	_, err := svc.Submit(in)
	require.True(t, IsValidation(err))
}

func TestSubmitRejectsForeignRoom(t *testing.T) {
	svc, _, tenant := newRequestService(t)

	other := models.Room{
		EstablishmentID:   tenant.EstablishmentID,
		RoomNumber:        "202",
		RoomTotalSlot:     2,
		RoomRemainingSlot: 2,
	}
	require.NoError(t, svc.DB.Create(&other).Error)

	in := submitInput(&other, tenant)
	_, err := svc.Submit(in)
	require.True(t, IsValidation(err))
}

func TestDecideApprovesAndStampsDecision(t *testing.T) {
	svc, room, tenant := newRequestService(t)

	req, err := svc.Submit(submitInput(room, tenant))
	require.NoError(t, err)

	decided, err := svc.Decide(req.RequestID, models.RequestApproved, 1, "ok for the afternoon")
	require.NoError(t, err)
	require.Equal(t, models.RequestApproved, decided.Status)
	require.Equal(t, "ok for the afternoon", decided.AdminComments)
	require.NotNil(t, decided.DecisionTimestamp)
}

func TestDecideOnlyAcceptsApproveOrReject(t *testing.T) {
	svc, room, tenant := newRequestService(t)

	req, err := svc.Submit(submitInput(room, tenant))
	require.NoError(t, err)

	_, err = svc.Decide(req.RequestID, models.RequestCancelled, 1, "")
	require.True(t, IsValidation(err))
}

func TestDecideTwiceConflicts(t *testing.T) {
	svc, room, tenant := newRequestService(t)

	req, err := svc.Submit(submitInput(room, tenant))
	require.NoError(t, err)

	_, err = svc.Decide(req.RequestID, models.RequestApproved, 1, "")
	require.NoError(t, err)

	_, err = svc.Decide(req.RequestID, models.RequestRejected, 1, "")
	require.True(t, IsConflict(err))
}

func TestCancelPendingRequest(t *testing.T) {
	svc, room, tenant := newRequestService(t)

	req, err := svc.Submit(submitInput(room, tenant))
	require.NoError(t, err)

	cancelled, err := svc.Cancel(req.RequestID, tenant.TenantID)
	require.NoError(t, err)
	require.Equal(t, models.RequestCancelled, cancelled.Status)
}

func TestCancelAfterDecisionConflicts(t *testing.T) {
	svc, room, tenant := newRequestService(t)

	req, err := svc.Submit(submitInput(room, tenant))
	require.NoError(t, err)

	_, err = svc.Decide(req.RequestID, models.RequestApproved, 1, "")
	require.NoError(t, err)

	_, err = svc.Cancel(req.RequestID, tenant.TenantID)
	require.True(t, IsConflict(err))
}

func TestCancelByNonOwnerForbidden(t *testing.T) {
	svc, room, tenant := newRequestService(t)

	req, err := svc.Submit(submitInput(room, tenant))
	require.NoError(t, err)

	_, err = svc.Cancel(req.RequestID, tenant.TenantID+1)
	require.True(t, IsForbidden(err))
}

func TestCancelUnknownRequestNotFound(t *testing.T) {
	svc, _, tenant := newRequestService(t)

	_, err := svc.Cancel(9999, tenant.TenantID)
	require.True(t, IsNotFound(err))
}

func TestCheckInOncePerRequest(t *testing.T) {
	svc, room, tenant := newRequestService(t)

	req, err := svc.Submit(submitInput(room, tenant))
	require.NoError(t, err)
	_, err = svc.Decide(req.RequestID, models.RequestApproved, 1, "")
	require.NoError(t, err)

	arrived, err := svc.CheckIn(req.RequestID)
	require.NoError(t, err)
	require.True(t, arrived.Checkin)

	_, err = svc.CheckIn(req.RequestID)
	require.True(t, IsConflict(err))
}

func TestCheckInRequiresApproval(t *testing.T) {
	svc, room, tenant := newRequestService(t)

	req, err := svc.Submit(submitInput(room, tenant))
	require.NoError(t, err)

	_, err = svc.CheckIn(req.RequestID)
	require.True(t, IsConflict(err))
}

func TestListNewestFirstWithStableTieBreak(t *testing.T) {
	svc, room, tenant := newRequestService(t)

	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		req := models.Request{
			TenantID:        tenant.TenantID,
			RoomID:          room.RoomID,
			EstablishmentID: tenant.EstablishmentID,
			VisitorName:     "Visitor",
			VisitDateFrom:   stamp,
			VisitDateTo:     stamp,
			VisitType:       models.VisitRegular,
			Status:          models.RequestPending,
			RequestDate:     stamp,
		}
		require.NoError(t, svc.DB.Create(&req).Error)
	}

	listed, _, err := svc.ListByTenant(tenant.TenantID, RequestFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 3)
	// equal request dates fall back to id order, newest insert first
	require.Greater(t, listed[0].RequestID, listed[1].RequestID)
	require.Greater(t, listed[1].RequestID, listed[2].RequestID)
}

func TestListCountsCoverFullSetWhileFilterNarrowsRows(t *testing.T) {
	svc, room, tenant := newRequestService(t)

	seed := func(visitType models.VisitType) *models.Request {
		in := submitInput(room, tenant)
		in.VisitType = visitType
		req, err := svc.Submit(in)
		require.NoError(t, err)
		return req
	}

	seed(models.VisitRegular)
	overnight := seed(models.VisitOvernight)
	approved := seed(models.VisitRegular)
	_, err := svc.Decide(approved.RequestID, models.RequestApproved, 1, "")
	require.NoError(t, err)

	listed, counts, err := svc.ListByTenant(tenant.TenantID, RequestFilter{VisitType: models.VisitOvernight})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, overnight.RequestID, listed[0].RequestID)

	// aggregates ignore the filter
	require.Equal(t, 2, counts.Pending)
	require.Equal(t, 1, counts.Approved)
	require.Equal(t, 2, counts.Regular)
	require.Equal(t, 1, counts.Overnight)
}
