package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hive-backend/models"
)

func seedEstablishment(t *testing.T, svc *NoticeService) uint {
	t.Helper()
	establishment := models.Establishment{EName: "Hive Dormitory"}
	require.NoError(t, svc.DB.Create(&establishment).Error)
	return establishment.EstablishmentID
}

func TestNoticeListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoticeService(db, NewActivityService(db))
	estID := seedEstablishment(t, svc)

	_, err := svc.Add(models.Notice{EstablishmentID: estID, Title: "Water interruption", Pinned: true}, 1)
	require.NoError(t, err)
	_, err = svc.Add(models.Notice{EstablishmentID: estID, Title: "House rules", Permanent: true}, 1)
	require.NoError(t, err)

	all, err := svc.List(estID, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	pinned, err := svc.List(estID, "pinned")
	require.NoError(t, err)
	require.Len(t, pinned, 1)
	require.Equal(t, "Water interruption", pinned[0].Title)

	permanent, err := svc.List(estID, "permanent")
	require.NoError(t, err)
	require.Len(t, permanent, 1)

	_, err = svc.List(estID, "archived")
	require.True(t, IsValidation(err))
}

func TestNoticeAddRequiresTitle(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoticeService(db, NewActivityService(db))
	estID := seedEstablishment(t, svc)

	_, err := svc.Add(models.Notice{EstablishmentID: estID, Title: "  "}, 1)
	require.True(t, IsValidation(err))
}

func TestNoticeToggles(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoticeService(db, NewActivityService(db))
	estID := seedEstablishment(t, svc)

	notice, err := svc.Add(models.Notice{EstablishmentID: estID, Title: "Curfew change"}, 1)
	require.NoError(t, err)

	toggled, err := svc.TogglePinned(notice.NoticeID, 1)
	require.NoError(t, err)
	require.True(t, toggled.Pinned)

	toggled, err = svc.TogglePinned(notice.NoticeID, 1)
	require.NoError(t, err)
	require.False(t, toggled.Pinned)

	toggled, err = svc.TogglePermanent(notice.NoticeID, 1)
	require.NoError(t, err)
	require.True(t, toggled.Permanent)

	_, err = svc.TogglePinned(9999, 1)
	require.True(t, IsNotFound(err))
}

func TestNoticeDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoticeService(db, NewActivityService(db))
	estID := seedEstablishment(t, svc)

	notice, err := svc.Add(models.Notice{EstablishmentID: estID, Title: "Old notice"}, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(notice.NoticeID, 1))
	require.True(t, IsNotFound(svc.Delete(notice.NoticeID, 1)))

	count, err := svc.Count(estID)
	require.NoError(t, err)
	require.Zero(t, count)
}
