package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"hive-backend/models"
)

func TestPagePaginatesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db)

	for i := 0; i < 25; i++ {
		svc.Record(7, models.ActorTenant, "create", fmt.Sprintf("entry %d", i))
	}
	// another actor's entries must not leak in
	svc.Record(8, models.ActorTenant, "create", "someone else")
	svc.Record(7, models.ActorAdmin, "create", "same id, other role")

	page, err := svc.Page(7, models.ActorTenant, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Activities, 10)
	require.Equal(t, int64(25), page.Total)
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, "entry 24", page.Activities[0].ActionDetails)

	last, err := svc.Page(7, models.ActorTenant, 3, 10)
	require.NoError(t, err)
	require.Len(t, last.Activities, 5)
	require.Equal(t, "entry 0", last.Activities[4].ActionDetails)
}

func TestPagePastEndIsEmptyNotError(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db)

	svc.Record(7, models.ActorTenant, "create", "only entry")

	page, err := svc.Page(7, models.ActorTenant, 4, 10)
	require.NoError(t, err)
	require.Empty(t, page.Activities)
	require.Equal(t, int64(1), page.Total)
}

func TestPageRejectsNonPositivePage(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db)

	_, err := svc.Page(7, models.ActorTenant, 0, 10)
	require.True(t, IsValidation(err))

	_, err = svc.Page(7, models.ActorTenant, 1, 0)
	require.True(t, IsValidation(err))
}

func TestRecordSwallowsStorageFailures(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db)

	require.NoError(t, db.Migrator().DropTable(&models.ActivityLog{}))

	// must not panic or surface the error
	svc.Record(7, models.ActorTenant, "create", "write into dropped table")
}
