package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hive-backend/models"
)

func TestAllocateSplitsSharedCosts(t *testing.T) {
	charges := []models.Utility{
		{UtilityType: models.UtilityElectricity, SharedBalance: 300},
		{UtilityType: models.UtilityUnitRental, Charge: 2500, SharedBalance: 7500},
	}

	out := Allocate(charges, 3)
	require.InDelta(t, 100, out[0].PerTenant, 1e-9)
	// unit rental is billed per tenant, not divided
	require.InDelta(t, 2500, out[1].PerTenant, 1e-9)

	// input slice untouched
	require.Zero(t, charges[0].PerTenant)
}

func TestAllocateEmptyRoomCountsAsOneOccupant(t *testing.T) {
	charges := []models.Utility{{UtilityType: models.UtilityWater, SharedBalance: 120}}

	for _, n := range []int{0, -3, 1} {
		out := Allocate(charges, n)
		require.InDelta(t, 120, out[0].PerTenant, 1e-9)
	}
}

func TestSelectBillingPeriodMatchesStatementOrDueDate(t *testing.T) {
	ref := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	charges := []models.Utility{
		{UtilityType: models.UtilityElectricity, StatementDate: mar, DueDate: mar},
		{UtilityType: models.UtilityWater, StatementDate: feb, DueDate: mar},
		{UtilityType: models.UtilityInternet, StatementDate: feb, DueDate: feb},
	}

	selected := SelectBillingPeriod(charges, ref)
	require.Len(t, selected, 2)
	require.Equal(t, models.UtilityElectricity, selected[0].UtilityType)
	require.Equal(t, models.UtilityWater, selected[1].UtilityType)
}

func TestSelectBillingPeriodFallsBackToFullSet(t *testing.T) {
	ref := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	charges := []models.Utility{
		{UtilityType: models.UtilityElectricity, StatementDate: feb, DueDate: feb},
		{UtilityType: models.UtilityWater, StatementDate: feb, DueDate: feb},
	}

	require.Len(t, SelectBillingPeriod(charges, ref), 2)
}

func TestFormatForDisplayAlwaysEmitsSixCards(t *testing.T) {
	rows := FormatForDisplay(nil)
	require.Len(t, rows, 6)
	for _, row := range rows {
		require.Equal(t, "0.00", row.Charge)
		require.Equal(t, "N/A", row.Status)
		require.Equal(t, "N/A", row.DueDate)
	}

	mar := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rows = FormatForDisplay([]models.Utility{{
		UtilityType:   models.UtilityElectricity,
		Charge:        450.5,
		PerTenant:     150.166666,
		Status:        models.UtilityPending,
		StatementDate: mar,
		DueDate:       mar.AddDate(0, 0, 14),
	}})
	require.Len(t, rows, 6)

	require.Equal(t, "Electricity", rows[0].UtilityType)
	require.Equal(t, "450.50", rows[0].Charge)
	require.Equal(t, "150.17", rows[0].PerTenant)
	require.Equal(t, "fa-bolt", rows[0].IconClass)
	require.Equal(t, "card-large", rows[0].SizeClass)
	require.Equal(t, "2026-03-01", rows[0].StatementDate)

	// the other five stay as placeholders
	for _, row := range rows[1:] {
		require.Equal(t, "0.00", row.Charge)
	}
}

func TestFormatForDisplayKeepsFirstChargePerType(t *testing.T) {
	rows := FormatForDisplay([]models.Utility{
		{UtilityType: models.UtilityWater, Charge: 80},
		{UtilityType: models.UtilityWater, Charge: 95},
	})
	require.Equal(t, "80.00", rows[1].Charge)
}

func TestCurrentBreakdownAllocatesAcrossOccupants(t *testing.T) {
	db := newTestDB(t)
	svc := NewUtilityService(db, NewActivityService(db))
	room, tenant := seedRoomWithTenant(t, db, 4)

	second := models.Tenant{
		EstablishmentID: tenant.EstablishmentID,
		RoomID:          room.RoomID,
		TenantFirstName: "Borja",
		TenantLastName:  "Santos",
		TenantEmail:     "borja@example.com",
		Password:        "x",
	}
	require.NoError(t, db.Create(&second).Error)

	ref := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Utility{
		RoomID:          room.RoomID,
		EstablishmentID: room.EstablishmentID,
		UtilityType:     models.UtilityElectricity,
		Charge:          600,
		SharedBalance:   600,
		TotalBalance:    900,
		Status:          models.UtilityPending,
		StatementDate:   mar,
		DueDate:         mar.AddDate(0, 0, 14),
	}).Error)

	breakdown, err := svc.CurrentBreakdown(room.RoomID, ref)
	require.NoError(t, err)
	require.Equal(t, 2, breakdown.Occupants)
	require.Equal(t, "900.00", breakdown.TotalBalance)
	require.Equal(t, "600.00", breakdown.SharedBalance)
	require.Len(t, breakdown.Utilities, 6)
	require.Equal(t, "300.00", breakdown.Utilities[0].PerTenant)
}

func TestAddSnapshotsPerTenantAtPostingTime(t *testing.T) {
	db := newTestDB(t)
	svc := NewUtilityService(db, NewActivityService(db))
	room, _ := seedRoomWithTenant(t, db, 4)

	mar := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	utility, err := svc.Add(UtilityInput{
		RoomID:        room.RoomID,
		UtilityType:   models.UtilityWater,
		Charge:        90,
		SharedBalance: 90,
		StatementDate: mar,
		DueDate:       mar,
	}, 1)
	require.NoError(t, err)
	// one occupant at posting time
	require.InDelta(t, 90, utility.PerTenant, 1e-9)
	require.Equal(t, models.UtilityPending, utility.Status)
}

func TestAddRejectsUnknownTypeAndStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewUtilityService(db, NewActivityService(db))
	room, _ := seedRoomWithTenant(t, db, 2)

	mar := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Add(UtilityInput{
		RoomID: room.RoomID, UtilityType: "cable tv", StatementDate: mar, DueDate: mar,
	}, 1)
	require.True(t, IsValidation(err))

	_, err = svc.Add(UtilityInput{
		RoomID: room.RoomID, UtilityType: models.UtilityWater,
		Status: "overdue", StatementDate: mar, DueDate: mar,
	}, 1)
	require.True(t, IsValidation(err))
}
