package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"hive-backend/models"
)

// UtilityService selects the billing period's charges for a room and splits
// shared costs across its occupants. Currency stays float64 end to end;
// two-digit rounding happens only when a figure is formatted for display.
type UtilityService struct {
	DB       *gorm.DB
	Activity *ActivityService
}

func NewUtilityService(db *gorm.DB, activity *ActivityService) *UtilityService {
	return &UtilityService{DB: db, Activity: activity}
}

// sharedCostTypes divide their shared balance across the room's occupants.
// Unit rental is billed per tenant by construction and keeps its charge.
var sharedCostTypes = map[models.UtilityType]bool{
	models.UtilityElectricity: true,
	models.UtilityWater:       true,
	models.UtilityInternet:    true,
	models.UtilityMaintenance: true,
	models.UtilityAmenities:   true,
}

// SelectBillingPeriod keeps the charges whose statement or due date falls in
// the same calendar month as ref. An empty selection falls back to the full
// set rather than an empty dashboard: a dorm may simply have no charges
// posted for the current month yet.
func SelectBillingPeriod(charges []models.Utility, ref time.Time) []models.Utility {
	month, year := ref.Month(), ref.Year()
	inPeriod := func(t time.Time) bool {
		return t.Month() == month && t.Year() == year
	}

	selected := make([]models.Utility, 0, len(charges))
	for _, c := range charges {
		if inPeriod(c.StatementDate) || inPeriod(c.DueDate) {
			selected = append(selected, c)
		}
	}
	if len(selected) == 0 {
		return charges
	}
	return selected
}

// Allocate recomputes each charge's per-tenant share from the current
// occupant count. Zero occupants is treated as one so an empty room never
// divides by zero. The stored per_tenant snapshot is overwritten in the
// returned copies only.
func Allocate(charges []models.Utility, occupantCount int) []models.Utility {
	if occupantCount < 1 {
		occupantCount = 1
	}
	out := make([]models.Utility, len(charges))
	for i, c := range charges {
		if sharedCostTypes[c.UtilityType] {
			c.PerTenant = c.SharedBalance / float64(occupantCount)
		} else {
			c.PerTenant = c.Charge
		}
		out[i] = c
	}
	return out
}

// DisplayUtility is one dashboard card. All money fields are already
// formatted strings.
type DisplayUtility struct {
	UtilityType   string `json:"utilityType"`
	Charge        string `json:"charge"`
	PerTenant     string `json:"perTenant"`
	Status        string `json:"status"`
	IconClass     string `json:"iconClass"`
	SizeClass     string `json:"sizeClass"`
	StatementDate string `json:"statementDate"`
	DueDate       string `json:"dueDate"`
}

// FormatForDisplay always emits exactly one row per utility type, in the
// fixed dashboard order, synthesizing a zero-charge "N/A" placeholder for
// any type absent from the input so the grid is never partially populated.
func FormatForDisplay(charges []models.Utility) []DisplayUtility {
	byType := make(map[models.UtilityType]models.Utility, len(charges))
	for _, c := range charges {
		if _, seen := byType[c.UtilityType]; !seen {
			byType[c.UtilityType] = c
		}
	}

	rows := make([]DisplayUtility, 0, len(models.AllUtilityTypes))
	for _, t := range models.AllUtilityTypes {
		row := DisplayUtility{
			UtilityType:   displayName(t),
			Charge:        "0.00",
			PerTenant:     "0.00",
			Status:        "N/A",
			IconClass:     iconClass(t),
			SizeClass:     sizeClass(t),
			StatementDate: "N/A",
			DueDate:       "N/A",
		}
		if c, ok := byType[t]; ok {
			row.Charge = FormatAmount(c.Charge)
			row.PerTenant = FormatAmount(c.PerTenant)
			row.Status = c.Status
			row.StatementDate = c.StatementDate.Format("2006-01-02")
			row.DueDate = c.DueDate.Format("2006-01-02")
		}
		rows = append(rows, row)
	}
	return rows
}

// FormatAmount rounds to two decimals at the display boundary.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func displayName(t models.UtilityType) string {
	switch t {
	case models.UtilityElectricity:
		return "Electricity"
	case models.UtilityWater:
		return "Water"
	case models.UtilityInternet:
		return "WiFi/Internet"
	case models.UtilityUnitRental:
		return "Unit Rent"
	case models.UtilityMaintenance:
		return "Maintenance Fees"
	case models.UtilityAmenities:
		return "Dorm Amenities"
	}
	return string(t)
}

func iconClass(t models.UtilityType) string {
	switch t {
	case models.UtilityElectricity:
		return "fa-bolt"
	case models.UtilityWater:
		return "fa-tint"
	case models.UtilityInternet:
		return "fa-wifi"
	case models.UtilityUnitRental:
		return "fa-home"
	case models.UtilityMaintenance:
		return "fa-tools"
	case models.UtilityAmenities:
		return "fa-bed"
	}
	return ""
}

func sizeClass(t models.UtilityType) string {
	switch t {
	case models.UtilityElectricity, models.UtilityUnitRental:
		return "card-large"
	case models.UtilityWater, models.UtilityMaintenance:
		return "card-medium"
	}
	return "card-small"
}

// RoomBreakdown is the tenant utilities page payload: the six display rows
// for the selected billing period plus the period's balances.
type RoomBreakdown struct {
	Utilities     []DisplayUtility `json:"utilities"`
	TotalBalance  string           `json:"totalBalance"`
	SharedBalance string           `json:"sharedBalance"`
	Occupants     int              `json:"occupants"`
}

// CurrentBreakdown runs the full pipeline for a room: load charges, select
// the billing period around ref, split shared costs across the room's
// current occupants, and format the dashboard rows.
func (s *UtilityService) CurrentBreakdown(roomID uint, ref time.Time) (RoomBreakdown, error) {
	var charges []models.Utility
	if err := s.DB.Where("room_id = ?", roomID).Find(&charges).Error; err != nil {
		return RoomBreakdown{}, storageErr("failed to retrieve utilities", err)
	}

	var occupants int64
	if err := s.DB.Model(&models.Tenant{}).Where("room_id = ?", roomID).Count(&occupants).Error; err != nil {
		return RoomBreakdown{}, storageErr("failed to count occupants", err)
	}

	period := SelectBillingPeriod(charges, ref)
	allocated := Allocate(period, int(occupants))

	breakdown := RoomBreakdown{
		Utilities:     FormatForDisplay(allocated),
		TotalBalance:  "0.00",
		SharedBalance: "0.00",
		Occupants:     int(occupants),
	}
	if len(period) > 0 {
		breakdown.TotalBalance = FormatAmount(period[0].TotalBalance)
		breakdown.SharedBalance = FormatAmount(period[0].SharedBalance)
	}
	return breakdown, nil
}

type UtilityInput struct {
	RoomID        uint               `json:"room_id"`
	UtilityType   models.UtilityType `json:"utilityType"`
	Charge        float64            `json:"charge"`
	SharedBalance float64            `json:"sharedBalance"`
	TotalBalance  float64            `json:"totalBalance"`
	Status        string             `json:"status"`
	StatementDate time.Time          `json:"statementDate"`
	DueDate       time.Time          `json:"dueDate"`
}

// Add posts a charge for a room's billing period. The stored per-tenant
// snapshot uses the occupancy at posting time and is never recomputed
// retroactively when occupancy changes.
func (s *UtilityService) Add(in UtilityInput, byAdminID uint) (*models.Utility, error) {
	if !in.UtilityType.Valid() {
		return nil, validationErr("unknown utility type %q", in.UtilityType)
	}
	if in.Status == "" {
		in.Status = models.UtilityPending
	}
	if in.Status != models.UtilityPaid && in.Status != models.UtilityPending {
		return nil, validationErr("status must be paid or pending, got %q", in.Status)
	}

	var room models.Room
	if err := s.DB.First(&room, "room_id = ?", in.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("room %d not found", in.RoomID)
		}
		return nil, storageErr("failed to load room", err)
	}

	var occupants int64
	if err := s.DB.Model(&models.Tenant{}).Where("room_id = ?", in.RoomID).Count(&occupants).Error; err != nil {
		return nil, storageErr("failed to count occupants", err)
	}
	snapshot := Allocate([]models.Utility{{
		UtilityType:   in.UtilityType,
		Charge:        in.Charge,
		SharedBalance: in.SharedBalance,
	}}, int(occupants))

	utility := models.Utility{
		RoomID:          room.RoomID,
		EstablishmentID: room.EstablishmentID,
		UtilityType:     in.UtilityType,
		Charge:          in.Charge,
		SharedBalance:   in.SharedBalance,
		TotalBalance:    in.TotalBalance,
		PerTenant:       snapshot[0].PerTenant,
		Status:          in.Status,
		StatementDate:   in.StatementDate,
		DueDate:         in.DueDate,
	}
	if err := s.DB.Create(&utility).Error; err != nil {
		return nil, storageErr("failed to create utility", err)
	}

	s.Activity.Record(byAdminID, models.ActorAdmin, "create",
		fmt.Sprintf("Added %s charge for room %s.", utility.UtilityType, room.RoomNumber))
	return &utility, nil
}

// Update overwrites a charge's billing fields.
func (s *UtilityService) Update(utilityID uint, in UtilityInput, byAdminID uint) (*models.Utility, error) {
	if in.Status != "" && in.Status != models.UtilityPaid && in.Status != models.UtilityPending {
		return nil, validationErr("status must be paid or pending, got %q", in.Status)
	}

	var utility models.Utility
	if err := s.DB.First(&utility, "utility_id = ?", utilityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("utility %d not found", utilityID)
		}
		return nil, storageErr("failed to load utility", err)
	}

	patch := map[string]interface{}{
		"charge":         in.Charge,
		"shared_balance": in.SharedBalance,
		"total_balance":  in.TotalBalance,
	}
	if in.Status != "" {
		patch["status"] = in.Status
	}
	if !in.StatementDate.IsZero() {
		patch["statement_date"] = in.StatementDate
	}
	if !in.DueDate.IsZero() {
		patch["due_date"] = in.DueDate
	}
	if err := s.DB.Model(&utility).Updates(patch).Error; err != nil {
		return nil, storageErr("failed to update utility", err)
	}

	s.Activity.Record(byAdminID, models.ActorAdmin, "update",
		fmt.Sprintf("Updated %s charge #%d.", utility.UtilityType, utility.UtilityID))

	if err := s.DB.First(&utility, "utility_id = ?", utilityID).Error; err != nil {
		return nil, storageErr("failed to reload utility", err)
	}
	return &utility, nil
}

func (s *UtilityService) Delete(utilityID, byAdminID uint) error {
	res := s.DB.Delete(&models.Utility{}, "utility_id = ?", utilityID)
	if res.Error != nil {
		return storageErr("failed to delete utility", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundErr("utility %d not found", utilityID)
	}
	s.Activity.Record(byAdminID, models.ActorAdmin, "delete",
		fmt.Sprintf("Deleted utility charge #%d.", utilityID))
	return nil
}

func (s *UtilityService) GetByID(utilityID uint) (*models.Utility, error) {
	var utility models.Utility
	if err := s.DB.First(&utility, "utility_id = ?", utilityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("utility %d not found", utilityID)
		}
		return nil, storageErr("failed to load utility", err)
	}
	return &utility, nil
}

func (s *UtilityService) ListByRoom(roomID uint) ([]models.Utility, error) {
	var utilities []models.Utility
	if err := s.DB.Where("room_id = ?", roomID).
		Order("statement_date DESC, utility_id DESC").
		Find(&utilities).Error; err != nil {
		return nil, storageErr("failed to retrieve utilities", err)
	}
	return utilities, nil
}

func (s *UtilityService) ListByEstablishment(establishmentID uint) ([]models.Utility, error) {
	var utilities []models.Utility
	if err := s.DB.Preload("Room").
		Where("establishment_id = ?", establishmentID).
		Order("statement_date DESC, utility_id DESC").
		Find(&utilities).Error; err != nil {
		return nil, storageErr("failed to retrieve utilities", err)
	}
	return utilities, nil
}

// History returns every past charge for a room, newest statement first,
// with stored snapshot values as-is.
func (s *UtilityService) History(roomID uint) ([]models.Utility, error) {
	return s.ListByRoom(roomID)
}
