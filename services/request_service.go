package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"hive-backend/models"
)

// RequestService owns the visitor-request state machine. The read-check-write
// sequences for Cancel, Decide and CheckIn are pushed into conditional UPDATEs
// (update-where-status-equals) so two concurrent decisions on the same pending
// request cannot both win; the service itself holds no locks.
type RequestService struct {
	DB       *gorm.DB
	Activity *ActivityService
}

func NewRequestService(db *gorm.DB, activity *ActivityService) *RequestService {
	return &RequestService{DB: db, Activity: activity}
}

type SubmitRequestInput struct {
	TenantID           uint             `json:"tenant_id"`
	RoomID             uint             `json:"room_id"`
	VisitorName        string           `json:"visitorName"`
	VisitorAffiliation string           `json:"visitorAffiliation"`
	ContactInfo        string           `json:"contactInfo"`
	Purpose            string           `json:"purpose"`
	VisitDateFrom      time.Time        `json:"visitDateFrom"`
	VisitDateTo        time.Time        `json:"visitDateTo"`
	VisitType          models.VisitType `json:"visitType"`
}

// Submit validates and stores a new visitor request in the pending state.
func (s *RequestService) Submit(in SubmitRequestInput) (*models.Request, error) {
	if strings.TrimSpace(in.VisitorName) == "" {
		return nil, validationErr("visitor name is required")
	}
	if in.VisitDateFrom.IsZero() || in.VisitDateTo.IsZero() {
		return nil, validationErr("visit dates are required")
	}
	if in.VisitDateTo.Before(in.VisitDateFrom) {
		return nil, validationErr("visit end date %s is before start date %s",
			in.VisitDateTo.Format("2006-01-02"), in.VisitDateFrom.Format("2006-01-02"))
	}
	if in.VisitType == "" {
		in.VisitType = models.VisitRegular
	}
	if !in.VisitType.Valid() {
		return nil, validationErr("unknown visit type %q", in.VisitType)
	}

	var tenant models.Tenant
	if err := s.DB.First(&tenant, "tenant_id = ?", in.TenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("tenant %d not found", in.TenantID)
		}
		return nil, storageErr("failed to load tenant", err)
	}

	var room models.Room
	if err := s.DB.First(&room, "room_id = ?", in.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("room %d not found", in.RoomID)
		}
		return nil, storageErr("failed to load room", err)
	}
	if tenant.RoomID != room.RoomID {
		return nil, validationErr("tenant %d is not assigned to room %d", tenant.TenantID, room.RoomID)
	}

	req := models.Request{
		TenantID:           tenant.TenantID,
		RoomID:             room.RoomID,
		EstablishmentID:    tenant.EstablishmentID,
		VisitorName:        strings.TrimSpace(in.VisitorName),
		VisitorAffiliation: strings.TrimSpace(in.VisitorAffiliation),
		ContactInfo:        strings.TrimSpace(in.ContactInfo),
		Purpose:            strings.TrimSpace(in.Purpose),
		VisitDateFrom:      in.VisitDateFrom,
		VisitDateTo:        in.VisitDateTo,
		VisitType:          in.VisitType,
		Status:             models.RequestPending,
		RequestDate:        time.Now().UTC(),
	}
	if err := s.DB.Create(&req).Error; err != nil {
		return nil, storageErr("failed to create request", err)
	}

	s.Activity.Record(tenant.TenantID, models.ActorTenant, "create",
		fmt.Sprintf("Submitted a %s visitor request for %s.", req.VisitType, req.VisitorName))
	return &req, nil
}

// Cancel moves a pending request to cancelled. Only the owning tenant may
// cancel, and only while the request is still pending.
func (s *RequestService) Cancel(requestID, byTenantID uint) (*models.Request, error) {
	var req models.Request
	if err := s.DB.First(&req, "request_id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("request %d not found", requestID)
		}
		return nil, storageErr("failed to load request", err)
	}
	if req.TenantID != byTenantID {
		return nil, forbiddenErr("request %d does not belong to tenant %d", requestID, byTenantID)
	}

	res := s.DB.Model(&models.Request{}).
		Where("request_id = ? AND status = ?", requestID, models.RequestPending).
		Update("status", models.RequestCancelled)
	if res.Error != nil {
		return nil, storageErr("failed to cancel request", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, s.classifyMiss(requestID, models.RequestPending)
	}

	s.Activity.Record(byTenantID, models.ActorTenant, "update",
		fmt.Sprintf("Cancelled visitor request #%d.", requestID))

	req.Status = models.RequestCancelled
	return &req, nil
}

// Decide records an admin approval or rejection of a pending request.
func (s *RequestService) Decide(requestID uint, decision models.RequestStatus, byAdminID uint, comments string) (*models.Request, error) {
	if decision != models.RequestApproved && decision != models.RequestRejected {
		return nil, validationErr("decision must be approved or rejected, got %q", decision)
	}

	now := time.Now().UTC()
	res := s.DB.Model(&models.Request{}).
		Where("request_id = ? AND status = ?", requestID, models.RequestPending).
		Updates(map[string]interface{}{
			"status":             decision,
			"decision_timestamp": now,
			"admin_comments":     comments,
		})
	if res.Error != nil {
		return nil, storageErr("failed to record decision", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, s.classifyMiss(requestID, models.RequestPending)
	}

	s.Activity.Record(byAdminID, models.ActorAdmin, "update",
		fmt.Sprintf("Marked visitor request #%d as %s.", requestID, decision))

	var req models.Request
	if err := s.DB.First(&req, "request_id = ?", requestID).Error; err != nil {
		return nil, storageErr("failed to reload request", err)
	}
	return &req, nil
}

// CheckIn flags an approved request's visitor as arrived. A second call on
// the same request fails with a conflict.
func (s *RequestService) CheckIn(requestID uint) (*models.Request, error) {
	res := s.DB.Model(&models.Request{}).
		Where("request_id = ? AND status = ? AND checkin = ?", requestID, models.RequestApproved, false).
		Update("checkin", true)
	if res.Error != nil {
		return nil, storageErr("failed to mark check-in", res.Error)
	}
	if res.RowsAffected == 0 {
		var req models.Request
		if err := s.DB.First(&req, "request_id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFoundErr("request %d not found", requestID)
			}
			return nil, storageErr("failed to load request", err)
		}
		if req.Checkin {
			return nil, conflictErr("request %d is already checked in", requestID)
		}
		return nil, conflictErr("request %d is %s, not approved", requestID, req.Status)
	}

	var req models.Request
	if err := s.DB.First(&req, "request_id = ?", requestID).Error; err != nil {
		return nil, storageErr("failed to reload request", err)
	}
	return &req, nil
}

// classifyMiss explains a conditional update that matched no row: the request
// either disappeared or is no longer in the expected status.
func (s *RequestService) classifyMiss(requestID uint, expected models.RequestStatus) error {
	var req models.Request
	if err := s.DB.First(&req, "request_id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("request %d not found", requestID)
		}
		return storageErr("failed to load request", err)
	}
	return conflictErr("request %d is %s, expected %s", requestID, req.Status, expected)
}

// RequestFilter narrows listings; zero values match everything.
type RequestFilter struct {
	VisitType models.VisitType
	Status    models.RequestStatus
}

// RequestCounts are derived aggregates over a tenant's or establishment's
// requests; nothing here is stored.
type RequestCounts struct {
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Cancelled int `json:"cancelled"`
	Regular   int `json:"regular"`
	Overnight int `json:"overnight"`
}

// ListByTenant returns the tenant's requests, newest first, plus counts over
// the full set. The filter applies to the returned slice only.
func (s *RequestService) ListByTenant(tenantID uint, filter RequestFilter) ([]models.Request, RequestCounts, error) {
	return s.list("tenant_id = ?", tenantID, filter)
}

// ListByEstablishment is the admin-side view across all rooms.
func (s *RequestService) ListByEstablishment(establishmentID uint, filter RequestFilter) ([]models.Request, RequestCounts, error) {
	return s.list("establishment_id = ?", establishmentID, filter)
}

func (s *RequestService) list(scope string, id uint, filter RequestFilter) ([]models.Request, RequestCounts, error) {
	var all []models.Request
	// request_id breaks ties between identical request dates so the order is
	// stable across reads.
	if err := s.DB.
		Preload("Tenant").
		Where(scope, id).
		Order("request_date DESC, request_id DESC").
		Find(&all).Error; err != nil {
		return nil, RequestCounts{}, storageErr("failed to retrieve requests", err)
	}

	var counts RequestCounts
	for _, r := range all {
		switch r.Status {
		case models.RequestPending:
			counts.Pending++
		case models.RequestApproved:
			counts.Approved++
		case models.RequestRejected:
			counts.Rejected++
		case models.RequestCancelled:
			counts.Cancelled++
		}
		switch r.VisitType {
		case models.VisitRegular:
			counts.Regular++
		case models.VisitOvernight:
			counts.Overnight++
		}
	}

	if filter.VisitType == "" && filter.Status == "" {
		return all, counts, nil
	}
	filtered := make([]models.Request, 0, len(all))
	for _, r := range all {
		if filter.VisitType != "" && r.VisitType != filter.VisitType {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, counts, nil
}
