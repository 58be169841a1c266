package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"hive-backend/models"
)

type FixService struct {
	DB       *gorm.DB
	Activity *ActivityService
}

func NewFixService(db *gorm.DB, activity *ActivityService) *FixService {
	return &FixService{DB: db, Activity: activity}
}

type SubmitFixInput struct {
	TenantID    uint   `json:"tenant_id"`
	IssueType   string `json:"issueType"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"`
	PhotoName   string `json:"photoName"`
}

// Submit files a maintenance request for the tenant's own room.
func (s *FixService) Submit(in SubmitFixInput) (*models.Fix, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, validationErr("description is required")
	}
	if in.Urgency == "" {
		in.Urgency = models.UrgencyScheduled
	}
	if in.Urgency != models.UrgencyScheduled && in.Urgency != models.UrgencyUrgent {
		return nil, validationErr("urgency must be scheduled or urgent, got %q", in.Urgency)
	}

	var tenant models.Tenant
	if err := s.DB.First(&tenant, "tenant_id = ?", in.TenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("tenant %d not found", in.TenantID)
		}
		return nil, storageErr("failed to load tenant", err)
	}

	fix := models.Fix{
		TenantID:        tenant.TenantID,
		RoomID:          tenant.RoomID,
		EstablishmentID: tenant.EstablishmentID,
		IssueType:       strings.TrimSpace(in.IssueType),
		Description:     strings.TrimSpace(in.Description),
		Urgency:         in.Urgency,
		Status:          models.FixPending,
		PhotoName:       in.PhotoName,
		ReportedAt:      time.Now().UTC(),
	}
	if err := s.DB.Create(&fix).Error; err != nil {
		return nil, storageErr("failed to create fix", err)
	}

	s.Activity.Record(tenant.TenantID, models.ActorTenant, "create",
		fmt.Sprintf("Reported a %s maintenance issue: %s.", fix.Urgency, fix.IssueType))
	return &fix, nil
}

func (s *FixService) ListByTenant(tenantID uint) ([]models.Fix, error) {
	var fixes []models.Fix
	if err := s.DB.Where("tenant_id = ?", tenantID).
		Order("reported_at DESC, fix_id DESC").
		Find(&fixes).Error; err != nil {
		return nil, storageErr("failed to retrieve fixes", err)
	}
	return fixes, nil
}

func (s *FixService) ListByEstablishment(establishmentID uint) ([]models.Fix, error) {
	var fixes []models.Fix
	if err := s.DB.Preload("Tenant").
		Where("establishment_id = ?", establishmentID).
		Order("reported_at DESC, fix_id DESC").
		Find(&fixes).Error; err != nil {
		return nil, storageErr("failed to retrieve fixes", err)
	}
	return fixes, nil
}

func (s *FixService) Pending(establishmentID uint) ([]models.Fix, error) {
	var fixes []models.Fix
	if err := s.DB.
		Where("establishment_id = ? AND status = ?", establishmentID, models.FixPending).
		Order("reported_at DESC, fix_id DESC").
		Find(&fixes).Error; err != nil {
		return nil, storageErr("failed to retrieve pending fixes", err)
	}
	return fixes, nil
}

func (s *FixService) UpdateStatus(fixID uint, status string, byAdminID uint) (*models.Fix, error) {
	switch status {
	case models.FixPending, models.FixInProgress, models.FixCompleted:
	default:
		return nil, validationErr("unknown fix status %q", status)
	}

	res := s.DB.Model(&models.Fix{}).Where("fix_id = ?", fixID).Update("status", status)
	if res.Error != nil {
		return nil, storageErr("failed to update fix", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, notFoundErr("fix %d not found", fixID)
	}

	s.Activity.Record(byAdminID, models.ActorAdmin, "update",
		fmt.Sprintf("Set maintenance request #%d to %s.", fixID, status))

	var fix models.Fix
	if err := s.DB.First(&fix, "fix_id = ?", fixID).Error; err != nil {
		return nil, storageErr("failed to reload fix", err)
	}
	return &fix, nil
}

// FixCounts are derived status and urgency tallies for a fix listing.
type FixCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Scheduled  int `json:"scheduled"`
	Urgent     int `json:"urgent"`
}

func CountFixes(fixes []models.Fix) FixCounts {
	var c FixCounts
	for _, f := range fixes {
		switch f.Status {
		case models.FixPending:
			c.Pending++
		case models.FixInProgress:
			c.InProgress++
		case models.FixCompleted:
			c.Completed++
		}
		switch f.Urgency {
		case models.UrgencyScheduled:
			c.Scheduled++
		case models.UrgencyUrgent:
			c.Urgent++
		}
	}
	return c
}
