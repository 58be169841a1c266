package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hive-backend/models"
	"hive-backend/utils"
)

type TenantService struct {
	DB       *gorm.DB
	Activity *ActivityService
}

func NewTenantService(db *gorm.DB, activity *ActivityService) *TenantService {
	return &TenantService{DB: db, Activity: activity}
}

type AddTenantInput struct {
	EstablishmentID uint   `json:"establishment_id"`
	RoomID          uint   `json:"room_id"`
	TenantFirstName string `json:"tenantFirstName"`
	TenantLastName  string `json:"tenantLastName"`
	TenantEmail     string `json:"tenantEmail"`
	Password        string `json:"password"`
	Gender          string `json:"gender"`
	MobileNum       string `json:"mobileNum"`
	GuardianName    string `json:"tenantGuardianName"`
	GuardianNum     string `json:"tenantGuardianNum"`
}

// Add creates a tenant and claims a slot in the room, in one transaction.
// The slot decrement is conditional on a free slot still existing so two
// concurrent adds cannot overfill a room.
func (s *TenantService) Add(in AddTenantInput, byAdminID uint) (*models.Tenant, error) {
	if strings.TrimSpace(in.TenantEmail) == "" || strings.TrimSpace(in.TenantFirstName) == "" {
		return nil, validationErr("tenant name and email are required")
	}
	if len(in.Password) < 6 {
		return nil, validationErr("password must be at least 6 characters")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, storageErr("failed to hash password", err)
	}

	tenant := models.Tenant{
		EstablishmentID: in.EstablishmentID,
		RoomID:          in.RoomID,
		TenantFirstName: strings.TrimSpace(in.TenantFirstName),
		TenantLastName:  strings.TrimSpace(in.TenantLastName),
		TenantEmail:     strings.ToLower(strings.TrimSpace(in.TenantEmail)),
		Password:        hash,
		Gender:          in.Gender,
		MobileNum:       in.MobileNum,
		GuardianName:    in.GuardianName,
		GuardianNum:     in.GuardianNum,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, "room_id = ?", in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("room %d not found", in.RoomID)
			}
			return storageErr("failed to load room", err)
		}

		res := tx.Model(&models.Room{}).
			Where("room_id = ? AND room_remaining_slot > 0", in.RoomID).
			Update("room_remaining_slot", gorm.Expr("room_remaining_slot - 1"))
		if res.Error != nil {
			return storageErr("failed to claim room slot", res.Error)
		}
		if res.RowsAffected == 0 {
			return conflictErr("room %s has no remaining slots", room.RoomNumber)
		}

		if err := tx.Create(&tenant).Error; err != nil {
			return storageErr("failed to create tenant", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Activity.Record(byAdminID, models.ActorAdmin, "create",
		fmt.Sprintf("Added tenant %s %s to room %d.", tenant.TenantFirstName, tenant.TenantLastName, tenant.RoomID))
	return &tenant, nil
}

func (s *TenantService) GetByID(tenantID uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.DB.Preload("Room").First(&tenant, "tenant_id = ?", tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("tenant %d not found", tenantID)
		}
		return nil, storageErr("failed to load tenant", err)
	}
	return &tenant, nil
}

func (s *TenantService) GetByEmail(email string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := s.DB.First(&tenant, "tenant_email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("tenant with email %s not found", email)
		}
		return nil, storageErr("failed to load tenant", err)
	}
	return &tenant, nil
}

func (s *TenantService) ListByEstablishment(establishmentID uint) ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := s.DB.Preload("Room").
		Where("establishment_id = ?", establishmentID).
		Order("tenant_last_name ASC, tenant_first_name ASC").
		Find(&tenants).Error; err != nil {
		return nil, storageErr("failed to retrieve tenants", err)
	}
	return tenants, nil
}

func (s *TenantService) ListByRoom(roomID uint) ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := s.DB.Where("room_id = ?", roomID).Find(&tenants).Error; err != nil {
		return nil, storageErr("failed to retrieve tenants", err)
	}
	return tenants, nil
}

// Search matches tenant names and emails within an establishment.
func (s *TenantService) Search(establishmentID uint, query string) ([]models.Tenant, error) {
	q := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var tenants []models.Tenant
	if err := s.DB.Preload("Room").
		Where("establishment_id = ?", establishmentID).
		Where("LOWER(tenant_first_name) LIKE ? OR LOWER(tenant_last_name) LIKE ? OR LOWER(tenant_email) LIKE ?", q, q, q).
		Find(&tenants).Error; err != nil {
		return nil, storageErr("failed to search tenants", err)
	}
	return tenants, nil
}

type UpdateTenantInput struct {
	TenantFirstName string `json:"tenantFirstName"`
	TenantLastName  string `json:"tenantLastName"`
	TenantEmail     string `json:"tenantEmail"`
	Gender          string `json:"gender"`
	MobileNum       string `json:"mobileNum"`
	GuardianName    string `json:"tenantGuardianName"`
	GuardianNum     string `json:"tenantGuardianNum"`
	TenantProfile   string `json:"tenantProfile"`
}

func (s *TenantService) Update(tenantID uint, in UpdateTenantInput, actorID uint, actorRole string) (*models.Tenant, error) {
	tenant, err := s.GetByID(tenantID)
	if err != nil {
		return nil, err
	}

	patch := map[string]interface{}{}
	if in.TenantFirstName != "" {
		patch["tenant_first_name"] = strings.TrimSpace(in.TenantFirstName)
	}
	if in.TenantLastName != "" {
		patch["tenant_last_name"] = strings.TrimSpace(in.TenantLastName)
	}
	if in.TenantEmail != "" {
		patch["tenant_email"] = strings.ToLower(strings.TrimSpace(in.TenantEmail))
	}
	if in.Gender != "" {
		patch["gender"] = in.Gender
	}
	if in.MobileNum != "" {
		patch["mobile_num"] = in.MobileNum
	}
	if in.GuardianName != "" {
		patch["tenant_guardian_name"] = in.GuardianName
	}
	if in.GuardianNum != "" {
		patch["tenant_guardian_num"] = in.GuardianNum
	}
	if in.TenantProfile != "" {
		patch["tenant_profile"] = in.TenantProfile
	}
	if len(patch) == 0 {
		return tenant, nil
	}

	if err := s.DB.Model(&models.Tenant{}).Where("tenant_id = ?", tenantID).Updates(patch).Error; err != nil {
		return nil, storageErr("failed to update tenant", err)
	}

	s.Activity.Record(actorID, actorRole, "update",
		fmt.Sprintf("Updated tenant #%d details.", tenantID))
	return s.GetByID(tenantID)
}

// Delete removes the tenant and releases their room slot, capped at the
// room's capacity in case the counters had drifted.
func (s *TenantService) Delete(tenantID, byAdminID uint) error {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.First(&tenant, "tenant_id = ?", tenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("tenant %d not found", tenantID)
			}
			return storageErr("failed to load tenant", err)
		}

		if err := tx.Delete(&models.Tenant{}, "tenant_id = ?", tenantID).Error; err != nil {
			return storageErr("failed to delete tenant", err)
		}

		if err := tx.Model(&models.Room{}).
			Where("room_id = ? AND room_remaining_slot < room_total_slot", tenant.RoomID).
			Update("room_remaining_slot", gorm.Expr("room_remaining_slot + 1")).Error; err != nil {
			return storageErr("failed to release room slot", err)
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	s.Activity.Record(byAdminID, models.ActorAdmin, "delete",
		fmt.Sprintf("Removed tenant #%d.", tenantID))
	return nil
}

// UpdatePassword verifies the current password before replacing it.
func (s *TenantService) UpdatePassword(tenantID uint, current, next string) error {
	tenant, err := s.GetByID(tenantID)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(tenant.Password, current) {
		return forbiddenErr("current password does not match")
	}
	if len(next) < 6 {
		return validationErr("password must be at least 6 characters")
	}
	hash, err := utils.HashPassword(next)
	if err != nil {
		return storageErr("failed to hash password", err)
	}
	if err := s.DB.Model(&models.Tenant{}).Where("tenant_id = ?", tenantID).
		Update("password", hash).Error; err != nil {
		return storageErr("failed to update password", err)
	}
	s.Activity.Record(tenantID, models.ActorTenant, "update", "Changed account password.")
	return nil
}
