package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hive-backend/models"
)

type NoticeService struct {
	DB       *gorm.DB
	Activity *ActivityService
}

func NewNoticeService(db *gorm.DB, activity *ActivityService) *NoticeService {
	return &NoticeService{DB: db, Activity: activity}
}

// List returns an establishment's notices, most recently updated first.
// filter is "", "pinned" or "permanent".
func (s *NoticeService) List(establishmentID uint, filter string) ([]models.Notice, error) {
	scope := s.DB.Where("establishment_id = ?", establishmentID)
	switch filter {
	case "pinned":
		scope = scope.Where("pinned = ?", true)
	case "permanent":
		scope = scope.Where("permanent = ?", true)
	case "":
	default:
		return nil, validationErr("unknown notice filter %q", filter)
	}

	var notices []models.Notice
	if err := scope.Order("updated_at DESC").Find(&notices).Error; err != nil {
		return nil, storageErr("failed to retrieve notices", err)
	}
	return notices, nil
}

func (s *NoticeService) Count(establishmentID uint) (int64, error) {
	var count int64
	if err := s.DB.Model(&models.Notice{}).
		Where("establishment_id = ?", establishmentID).
		Count(&count).Error; err != nil {
		return 0, storageErr("failed to count notices", err)
	}
	return count, nil
}

func (s *NoticeService) Add(notice models.Notice, byAdminID uint) (*models.Notice, error) {
	if strings.TrimSpace(notice.Title) == "" {
		return nil, validationErr("notice title is required")
	}
	if err := s.DB.Create(&notice).Error; err != nil {
		return nil, storageErr("failed to create notice", err)
	}
	s.Activity.Record(byAdminID, models.ActorAdmin, "create",
		fmt.Sprintf("Posted notice %q.", notice.Title))
	return &notice, nil
}

func (s *NoticeService) TogglePinned(noticeID, byAdminID uint) (*models.Notice, error) {
	return s.toggle(noticeID, byAdminID, "pinned")
}

func (s *NoticeService) TogglePermanent(noticeID, byAdminID uint) (*models.Notice, error) {
	return s.toggle(noticeID, byAdminID, "permanent")
}

func (s *NoticeService) toggle(noticeID, byAdminID uint, column string) (*models.Notice, error) {
	var notice models.Notice
	if err := s.DB.First(&notice, "notice_id = ?", noticeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("notice %d not found", noticeID)
		}
		return nil, storageErr("failed to load notice", err)
	}

	next := !notice.Pinned
	if column == "permanent" {
		next = !notice.Permanent
	}
	if err := s.DB.Model(&notice).Update(column, next).Error; err != nil {
		return nil, storageErr("failed to toggle notice", err)
	}

	s.Activity.Record(byAdminID, models.ActorAdmin, "update",
		fmt.Sprintf("Toggled %s on notice %q.", column, notice.Title))

	if err := s.DB.First(&notice, "notice_id = ?", noticeID).Error; err != nil {
		return nil, storageErr("failed to reload notice", err)
	}
	return &notice, nil
}

func (s *NoticeService) Delete(noticeID, byAdminID uint) error {
	res := s.DB.Delete(&models.Notice{}, "notice_id = ?", noticeID)
	if res.Error != nil {
		return storageErr("failed to delete notice", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundErr("notice %d not found", noticeID)
	}
	s.Activity.Record(byAdminID, models.ActorAdmin, "delete",
		fmt.Sprintf("Deleted notice #%d.", noticeID))
	return nil
}
