package services

import (
	"strings"

	"gorm.io/gorm"

	"hive-backend/models"
)

type FeedbackService struct {
	DB       *gorm.DB
	Activity *ActivityService
}

func NewFeedbackService(db *gorm.DB, activity *ActivityService) *FeedbackService {
	return &FeedbackService{DB: db, Activity: activity}
}

func (s *FeedbackService) Submit(fb models.Feedback) (*models.Feedback, error) {
	if strings.TrimSpace(fb.Message) == "" {
		return nil, validationErr("feedback message is required")
	}
	if err := s.DB.Create(&fb).Error; err != nil {
		return nil, storageErr("failed to create feedback", err)
	}

	switch {
	case fb.AdminID != nil:
		s.Activity.Record(*fb.AdminID, models.ActorAdmin, "create", "Submitted feedback.")
	case fb.TenantID != nil:
		s.Activity.Record(*fb.TenantID, models.ActorTenant, "create", "Submitted feedback.")
	}
	return &fb, nil
}
