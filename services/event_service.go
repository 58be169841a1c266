package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hive-backend/models"
)

type EventService struct {
	DB       *gorm.DB
	Activity *ActivityService
}

func NewEventService(db *gorm.DB, activity *ActivityService) *EventService {
	return &EventService{DB: db, Activity: activity}
}

func (s *EventService) Add(event models.Event, byAdminID uint) (*models.Event, error) {
	if strings.TrimSpace(event.EventName) == "" {
		return nil, validationErr("event name is required")
	}
	if !event.End.IsZero() && event.End.Before(event.Start) {
		return nil, validationErr("event end is before start")
	}
	if err := s.DB.Create(&event).Error; err != nil {
		return nil, storageErr("failed to create event", err)
	}
	s.Activity.Record(byAdminID, models.ActorAdmin, "create",
		fmt.Sprintf("Added tracker event %q.", event.EventName))
	return &event, nil
}

func (s *EventService) List(establishmentID uint) ([]models.Event, error) {
	var events []models.Event
	if err := s.DB.Where("establishment_id = ?", establishmentID).
		Order("start ASC").
		Find(&events).Error; err != nil {
		return nil, storageErr("failed to retrieve events", err)
	}
	return events, nil
}

func (s *EventService) Update(eventID uint, patch models.Event, byAdminID uint) (*models.Event, error) {
	res := s.DB.Model(&models.Event{}).Where("event_id = ?", eventID).
		Updates(map[string]interface{}{
			"event_name":        patch.EventName,
			"event_description": patch.EventDescription,
			"start":             patch.Start,
			"end":               patch.End,
			"status":            patch.Status,
		})
	if res.Error != nil {
		return nil, storageErr("failed to update event", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, notFoundErr("event %d not found", eventID)
	}

	s.Activity.Record(byAdminID, models.ActorAdmin, "update",
		fmt.Sprintf("Updated tracker event #%d.", eventID))

	var event models.Event
	if err := s.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		return nil, storageErr("failed to reload event", err)
	}
	return &event, nil
}

func (s *EventService) Delete(eventID, byAdminID uint) error {
	res := s.DB.Delete(&models.Event{}, "event_id = ?", eventID)
	if res.Error != nil {
		return storageErr("failed to delete event", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundErr("event %d not found", eventID)
	}
	s.Activity.Record(byAdminID, models.ActorAdmin, "delete",
		fmt.Sprintf("Deleted tracker event #%d.", eventID))
	return nil
}
