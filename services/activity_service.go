package services

import (
	"log"
	"math"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hive-backend/models"
)

// ActivityService appends audit entries and serves the paginated read-back.
// Record is fire-and-forget: a failed write is logged and swallowed so the
// action that triggered it is never blocked or rolled back by auditing.
type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

// Record appends an audit entry. It never returns an error.
func (s *ActivityService) Record(actorID uint, actorRole, actionType, details string) {
	s.RecordMeta(actorID, actorRole, actionType, details, nil)
}

// RecordMeta is Record with an optional structured payload.
func (s *ActivityService) RecordMeta(actorID uint, actorRole, actionType, details string, meta datatypes.JSONMap) {
	entry := models.ActivityLog{
		ActorID:       actorID,
		ActorRole:     actorRole,
		ActionType:    actionType,
		ActionDetails: details,
		Metadata:      meta,
		Timestamp:     time.Now().UTC(),
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		log.Printf("warning: failed to record activity (%s %s): %v", actorRole, actionType, err)
	}
}

type ActivityPage struct {
	Activities []models.ActivityLog `json:"activities"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"totalPages"`
	Total      int64                `json:"total"`
}

// Page returns the actor's entries ordered newest first. Pages are 1-based;
// a page past the end returns an empty slice, not an error.
func (s *ActivityService) Page(actorID uint, actorRole string, page, pageSize int) (ActivityPage, error) {
	if page < 1 {
		return ActivityPage{}, validationErr("page number must be at least 1, got %d", page)
	}
	if pageSize < 1 {
		return ActivityPage{}, validationErr("page size must be at least 1, got %d", pageSize)
	}

	scope := s.DB.Model(&models.ActivityLog{}).
		Where("actor_id = ? AND actor_role = ?", actorID, actorRole)

	var total int64
	if err := scope.Count(&total).Error; err != nil {
		return ActivityPage{}, storageErr("failed to count activities", err)
	}

	var entries []models.ActivityLog
	if err := scope.
		Order("timestamp DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error; err != nil {
		return ActivityPage{}, storageErr("failed to retrieve activities", err)
	}

	return ActivityPage{
		Activities: entries,
		Page:       page,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
		Total:      total,
	}, nil
}
