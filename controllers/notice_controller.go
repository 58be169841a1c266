package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hive-backend/middleware"
	"hive-backend/models"
	"hive-backend/services"
	"hive-backend/utils"
)

type NoticeController struct {
	NoticeSvc *services.NoticeService
}

func NewNoticeController(svc *services.NoticeService) *NoticeController {
	return &NoticeController{NoticeSvc: svc}
}

type noticePayload struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Pinned    bool   `json:"pinned"`
	Permanent bool   `json:"permanent"`
}

func (ctrl *NoticeController) AddNotice(c *gin.Context) {
	var payload noticePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	notice, err := ctrl.NoticeSvc.Add(models.Notice{
		EstablishmentID: middleware.EstablishmentID(c),
		Title:           payload.Title,
		Content:         payload.Content,
		Pinned:          payload.Pinned,
		Permanent:       payload.Permanent,
	}, middleware.ActorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, notice)
}

// Notices lists the board, optionally narrowed by ?filter=pinned or
// ?filter=permanent.
func (ctrl *NoticeController) Notices(c *gin.Context) {
	notices, err := ctrl.NoticeSvc.List(middleware.EstablishmentID(c), c.Query("filter"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, notices)
}

func (ctrl *NoticeController) TogglePinned(c *gin.Context) {
	noticeID, ok := parseUintParam(c, "noticeId")
	if !ok {
		return
	}
	notice, err := ctrl.NoticeSvc.TogglePinned(noticeID, middleware.ActorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, notice)
}

func (ctrl *NoticeController) TogglePermanent(c *gin.Context) {
	noticeID, ok := parseUintParam(c, "noticeId")
	if !ok {
		return
	}
	notice, err := ctrl.NoticeSvc.TogglePermanent(noticeID, middleware.ActorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, notice)
}

func (ctrl *NoticeController) DeleteNotice(c *gin.Context) {
	noticeID, ok := parseUintParam(c, "noticeId")
	if !ok {
		return
	}
	if err := ctrl.NoticeSvc.Delete(noticeID, middleware.ActorID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": noticeID})
}
