package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hive-backend/middleware"
	"hive-backend/models"
	"hive-backend/services"
	"hive-backend/utils"
)

type FeedbackController struct {
	FeedbackSvc *services.FeedbackService
}

func NewFeedbackController(svc *services.FeedbackService) *FeedbackController {
	return &FeedbackController{FeedbackSvc: svc}
}

type feedbackPayload struct {
	Category string `json:"category"`
	Message  string `json:"message" binding:"required"`
}

// SubmitAdminFeedback records portal feedback from the signed-in admin.
func (ctrl *FeedbackController) SubmitAdminFeedback(c *gin.Context) {
	ctrl.submit(c, models.ActorAdmin)
}

// SubmitTenantFeedback records portal feedback from the signed-in tenant.
func (ctrl *FeedbackController) SubmitTenantFeedback(c *gin.Context) {
	ctrl.submit(c, models.ActorTenant)
}

func (ctrl *FeedbackController) submit(c *gin.Context, role string) {
	var payload feedbackPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID := middleware.ActorID(c)
	fb := models.Feedback{
		EstablishmentID: middleware.EstablishmentID(c),
		Category:        payload.Category,
		Message:         payload.Message,
	}
	if role == models.ActorAdmin {
		fb.AdminID = &actorID
	} else {
		fb.TenantID = &actorID
	}

	created, err := ctrl.FeedbackSvc.Submit(fb)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}
