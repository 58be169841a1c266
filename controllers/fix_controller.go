package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hive-backend/middleware"
	"hive-backend/services"
	"hive-backend/utils"
)

type FixController struct {
	FixSvc *services.FixService
}

func NewFixController(svc *services.FixService) *FixController {
	return &FixController{FixSvc: svc}
}

type fixPayload struct {
	IssueType   string `json:"issueType" binding:"required"`
	Description string `json:"description" binding:"required"`
	Urgency     string `json:"urgency"`
	PhotoName   string `json:"photoName"`
}

// SubmitFix lets a tenant report a maintenance issue for their room.
func (ctrl *FixController) SubmitFix(c *gin.Context) {
	var payload fixPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	fix, err := ctrl.FixSvc.Submit(services.SubmitFixInput{
		TenantID:    middleware.ActorID(c),
		IssueType:   payload.IssueType,
		Description: payload.Description,
		Urgency:     payload.Urgency,
		PhotoName:   payload.PhotoName,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, fix)
}

// TenantFixes returns the tenant's own reports, newest first.
func (ctrl *FixController) TenantFixes(c *gin.Context) {
	fixes, err := ctrl.FixSvc.ListByTenant(middleware.ActorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"fixes": fixes, "counts": services.CountFixes(fixes)})
}

// EstablishmentFixes is the admin maintenance queue.
func (ctrl *FixController) EstablishmentFixes(c *gin.Context) {
	fixes, err := ctrl.FixSvc.ListByEstablishment(middleware.EstablishmentID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"fixes": fixes, "counts": services.CountFixes(fixes)})
}

type fixStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateFixStatus advances a report through pending, in progress and
// completed.
func (ctrl *FixController) UpdateFixStatus(c *gin.Context) {
	fixID, ok := parseUintParam(c, "fixId")
	if !ok {
		return
	}
	var payload fixStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	fix, err := ctrl.FixSvc.UpdateStatus(fixID, payload.Status, middleware.ActorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, fix)
}
