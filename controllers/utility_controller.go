package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hive-backend/middleware"
	"hive-backend/models"
	"hive-backend/services"
	"hive-backend/utils"
)

type UtilityController struct {
	UtilitySvc *services.UtilityService
}

func NewUtilityController(svc *services.UtilityService) *UtilityController {
	return &UtilityController{UtilitySvc: svc}
}

type utilityPayload struct {
	RoomID        uint    `json:"roomId" binding:"required"`
	UtilityType   string  `json:"utilityType" binding:"required"`
	Charge        float64 `json:"charge"`
	SharedBalance float64 `json:"sharedBalance"`
	TotalBalance  float64 `json:"totalBalance"`
	Status        string  `json:"status"`
	StatementDate string  `json:"statementDate" binding:"required"`
	DueDate       string  `json:"dueDate" binding:"required"`
}

func (p utilityPayload) toInput(statement, due time.Time) services.UtilityInput {
	return services.UtilityInput{
		RoomID:        p.RoomID,
		UtilityType:   models.UtilityType(p.UtilityType),
		Charge:        p.Charge,
		SharedBalance: p.SharedBalance,
		TotalBalance:  p.TotalBalance,
		Status:        p.Status,
		StatementDate: statement,
		DueDate:       due,
	}
}

// AddUtility posts a new charge for a room.
func (ctrl *UtilityController) AddUtility(c *gin.Context) {
	var payload utilityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	statement, err := parseDate(payload.StatementDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid statementDate format")
		return
	}
	due, err := parseDate(payload.DueDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid dueDate format")
		return
	}

	utility, err := ctrl.UtilitySvc.Add(payload.toInput(statement, due), middleware.ActorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, utility)
}

// UpdateUtility patches an existing charge.
func (ctrl *UtilityController) UpdateUtility(c *gin.Context) {
	utilityID, ok := parseUintParam(c, "utilityId")
	if !ok {
		return
	}
	var payload utilityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	statement, err := parseDate(payload.StatementDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid statementDate format")
		return
	}
	due, err := parseDate(payload.DueDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid dueDate format")
		return
	}

	utility, err := ctrl.UtilitySvc.Update(utilityID, payload.toInput(statement, due), middleware.ActorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, utility)
}

// DeleteUtility removes a charge.
func (ctrl *UtilityController) DeleteUtility(c *gin.Context) {
	utilityID, ok := parseUintParam(c, "utilityId")
	if !ok {
		return
	}
	if err := ctrl.UtilitySvc.Delete(utilityID, middleware.ActorID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": utilityID})
}

// GetUtility fetches a single charge by id.
func (ctrl *UtilityController) GetUtility(c *gin.Context) {
	utilityID, ok := parseUintParam(c, "utilityId")
	if !ok {
		return
	}
	utility, err := ctrl.UtilitySvc.GetByID(utilityID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, utility)
}

// EstablishmentUtilities lists every charge the admin has posted.
func (ctrl *UtilityController) EstablishmentUtilities(c *gin.Context) {
	utilities, err := ctrl.UtilitySvc.ListByEstablishment(middleware.EstablishmentID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, utilities)
}

// RoomUtilities lists raw charges for one room.
func (ctrl *UtilityController) RoomUtilities(c *gin.Context) {
	roomID, ok := parseUintParam(c, "roomId")
	if !ok {
		return
	}
	utilities, err := ctrl.UtilitySvc.ListByRoom(roomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, utilities)
}

// CurrentCharges returns the tenant's allocated view of this month's
// charges for their room.
func (ctrl *UtilityController) CurrentCharges(c *gin.Context) {
	tenantID := middleware.ActorID(c)
	var tenant models.Tenant
	if err := ctrl.UtilitySvc.DB.First(&tenant, "tenant_id = ?", tenantID).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "tenant not found")
		return
	}
	breakdown, err := ctrl.UtilitySvc.CurrentBreakdown(tenant.RoomID, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, breakdown)
}

// ChargeHistory returns the tenant's full statement history.
func (ctrl *UtilityController) ChargeHistory(c *gin.Context) {
	tenantID := middleware.ActorID(c)
	var tenant models.Tenant
	if err := ctrl.UtilitySvc.DB.First(&tenant, "tenant_id = ?", tenantID).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "tenant not found")
		return
	}
	utilities, err := ctrl.UtilitySvc.History(tenant.RoomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, utilities)
}
