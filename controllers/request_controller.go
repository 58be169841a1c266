package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hive-backend/middleware"
	"hive-backend/models"
	"hive-backend/services"
	"hive-backend/utils"
)

type RequestController struct {
	RequestSvc *services.RequestService
}

func NewRequestController(svc *services.RequestService) *RequestController {
	return &RequestController{RequestSvc: svc}
}

type addRequestPayload struct {
	VisitorName        string `json:"visitorName" binding:"required"`
	VisitorAffiliation string `json:"visitorAffiliation"`
	ContactInfo        string `json:"contactInfo"`
	Purpose            string `json:"purpose"`
	VisitDateFrom      string `json:"visitDateFrom" binding:"required"`
	VisitDateTo        string `json:"visitDateTo" binding:"required"`
	VisitType          string `json:"visitType"`
}

// AddRequest lets the authenticated tenant raise a visitor request for
// their own room.
func (ctrl *RequestController) AddRequest(c *gin.Context) {
	var payload addRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	from, err := parseDate(payload.VisitDateFrom)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid visitDateFrom format")
		return
	}
	to, err := parseDate(payload.VisitDateTo)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid visitDateTo format")
		return
	}

	tenantID := middleware.ActorID(c)
	var tenant models.Tenant
	if err := ctrl.RequestSvc.DB.First(&tenant, "tenant_id = ?", tenantID).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "tenant not found")
		return
	}

	req, err := ctrl.RequestSvc.Submit(services.SubmitRequestInput{
		TenantID:           tenantID,
		RoomID:             tenant.RoomID,
		VisitorName:        payload.VisitorName,
		VisitorAffiliation: payload.VisitorAffiliation,
		ContactInfo:        payload.ContactInfo,
		Purpose:            payload.Purpose,
		VisitDateFrom:      from,
		VisitDateTo:        to,
		VisitType:          models.VisitType(payload.VisitType),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, req)
}

// CancelRequest withdraws the tenant's own pending request.
func (ctrl *RequestController) CancelRequest(c *gin.Context) {
	requestID, ok := parseUintParam(c, "requestId")
	if !ok {
		return
	}
	req, err := ctrl.RequestSvc.Cancel(requestID, middleware.ActorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}

type decisionPayload struct {
	Decision string `json:"decision" binding:"required"`
	Comments string `json:"comments"`
}

// DecideRequest records an admin approval or rejection.
func (ctrl *RequestController) DecideRequest(c *gin.Context) {
	requestID, ok := parseUintParam(c, "requestId")
	if !ok {
		return
	}
	var payload decisionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	req, err := ctrl.RequestSvc.Decide(requestID,
		models.RequestStatus(payload.Decision), middleware.ActorID(c), payload.Comments)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}

// CheckInRequest marks an approved visitor as arrived.
func (ctrl *RequestController) CheckInRequest(c *gin.Context) {
	requestID, ok := parseUintParam(c, "requestId")
	if !ok {
		return
	}
	req, err := ctrl.RequestSvc.CheckIn(requestID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}

func filterFromQuery(c *gin.Context) services.RequestFilter {
	return services.RequestFilter{
		VisitType: models.VisitType(c.Query("visitType")),
		Status:    models.RequestStatus(c.Query("status")),
	}
}

// TenantRequests lists the tenant's own requests with derived counts.
func (ctrl *RequestController) TenantRequests(c *gin.Context) {
	requests, counts, err := ctrl.RequestSvc.ListByTenant(middleware.ActorID(c), filterFromQuery(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"requests": requests, "counts": counts})
}

// EstablishmentRequests is the admin-side listing across all rooms.
func (ctrl *RequestController) EstablishmentRequests(c *gin.Context) {
	requests, counts, err := ctrl.RequestSvc.ListByEstablishment(middleware.EstablishmentID(c), filterFromQuery(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"requests": requests, "counts": counts})
}

// ApprovedRequests feeds the admin visitor log.
func (ctrl *RequestController) ApprovedRequests(c *gin.Context) {
	requests, _, err := ctrl.RequestSvc.ListByEstablishment(middleware.EstablishmentID(c),
		services.RequestFilter{Status: models.RequestApproved})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, requests)
}
