package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hive-backend/middleware"
	"hive-backend/models"
	"hive-backend/services"
	"hive-backend/utils"
)

type TenantController struct {
	TenantSvc *services.TenantService
}

func NewTenantController(svc *services.TenantService) *TenantController {
	return &TenantController{TenantSvc: svc}
}

type addTenantPayload struct {
	RoomID             uint   `json:"roomId" binding:"required"`
	TenantFirstName    string `json:"tenantFirstName" binding:"required"`
	TenantLastName     string `json:"tenantLastName"`
	TenantEmail        string `json:"tenantEmail" binding:"required,email"`
	Password           string `json:"password" binding:"required"`
	Gender             string `json:"gender"`
	MobileNum          string `json:"mobileNum"`
	TenantGuardianName string `json:"tenantGuardianName"`
	TenantGuardianNum  string `json:"tenantGuardianNum"`
}

// AddTenant registers a tenant and assigns them to a room.
func (ctrl *TenantController) AddTenant(c *gin.Context) {
	var payload addTenantPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	tenant, err := ctrl.TenantSvc.Add(services.AddTenantInput{
		EstablishmentID: middleware.EstablishmentID(c),
		RoomID:          payload.RoomID,
		TenantFirstName: payload.TenantFirstName,
		TenantLastName:  payload.TenantLastName,
		TenantEmail:     payload.TenantEmail,
		Password:        payload.Password,
		Gender:          payload.Gender,
		MobileNum:       payload.MobileNum,
		GuardianName:    payload.TenantGuardianName,
		GuardianNum:     payload.TenantGuardianNum,
	}, middleware.ActorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, tenant)
}

func (ctrl *TenantController) GetTenant(c *gin.Context) {
	tenantID, ok := parseUintParam(c, "tenantId")
	if !ok {
		return
	}
	tenant, err := ctrl.TenantSvc.GetByID(tenantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenant)
}

// EstablishmentTenants lists tenants; a "search" query narrows by name
// or email.
func (ctrl *TenantController) EstablishmentTenants(c *gin.Context) {
	establishmentID := middleware.EstablishmentID(c)
	if query := c.Query("search"); query != "" {
		tenants, err := ctrl.TenantSvc.Search(establishmentID, query)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, tenants)
		return
	}
	tenants, err := ctrl.TenantSvc.ListByEstablishment(establishmentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenants)
}

func (ctrl *TenantController) RoomTenants(c *gin.Context) {
	roomID, ok := parseUintParam(c, "roomId")
	if !ok {
		return
	}
	tenants, err := ctrl.TenantSvc.ListByRoom(roomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenants)
}

// UpdateTenant is the admin-side profile edit.
func (ctrl *TenantController) UpdateTenant(c *gin.Context) {
	tenantID, ok := parseUintParam(c, "tenantId")
	if !ok {
		return
	}
	var in services.UpdateTenantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	tenant, err := ctrl.TenantSvc.Update(tenantID, in, middleware.ActorID(c), models.ActorAdmin)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenant)
}

// DeleteTenant removes a tenant and releases their room slot.
func (ctrl *TenantController) DeleteTenant(c *gin.Context) {
	tenantID, ok := parseUintParam(c, "tenantId")
	if !ok {
		return
	}
	if err := ctrl.TenantSvc.Delete(tenantID, middleware.ActorID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": tenantID})
}

// Profile returns the signed-in tenant's own record.
func (ctrl *TenantController) Profile(c *gin.Context) {
	tenant, err := ctrl.TenantSvc.GetByID(middleware.ActorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenant)
}

// UpdateProfile is the tenant-side self edit.
func (ctrl *TenantController) UpdateProfile(c *gin.Context) {
	var in services.UpdateTenantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	tenantID := middleware.ActorID(c)
	tenant, err := ctrl.TenantSvc.Update(tenantID, in, tenantID, models.ActorTenant)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenant)
}

type tenantPasswordPayload struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// UpdateTenantPassword changes the signed-in tenant's password after
// verifying the current one.
func (ctrl *TenantController) UpdateTenantPassword(c *gin.Context) {
	var payload tenantPasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ctrl.TenantSvc.UpdatePassword(middleware.ActorID(c), payload.CurrentPassword, payload.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"updated": true})
}
