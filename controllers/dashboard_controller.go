package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hive-backend/middleware"
	"hive-backend/services"
	"hive-backend/utils"
)

// DashboardController aggregates the landing-page numbers for both
// portals so the frontend does one round trip instead of five.
type DashboardController struct {
	RoomSvc    *services.RoomService
	TenantSvc  *services.TenantService
	RequestSvc *services.RequestService
	UtilitySvc *services.UtilityService
	FixSvc     *services.FixService
	NoticeSvc  *services.NoticeService
}

func NewDashboardController(rooms *services.RoomService, tenants *services.TenantService,
	requests *services.RequestService, utilities *services.UtilityService,
	fixes *services.FixService, notices *services.NoticeService) *DashboardController {
	return &DashboardController{
		RoomSvc:    rooms,
		TenantSvc:  tenants,
		RequestSvc: requests,
		UtilitySvc: utilities,
		FixSvc:     fixes,
		NoticeSvc:  notices,
	}
}

// AdminDashboard returns the occupancy, request and maintenance summary
// for the admin landing page.
func (ctrl *DashboardController) AdminDashboard(c *gin.Context) {
	establishmentID := middleware.EstablishmentID(c)

	totalUnits, err := ctrl.RoomSvc.TotalUnits(establishmentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	occupied, err := ctrl.RoomSvc.OccupiedUnits(establishmentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	available, err := ctrl.RoomSvc.AvailableRooms(establishmentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	tenants, err := ctrl.TenantSvc.ListByEstablishment(establishmentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	_, requestCounts, err := ctrl.RequestSvc.ListByEstablishment(establishmentID, services.RequestFilter{})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	pendingFixes, err := ctrl.FixSvc.Pending(establishmentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	noticeCount, err := ctrl.NoticeSvc.Count(establishmentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"totalSlots":     totalUnits,
		"occupiedRooms":  len(occupied),
		"availableRooms": len(available),
		"tenantCount":    len(tenants),
		"requestCounts":  requestCounts,
		"pendingFixes":   len(pendingFixes),
		"noticeCount":    noticeCount,
	})
}

// TenantDashboard returns the tenant landing page: this month's allocated
// charges, their request counts and the notice board.
func (ctrl *DashboardController) TenantDashboard(c *gin.Context) {
	tenantID := middleware.ActorID(c)

	tenant, err := ctrl.TenantSvc.GetByID(tenantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	breakdown, err := ctrl.UtilitySvc.CurrentBreakdown(tenant.RoomID, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	_, requestCounts, err := ctrl.RequestSvc.ListByTenant(tenantID, services.RequestFilter{})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	notices, err := ctrl.NoticeSvc.List(tenant.EstablishmentID, "")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	fixes, err := ctrl.FixSvc.ListByTenant(tenantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"tenant":        tenant,
		"charges":       breakdown,
		"requestCounts": requestCounts,
		"notices":       notices,
		"fixCounts":     services.CountFixes(fixes),
	})
}
