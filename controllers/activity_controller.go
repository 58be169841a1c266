package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hive-backend/middleware"
	"hive-backend/models"
	"hive-backend/services"
	"hive-backend/utils"
)

const activityPageSize = 10

type ActivityController struct {
	ActivitySvc *services.ActivityService
}

func NewActivityController(svc *services.ActivityService) *ActivityController {
	return &ActivityController{ActivitySvc: svc}
}

func pageParam(c *gin.Context) int {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return page
}

// AdminActivity pages through the signed-in admin's recorded actions.
func (ctrl *ActivityController) AdminActivity(c *gin.Context) {
	page, err := ctrl.ActivitySvc.Page(middleware.ActorID(c), models.ActorAdmin, pageParam(c), activityPageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, page)
}

// TenantActivity pages through the signed-in tenant's recorded actions.
func (ctrl *ActivityController) TenantActivity(c *gin.Context) {
	page, err := ctrl.ActivitySvc.Page(middleware.ActorID(c), models.ActorTenant, pageParam(c), activityPageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, page)
}
