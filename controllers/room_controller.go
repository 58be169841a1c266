package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hive-backend/middleware"
	"hive-backend/models"
	"hive-backend/services"
	"hive-backend/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

type roomPayload struct {
	RoomNumber        string `json:"roomNumber" binding:"required"`
	RoomType          string `json:"roomType"`
	FloorNumber       int    `json:"floorNumber"`
	RoomTotalSlot     int    `json:"roomTotalSlot" binding:"required"`
	RoomRemainingSlot int    `json:"roomRemainingSlot"`
}

// AddRoom registers a unit under the admin's establishment. New rooms
// start with every slot free.
func (ctrl *RoomController) AddRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	room, err := ctrl.RoomSvc.Create(models.Room{
		EstablishmentID:   middleware.EstablishmentID(c),
		RoomNumber:        payload.RoomNumber,
		RoomType:          payload.RoomType,
		FloorNumber:       payload.FloorNumber,
		RoomTotalSlot:     payload.RoomTotalSlot,
		RoomRemainingSlot: payload.RoomTotalSlot,
	}, middleware.ActorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	roomID, ok := parseUintParam(c, "roomId")
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetByID(roomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) EstablishmentRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.ListByEstablishment(middleware.EstablishmentID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// AvailableRooms lists units that still have a free slot, used when
// assigning a new tenant.
func (ctrl *RoomController) AvailableRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.AvailableRooms(middleware.EstablishmentID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	roomID, ok := parseUintParam(c, "roomId")
	if !ok {
		return
	}
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	room, err := ctrl.RoomSvc.Update(roomID, models.Room{
		RoomNumber:        payload.RoomNumber,
		RoomType:          payload.RoomType,
		FloorNumber:       payload.FloorNumber,
		RoomTotalSlot:     payload.RoomTotalSlot,
		RoomRemainingSlot: payload.RoomRemainingSlot,
	}, middleware.ActorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	roomID, ok := parseUintParam(c, "roomId")
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.Delete(roomID, middleware.ActorID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": roomID})
}
