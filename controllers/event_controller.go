package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hive-backend/middleware"
	"hive-backend/models"
	"hive-backend/services"
	"hive-backend/utils"
)

type EventController struct {
	EventSvc *services.EventService
}

func NewEventController(svc *services.EventService) *EventController {
	return &EventController{EventSvc: svc}
}

type eventPayload struct {
	EventName        string `json:"event_name" binding:"required"`
	EventDescription string `json:"event_description"`
	Start            string `json:"start" binding:"required"`
	End              string `json:"end"`
	Status           string `json:"status"`
}

func (p eventPayload) toModel(c *gin.Context) (models.Event, bool) {
	start, err := parseDate(p.Start)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start format")
		return models.Event{}, false
	}
	event := models.Event{
		EventName:        p.EventName,
		EventDescription: p.EventDescription,
		Start:            start,
		Status:           p.Status,
	}
	if p.End != "" {
		end, err := parseDate(p.End)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid end format")
			return models.Event{}, false
		}
		event.End = end
	}
	return event, true
}

func (ctrl *EventController) AddEvent(c *gin.Context) {
	var payload eventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	event, ok := payload.toModel(c)
	if !ok {
		return
	}
	event.EstablishmentID = middleware.EstablishmentID(c)

	created, err := ctrl.EventSvc.Add(event, middleware.ActorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (ctrl *EventController) Events(c *gin.Context) {
	events, err := ctrl.EventSvc.List(middleware.EstablishmentID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, events)
}

func (ctrl *EventController) UpdateEvent(c *gin.Context) {
	eventID, ok := parseUintParam(c, "eventId")
	if !ok {
		return
	}
	var payload eventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	patch, ok := payload.toModel(c)
	if !ok {
		return
	}

	event, err := ctrl.EventSvc.Update(eventID, patch, middleware.ActorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, event)
}

func (ctrl *EventController) DeleteEvent(c *gin.Context) {
	eventID, ok := parseUintParam(c, "eventId")
	if !ok {
		return
	}
	if err := ctrl.EventSvc.Delete(eventID, middleware.ActorID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": eventID})
}
