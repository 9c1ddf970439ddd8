package controller

import (
	"time"

	"kazrockets/repository"
	"kazrockets/service"
	"kazrockets/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventController struct {
	eventService *service.EventService
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		eventService: service.NewEventService(db),
	}
}

func setupEventController(db *gorm.DB) []RouteInfo {
	e := NewEventController(db)
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getEventsHandler(), Authenticated: true, CacheFor: time.Minute},
		{Method: "POST", Path: "", HandlerFunc: e.createEventHandler(), Authenticated: true, RequiredRoles: []repository.Role{repository.RoleOrganizer}},
		{Method: "GET", Path: "/:event_id", HandlerFunc: e.getEventHandler(), Authenticated: true},
		{Method: "PUT", Path: "/:event_id", HandlerFunc: e.updateEventHandler(), Authenticated: true, RequiredRoles: []repository.Role{repository.RoleOrganizer}},
		{Method: "DELETE", Path: "/:event_id", HandlerFunc: e.deleteEventHandler(), Authenticated: true, RequiredRoles: []repository.Role{repository.RoleOrganizer}},
		{Method: "POST", Path: "/:event_id/winner", HandlerFunc: e.declareWinnerHandler(), Authenticated: true, RequiredRoles: []repository.Role{repository.RoleOrganizer}},
	}
	for i, route := range routes {
		routes[i].Path = "/events" + route.Path
	}
	return routes
}

// @id GetEvents
// @Description Fetches all events
// @Tags event
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {array} EventResponse
// @Security BearerAuth
// @Router /events [get]
func (e *EventController) getEventsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit, ok := getPagination(c)
		if !ok {
			return
		}
		events, err := e.eventService.GetEvents(skip, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(events, toEventResponse))
	}
}

// @id CreateEvent
// @Description Creates an event
// @Tags event
// @Accept json
// @Produce json
// @Param body body EventCreateRequest true "Event to create"
// @Success 201 {object} EventResponse
// @Security BearerAuth
// @Router /events [post]
func (e *EventController) createEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request EventCreateRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.CreateEvent(request.Title, request.StartDate, request.EndDate, getUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, toEventResponse(event))
	}
}

// @id GetEventById
// @Description Fetches an event by id
// @Tags event
// @Produce json
// @Param event_id path string true "Event Id"
// @Success 200 {object} EventResponse
// @Security BearerAuth
// @Router /events/{event_id} [get]
func (e *EventController) getEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getUUIDParam(c, "event_id")
		if !ok {
			return
		}
		event, err := e.eventService.GetEventById(eventId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @id UpdateEvent
// @Description Updates an event
// @Tags event
// @Accept json
// @Produce json
// @Param event_id path string true "Event Id"
// @Param body body EventUpdateRequest true "Fields to update"
// @Success 200 {object} EventResponse
// @Security BearerAuth
// @Router /events/{event_id} [put]
func (e *EventController) updateEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getUUIDParam(c, "event_id")
		if !ok {
			return
		}
		var request EventUpdateRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.UpdateEvent(eventId, service.EventUpdate{
			Title:     request.Title,
			StartDate: request.StartDate,
			EndDate:   request.EndDate,
		}, getUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @id DeleteEvent
// @Description Soft deletes an event
// @Tags event
// @Produce json
// @Param event_id path string true "Event Id"
// @Success 200 {object} MessageResponse
// @Security BearerAuth
// @Router /events/{event_id} [delete]
func (e *EventController) deleteEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getUUIDParam(c, "event_id")
		if !ok {
			return
		}
		if err := e.eventService.DeleteEvent(eventId, getUser(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, MessageResponse{Message: "Event deleted successfully"})
	}
}

// @id DeclareWinner
// @Description Declares the winning team of an event
// @Tags event
// @Accept json
// @Produce json
// @Param event_id path string true "Event Id"
// @Param body body DeclareWinnerRequest true "Winning team"
// @Success 200 {object} EventResponse
// @Security BearerAuth
// @Router /events/{event_id}/winner [post]
func (e *EventController) declareWinnerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := getUUIDParam(c, "event_id")
		if !ok {
			return
		}
		var request DeclareWinnerRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.DeclareWinner(eventId, request.TeamId, getUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

type EventCreateRequest struct {
	Title     string    `json:"title" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

type EventUpdateRequest struct {
	Title     *string    `json:"title"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type DeclareWinnerRequest struct {
	TeamId uuid.UUID `json:"team_id" binding:"required"`
}

type EventResponse struct {
	Id           uuid.UUID  `json:"id" binding:"required"`
	Title        string     `json:"title" binding:"required"`
	StartDate    time.Time  `json:"start_date" binding:"required"`
	EndDate      time.Time  `json:"end_date" binding:"required"`
	WinnerTeamId *uuid.UUID `json:"winner_team_id"`
	CreatedAt    time.Time  `json:"created_at" binding:"required"`
}

func toEventResponse(event *repository.Event) *EventResponse {
	return &EventResponse{
		Id:           event.Id,
		Title:        event.Title,
		StartDate:    event.StartDate,
		EndDate:      event.EndDate,
		WinnerTeamId: event.WinnerTeamId,
		CreatedAt:    event.CreatedAt,
	}
}
