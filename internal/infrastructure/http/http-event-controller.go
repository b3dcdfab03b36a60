package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"planora/internal/application/command"
	"planora/internal/application/query"
	"planora/internal/application/services"
	"planora/pkg/middleware"
	"planora/pkg/response"
)

// EventController handles HTTP requests for event operations
type EventController struct {
	service *services.EventService
}

// NewEventController creates a new event controller
func NewEventController(service *services.EventService) *EventController {
	return &EventController{
		service: service,
	}
}

// CreateEvent handles POST /events
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateEvent
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}

	// The authenticated account owns the event regardless of the payload.
	if userID := middleware.GetUserID(r.Context()); userID != "" {
		cmd.UserID = userID
	}

	event, err := c.service.CreateEvent(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendCreated(w, r, event)
}

// EditEvent handles PUT /events/{id}
func (c *EventController) EditEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		response.SendBadRequest(w, r, "Event ID is required")
		return
	}

	var cmd command.EditEvent
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}
	cmd.EventID = eventID

	event, err := c.service.EditEvent(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, event)
}

// PublishEvent handles POST /events/{id}/publish. Responds with the owner's
// refreshed upcoming/past view.
func (c *EventController) PublishEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		response.SendBadRequest(w, r, "Event ID is required")
		return
	}

	events, err := c.service.PublishEvent(r.Context(), command.PublishEvent{EventID: eventID})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, events)
}

// CancelEvent handles POST /events/{id}/cancel. Responds with the owner's
// refreshed upcoming/past view.
func (c *EventController) CancelEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		response.SendBadRequest(w, r, "Event ID is required")
		return
	}

	events, err := c.service.CancelEvent(r.Context(), command.CancelEvent{EventID: eventID})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, events)
}

// DeleteEventField handles DELETE /events/{id}/fields
func (c *EventController) DeleteEventField(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		response.SendBadRequest(w, r, "Event ID is required")
		return
	}

	var cmd command.DeleteEventField
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}
	cmd.EventID = eventID

	event, err := c.service.DeleteEventField(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, event)
}

// ListPublishedEvents handles GET /events
func (c *EventController) ListPublishedEvents(w http.ResponseWriter, r *http.Request) {
	published := true
	events, err := c.service.ListEvents(r.Context(), query.ListEvents{Published: &published})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, events)
}

// ListMyEvents handles GET /events/mine
func (c *EventController) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.SendUnauthorized(w, r, "Authentication required")
		return
	}

	events, err := c.service.ListEvents(r.Context(), query.ListEvents{UserID: userID})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, events)
}

// GetEventDetail handles GET /events/{id}
func (c *EventController) GetEventDetail(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		response.SendBadRequest(w, r, "Event ID is required")
		return
	}

	detail, err := c.service.GetEventDetail(r.Context(), query.GetEventDetail{EventID: eventID})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, detail)
}
