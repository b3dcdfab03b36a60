package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"planora/internal/application/command"
	"planora/internal/application/query"
	"planora/internal/application/services"
	"planora/pkg/middleware"
	"planora/pkg/response"
)

// BookingController handles HTTP requests for booking operations
type BookingController struct {
	service *services.BookingService
}

// NewBookingController creates a new booking controller
func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{
		service: service,
	}
}

// ConfirmBooking handles POST /bookings/{id}/confirm. Responds with the
// provider's refreshed booking list.
func (c *BookingController) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		response.SendBadRequest(w, r, "Booking ID is required")
		return
	}

	bookings, err := c.service.ConfirmBooking(r.Context(), command.ConfirmBooking{BookingID: bookingID})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, bookings)
}

// RejectBooking handles POST /bookings/{id}/reject. Responds with the
// provider's refreshed booking list.
func (c *BookingController) RejectBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		response.SendBadRequest(w, r, "Booking ID is required")
		return
	}

	bookings, err := c.service.RejectBooking(r.Context(), command.RejectBooking{BookingID: bookingID})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, bookings)
}

// ListClientBookings handles GET /clients/{id}/bookings
func (c *BookingController) ListClientBookings(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")
	if clientID == "" {
		response.SendBadRequest(w, r, "Client ID is required")
		return
	}

	bookings, err := c.service.ListBookingsByClient(r.Context(), query.ListBookingsByClient{ClientID: clientID})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, bookings)
}

// ListClientSchedule handles GET /clients/{id}/schedule
func (c *BookingController) ListClientSchedule(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")
	if clientID == "" {
		response.SendBadRequest(w, r, "Client ID is required")
		return
	}

	schedule, err := c.service.ListClientSchedule(r.Context(), query.ListClientSchedule{ClientID: clientID})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, schedule)
}
