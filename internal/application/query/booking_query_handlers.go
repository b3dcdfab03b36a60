package query

import (
	"context"
	"fmt"
	"time"

	"planora/internal/application/images"
	"planora/internal/domain/model"
	"planora/internal/domain/repository"
	"planora/pkg/errors"
)

// ListBookingsByClient query
type ListBookingsByClient struct {
	ClientID string
}

// ListClientSchedule query. Returns only confirmed bookings whose event is
// still upcoming, the provider's working calendar.
type ListClientSchedule struct {
	ClientID string
}

// EnrichedBookingView is a booking with its event joined and the event's
// gallery resolved
type EnrichedBookingView struct {
	*model.BookingView
	EventImages []images.Image `json:"event_images,omitempty"`
}

// ListBookingsByClientHandler handles the provider booking dashboard query
type ListBookingsByClientHandler struct {
	bookingRepo repository.BookingRepository
	enricher    *images.Enricher
}

// NewListBookingsByClientHandler creates a new client bookings handler
func NewListBookingsByClientHandler(
	bookingRepo repository.BookingRepository,
	enricher *images.Enricher,
) *ListBookingsByClientHandler {
	return &ListBookingsByClientHandler{
		bookingRepo: bookingRepo,
		enricher:    enricher,
	}
}

// Handle lists every booking addressed to the provider with its event joined
// in. Bookings whose event has been deleted are kept with an empty event
// slot; the provider still sees the request happened.
func (h *ListBookingsByClientHandler) Handle(ctx context.Context, q *ListBookingsByClient) ([]*EnrichedBookingView, error) {
	if q.ClientID == "" {
		return nil, errors.NewValidationError("client_id is required")
	}

	views, err := h.bookingRepo.FindViewsByClientID(ctx, q.ClientID)
	if err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to list bookings: %v", err))
	}

	enriched := make([]*EnrichedBookingView, 0, len(views))
	for _, view := range views {
		ev := &EnrichedBookingView{BookingView: view}
		if view.Event != nil {
			ev.EventImages = h.enricher.ResolveSuccessful(ctx, view.Event.Images)
		}
		enriched = append(enriched, ev)
	}
	return enriched, nil
}

// ListClientScheduleHandler handles the provider's confirmed-upcoming calendar
type ListClientScheduleHandler struct {
	bookingRepo repository.BookingRepository
	now         func() time.Time
}

// NewListClientScheduleHandler creates a new client schedule handler
func NewListClientScheduleHandler(bookingRepo repository.BookingRepository) *ListClientScheduleHandler {
	return &ListClientScheduleHandler{
		bookingRepo: bookingRepo,
		now:         time.Now,
	}
}

// Handle returns the confirmed bookings whose event still has a date ahead
func (h *ListClientScheduleHandler) Handle(ctx context.Context, q *ListClientSchedule) ([]*model.BookingView, error) {
	if q.ClientID == "" {
		return nil, errors.NewValidationError("client_id is required")
	}

	views, err := h.bookingRepo.FindViewsByClientID(ctx, q.ClientID)
	if err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to list bookings: %v", err))
	}

	now := h.now()
	var schedule []*model.BookingView
	for _, view := range views {
		if view.Status != model.BookingStatusConfirmed {
			continue
		}
		if view.Event == nil || !view.Event.IsUpcoming(now) {
			continue
		}
		schedule = append(schedule, view)
	}
	return schedule, nil
}
