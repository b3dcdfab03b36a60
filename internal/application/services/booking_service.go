package services

import (
	"context"

	"planora/internal/application/command"
	"planora/internal/application/query"
	"planora/internal/domain/model"
)

// BookingService orchestrates booking operations
type BookingService struct {
	// Command handlers (using Unit of Work)
	confirmBookingHandler *command.ConfirmBookingWithUoWHandler
	rejectBookingHandler  *command.RejectBookingWithUoWHandler

	// Query handlers
	listByClientHandler  *query.ListBookingsByClientHandler
	clientScheduleHandler *query.ListClientScheduleHandler
}

func NewBookingService(
	confirmBookingHandler *command.ConfirmBookingWithUoWHandler,
	rejectBookingHandler *command.RejectBookingWithUoWHandler,
	listByClientHandler *query.ListBookingsByClientHandler,
	clientScheduleHandler *query.ListClientScheduleHandler,
) *BookingService {
	return &BookingService{
		confirmBookingHandler: confirmBookingHandler,
		rejectBookingHandler:  rejectBookingHandler,
		listByClientHandler:   listByClientHandler,
		clientScheduleHandler: clientScheduleHandler,
	}
}

// Command operations. Both state transitions answer with the acting
// provider's refreshed booking list so the caller sees the effect at once.
func (s *BookingService) ConfirmBooking(ctx context.Context, cmd command.ConfirmBooking) ([]*query.EnrichedBookingView, error) {
	booking, err := s.confirmBookingHandler.Handle(ctx, &cmd)
	if err != nil {
		return nil, err
	}
	return s.listByClientHandler.Handle(ctx, &query.ListBookingsByClient{ClientID: booking.ClientID})
}

func (s *BookingService) RejectBooking(ctx context.Context, cmd command.RejectBooking) ([]*query.EnrichedBookingView, error) {
	booking, err := s.rejectBookingHandler.Handle(ctx, &cmd)
	if err != nil {
		return nil, err
	}
	return s.listByClientHandler.Handle(ctx, &query.ListBookingsByClient{ClientID: booking.ClientID})
}

// Query operations
func (s *BookingService) ListBookingsByClient(ctx context.Context, q query.ListBookingsByClient) ([]*query.EnrichedBookingView, error) {
	return s.listByClientHandler.Handle(ctx, &q)
}

func (s *BookingService) ListClientSchedule(ctx context.Context, q query.ListClientSchedule) ([]*model.BookingView, error) {
	return s.clientScheduleHandler.Handle(ctx, &q)
}
