package services

import (
	"context"

	"planora/internal/application/command"
	"planora/internal/application/query"
	"planora/internal/domain/model"
)

// EventService orchestrates event operations
type EventService struct {
	// Command handlers (using Unit of Work)
	createEventHandler      *command.CreateEventWithUoWHandler
	editEventHandler        *command.EditEventWithUoWHandler
	publishEventHandler     *command.PublishEventWithUoWHandler
	cancelEventHandler      *command.CancelEventWithUoWHandler
	deleteEventFieldHandler *command.DeleteEventFieldWithUoWHandler

	// Query handlers
	listEventsHandler     *query.ListEventsHandler
	getEventDetailHandler *query.GetEventDetailHandler
}

func NewEventService(
	createEventHandler *command.CreateEventWithUoWHandler,
	editEventHandler *command.EditEventWithUoWHandler,
	publishEventHandler *command.PublishEventWithUoWHandler,
	cancelEventHandler *command.CancelEventWithUoWHandler,
	deleteEventFieldHandler *command.DeleteEventFieldWithUoWHandler,
	listEventsHandler *query.ListEventsHandler,
	getEventDetailHandler *query.GetEventDetailHandler,
) *EventService {
	return &EventService{
		createEventHandler:      createEventHandler,
		editEventHandler:        editEventHandler,
		publishEventHandler:     publishEventHandler,
		cancelEventHandler:      cancelEventHandler,
		deleteEventFieldHandler: deleteEventFieldHandler,
		listEventsHandler:       listEventsHandler,
		getEventDetailHandler:   getEventDetailHandler,
	}
}

// Command operations
func (s *EventService) CreateEvent(ctx context.Context, cmd command.CreateEvent) (*model.Event, error) {
	return s.createEventHandler.Handle(ctx, &cmd)
}

func (s *EventService) EditEvent(ctx context.Context, cmd command.EditEvent) (*model.Event, error) {
	return s.editEventHandler.Handle(ctx, &cmd)
}

// PublishEvent flips the event live and answers with the owner's refreshed
// upcoming/past view.
func (s *EventService) PublishEvent(ctx context.Context, cmd command.PublishEvent) (*query.EventsByTime, error) {
	evt, err := s.publishEventHandler.Handle(ctx, &cmd)
	if err != nil {
		return nil, err
	}
	return s.listEventsHandler.Handle(ctx, &query.ListEvents{UserID: evt.UserID})
}

// CancelEvent withdraws the event and answers with the owner's refreshed
// upcoming/past view.
func (s *EventService) CancelEvent(ctx context.Context, cmd command.CancelEvent) (*query.EventsByTime, error) {
	evt, err := s.cancelEventHandler.Handle(ctx, &cmd)
	if err != nil {
		return nil, err
	}
	return s.listEventsHandler.Handle(ctx, &query.ListEvents{UserID: evt.UserID})
}

func (s *EventService) DeleteEventField(ctx context.Context, cmd command.DeleteEventField) (*model.Event, error) {
	return s.deleteEventFieldHandler.Handle(ctx, &cmd)
}

// Query operations
func (s *EventService) ListEvents(ctx context.Context, q query.ListEvents) (*query.EventsByTime, error) {
	return s.listEventsHandler.Handle(ctx, &q)
}

func (s *EventService) GetEventDetail(ctx context.Context, q query.GetEventDetail) (*query.EventDetail, error) {
	return s.getEventDetailHandler.Handle(ctx, &q)
}
