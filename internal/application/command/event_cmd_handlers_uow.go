package command

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"planora/internal/domain/event"
	"planora/internal/domain/model"
	"planora/internal/domain/repository"
	"planora/internal/infrastructure/bus"
	"planora/pkg/errors"
)

// CreateEventWithUoWHandler handles create event commands with Unit of Work
type CreateEventWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
}

// NewCreateEventWithUoWHandler creates a new create event handler with UoW
func NewCreateEventWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *CreateEventWithUoWHandler {
	return &CreateEventWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the create event command. The event write is the primary
// write; booking creation is requested on the bus and happens in the
// background, so the caller never waits on the secondary writes.
func (h *CreateEventWithUoWHandler) Handle(ctx context.Context, cmd *CreateEvent) (*model.Event, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.UserID == "" {
		return nil, errors.NewValidationError("user_id is required")
	}
	if cmd.Name == "" {
		return nil, errors.NewValidationError("name is required")
	}
	if err := validateSelections(cmd.Services); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	evt := &model.Event{
		UserID:      cmd.UserID,
		Name:        cmd.Name,
		Description: cmd.Description,
		Images:      cmd.Images,
		TicketPrice: cmd.TicketPrice,
		Status:      model.EventStatusBooked,
		Dates:       cmd.Dates,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applySelections(evt, cmd.Services)

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	if err := uow.EventRepository().Save(ctx, evt); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to save event: %v", err))
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	// Booking writes outlive the request, so they must not die with its context.
	busCtx := context.WithoutCancel(ctx)
	h.eventBus.Publish(busCtx, &event.EventCreated{
		EventID:   evt.ID,
		UserID:    evt.UserID,
		Timestamp: now,
	})
	for _, slot := range cmd.Services.Slots() {
		if !slot.Selection.Bookable() {
			continue
		}
		h.eventBus.Publish(busCtx, &event.BookingRequested{
			EventID:   evt.ID,
			UserID:    evt.UserID,
			ClientID:  slot.Selection.ClientID,
			ItemID:    slot.Selection.ItemID,
			Timestamp: now,
		})
	}

	return evt, nil
}

// EditEventWithUoWHandler handles edit event commands with Unit of Work
type EditEventWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
	locks      *EventLocks
}

// NewEditEventWithUoWHandler creates a new edit event handler with UoW
func NewEditEventWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
	locks *EventLocks,
) *EditEventWithUoWHandler {
	return &EditEventWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
		locks:      locks,
	}
}

// Handle processes the edit event command. The full booking set is replaced:
// no stale booking survives an edit, and status, publication and rejections
// are reset.
func (h *EditEventWithUoWHandler) Handle(ctx context.Context, cmd *EditEvent) (*model.Event, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.EventID == "" {
		return nil, errors.NewValidationError("event_id is required")
	}
	if err := validateSelections(cmd.Services); err != nil {
		return nil, err
	}

	h.locks.Lock(cmd.EventID)
	defer h.locks.Unlock(cmd.EventID)

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	eventRepo := uow.EventRepository()
	evt, err := eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		uow.Rollback(ctx)
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("event")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load event: %v", err))
	}

	now := time.Now().UTC()
	if cmd.Name != "" {
		evt.Name = cmd.Name
	}
	evt.Description = cmd.Description
	if len(cmd.Images) > 0 {
		evt.Images = cmd.Images
	}
	evt.TicketPrice = cmd.TicketPrice
	evt.Dates = cmd.Dates

	// A selection without an item clears the slot. Update replaces the whole
	// document, so cleared slots disappear instead of being null-assigned.
	evt.VenueID = ""
	evt.CateringID = ""
	evt.PhotographID = ""
	evt.DecorationID = ""
	applySelections(evt, cmd.Services)

	evt.RejectedBy = nil
	evt.IsPublished = false
	evt.Status = model.EventStatusBooked
	evt.UpdatedAt = now

	if err := eventRepo.Update(ctx, evt); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to update event: %v", err))
	}

	bookingRepo := uow.BookingRepository()
	if err := bookingRepo.DeleteByEventID(ctx, evt.ID); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to delete bookings: %v", err))
	}

	for _, slot := range cmd.Services.Slots() {
		if !slot.Selection.Bookable() {
			continue
		}
		booking := &model.Booking{
			UserID:    evt.UserID,
			ClientID:  slot.Selection.ClientID,
			ItemID:    slot.Selection.ItemID,
			EventID:   evt.ID,
			Status:    model.BookingStatusBooked,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := bookingRepo.Save(ctx, booking); err != nil {
			uow.Rollback(ctx)
			return nil, errors.NewStoreError(fmt.Sprintf("failed to save booking: %v", err))
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	h.eventBus.Publish(ctx, &event.EventEdited{EventID: evt.ID, Timestamp: now})

	return evt, nil
}

// PublishEventWithUoWHandler handles publish event commands with Unit of Work
type PublishEventWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
}

// NewPublishEventWithUoWHandler creates a new publish event handler with UoW
func NewPublishEventWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
) *PublishEventWithUoWHandler {
	return &PublishEventWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the publish event command. Publication does not re-check
// that every booking is confirmed; the owner's publish action is taken at
// face value. Idempotent.
func (h *PublishEventWithUoWHandler) Handle(ctx context.Context, cmd *PublishEvent) (*model.Event, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.EventID == "" {
		return nil, errors.NewValidationError("event_id is required")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	eventRepo := uow.EventRepository()
	evt, err := eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		uow.Rollback(ctx)
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("event")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load event: %v", err))
	}

	now := time.Now().UTC()
	evt.IsPublished = true
	evt.Status = model.EventStatusConfirmed
	evt.UpdatedAt = now

	if err := eventRepo.Update(ctx, evt); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to update event: %v", err))
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	h.eventBus.Publish(ctx, &event.EventPublished{EventID: evt.ID, Timestamp: now})

	return evt, nil
}

// CancelEventWithUoWHandler handles cancel event commands with Unit of Work
type CancelEventWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
	locks      *EventLocks
}

// NewCancelEventWithUoWHandler creates a new cancel event handler with UoW
func NewCancelEventWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
	locks *EventLocks,
) *CancelEventWithUoWHandler {
	return &CancelEventWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
		locks:      locks,
	}
}

// Handle processes the cancel event command. Cancellation is terminal and
// cascades to every booking of the event.
func (h *CancelEventWithUoWHandler) Handle(ctx context.Context, cmd *CancelEvent) (*model.Event, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.EventID == "" {
		return nil, errors.NewValidationError("event_id is required")
	}

	h.locks.Lock(cmd.EventID)
	defer h.locks.Unlock(cmd.EventID)

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	eventRepo := uow.EventRepository()
	evt, err := eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		uow.Rollback(ctx)
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("event")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load event: %v", err))
	}

	now := time.Now().UTC()
	evt.IsPublished = false
	evt.Status = model.EventStatusCanceled
	evt.UpdatedAt = now

	if err := eventRepo.Update(ctx, evt); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to update event: %v", err))
	}

	if err := uow.BookingRepository().UpdateStatusByEventID(ctx, evt.ID, model.BookingStatusCanceled); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to cancel bookings: %v", err))
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	h.eventBus.Publish(ctx, &event.EventCanceled{EventID: evt.ID, Timestamp: now})

	return evt, nil
}

// DeleteEventFieldWithUoWHandler handles the administrative field removal command
type DeleteEventFieldWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
}

// NewDeleteEventFieldWithUoWHandler creates a new delete event field handler
func NewDeleteEventFieldWithUoWHandler(uowFactory repository.UnitOfWorkFactory) *DeleteEventFieldWithUoWHandler {
	return &DeleteEventFieldWithUoWHandler{uowFactory: uowFactory}
}

// Handle removes a single named field from the event document. The field
// name is not validated; this is an operator escape hatch.
func (h *DeleteEventFieldWithUoWHandler) Handle(ctx context.Context, cmd *DeleteEventField) (*model.Event, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.EventID == "" {
		return nil, errors.NewValidationError("event_id is required")
	}
	if cmd.Field == "" {
		return nil, errors.NewValidationError("field is required")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	eventRepo := uow.EventRepository()
	if err := eventRepo.UnsetField(ctx, cmd.EventID, cmd.Field); err != nil {
		uow.Rollback(ctx)
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("event")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to unset field: %v", err))
	}

	evt, err := eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to reload event: %v", err))
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return evt, nil
}

func validateSelections(selections ServiceSelections) error {
	for _, slot := range selections.Slots() {
		if slot.Selection == nil {
			continue
		}
		if slot.Selection.ItemID == "" && slot.Selection.ClientID != "" {
			return errors.NewValidationError(fmt.Sprintf("%s selection has a client but no item", slot.Slot))
		}
	}
	return nil
}

func applySelections(evt *model.Event, selections ServiceSelections) {
	if selections.Venue != nil {
		evt.VenueID = selections.Venue.ItemID
	}
	if selections.Catering != nil {
		evt.CateringID = selections.Catering.ItemID
	}
	if selections.Photograph != nil {
		evt.PhotographID = selections.Photograph.ItemID
	}
	if selections.Decoration != nil {
		evt.DecorationID = selections.Decoration.ItemID
	}
}
