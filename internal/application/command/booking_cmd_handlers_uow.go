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

// ConfirmBookingWithUoWHandler handles confirm booking commands with Unit of Work
type ConfirmBookingWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
	locks      *EventLocks
}

// NewConfirmBookingWithUoWHandler creates a new confirm booking handler with UoW
func NewConfirmBookingWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
	locks *EventLocks,
) *ConfirmBookingWithUoWHandler {
	return &ConfirmBookingWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
		locks:      locks,
	}
}

// Handle confirms one booking and recomputes the event status from the full
// booking set. Confirmation of the last pending booking flips the event to
// Confirmed; any other pending booking keeps it Booked.
func (h *ConfirmBookingWithUoWHandler) Handle(ctx context.Context, cmd *ConfirmBooking) (*model.Booking, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.BookingID == "" {
		return nil, errors.NewValidationError("booking_id is required")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	bookingRepo := uow.BookingRepository()
	booking, err := bookingRepo.GetByID(ctx, cmd.BookingID)
	if err != nil {
		uow.Rollback(ctx)
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("booking")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load booking: %v", err))
	}

	h.locks.Lock(booking.EventID)
	defer h.locks.Unlock(booking.EventID)

	now := time.Now().UTC()
	booking.Status = model.BookingStatusConfirmed
	booking.UpdatedAt = now
	if err := bookingRepo.Update(ctx, booking); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to update booking: %v", err))
	}

	if err := h.recomputeEventStatus(ctx, uow, booking.EventID, now); err != nil {
		uow.Rollback(ctx)
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	h.eventBus.Publish(ctx, &event.BookingConfirmed{
		BookingID: booking.ID,
		EventID:   booking.EventID,
		ClientID:  booking.ClientID,
		Timestamp: now,
	})

	return booking, nil
}

// The status projection is recomputed from the full booking set under the
// event lock. The event may legitimately be gone when its bookings outlive a
// deleted event document; that is not an error for the booking write.
func (h *ConfirmBookingWithUoWHandler) recomputeEventStatus(
	ctx context.Context,
	uow repository.UnitOfWork,
	eventID string,
	now time.Time,
) error {
	eventRepo := uow.EventRepository()
	evt, err := eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return errors.NewStoreError(fmt.Sprintf("failed to load event: %v", err))
	}

	bookings, err := uow.BookingRepository().FindByEventID(ctx, eventID)
	if err != nil {
		return errors.NewStoreError(fmt.Sprintf("failed to load bookings: %v", err))
	}

	status := model.DeriveEventStatus(bookings)
	if evt.Status == status {
		return nil
	}

	evt.Status = status
	evt.UpdatedAt = now
	if err := eventRepo.Update(ctx, evt); err != nil {
		return errors.NewStoreError(fmt.Sprintf("failed to update event: %v", err))
	}
	return nil
}

// RejectBookingWithUoWHandler handles reject booking commands with Unit of Work
type RejectBookingWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
	eventBus   bus.EventBus
	locks      *EventLocks
}

// NewRejectBookingWithUoWHandler creates a new reject booking handler with UoW
func NewRejectBookingWithUoWHandler(
	uowFactory repository.UnitOfWorkFactory,
	eventBus bus.EventBus,
	locks *EventLocks,
) *RejectBookingWithUoWHandler {
	return &RejectBookingWithUoWHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
		locks:      locks,
	}
}

// Handle rejects one booking. A single rejection flips the whole event to
// Rejected, unpublishes it and records who declined; the rejection record is
// deduplicated by item and type.
func (h *RejectBookingWithUoWHandler) Handle(ctx context.Context, cmd *RejectBooking) (*model.Booking, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.BookingID == "" {
		return nil, errors.NewValidationError("booking_id is required")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	bookingRepo := uow.BookingRepository()
	booking, err := bookingRepo.GetByID(ctx, cmd.BookingID)
	if err != nil {
		uow.Rollback(ctx)
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("booking")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load booking: %v", err))
	}

	h.locks.Lock(booking.EventID)
	defer h.locks.Unlock(booking.EventID)

	now := time.Now().UTC()
	booking.Status = model.BookingStatusRejected
	booking.UpdatedAt = now
	if err := bookingRepo.Update(ctx, booking); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to update booking: %v", err))
	}

	itemType, err := h.classifyItem(ctx, uow, booking.ItemID)
	if err != nil {
		uow.Rollback(ctx)
		return nil, err
	}

	eventRepo := uow.EventRepository()
	evt, err := eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		uow.Rollback(ctx)
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("event")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load event: %v", err))
	}

	evt.AddRejection(booking.ItemID, itemType)
	evt.Status = model.EventStatusRejected
	evt.IsPublished = false
	evt.UpdatedAt = now
	if err := eventRepo.Update(ctx, evt); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to update event: %v", err))
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	h.eventBus.Publish(ctx, &event.BookingRejected{
		BookingID: booking.ID,
		EventID:   booking.EventID,
		ClientID:  booking.ClientID,
		ItemID:    booking.ItemID,
		ItemType:  itemType,
		Timestamp: now,
	})

	return booking, nil
}

// classifyItem resolves the item's category name through its service type.
// Items only carry the type id, so classification is a two-step lookup.
func (h *RejectBookingWithUoWHandler) classifyItem(ctx context.Context, uow repository.UnitOfWork, itemID string) (string, error) {
	item, err := uow.ItemRepository().GetByID(ctx, itemID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return "", errors.NewNotFoundError("item")
		}
		return "", errors.NewStoreError(fmt.Sprintf("failed to load item: %v", err))
	}

	serviceType, err := uow.ServiceTypeRepository().GetByID(ctx, item.TypeID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return "", errors.NewNotFoundError("service type")
		}
		return "", errors.NewStoreError(fmt.Sprintf("failed to load service type: %v", err))
	}

	return serviceType.Name, nil
}
