package command

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"planora/internal/domain/event"
	"planora/internal/domain/model"
	"planora/internal/domain/repository"
	"planora/internal/infrastructure/bus"
)

const (
	bookingWriteAttempts = 3
	bookingWriteBackoff  = 200 * time.Millisecond
)

// BookingWriter persists bookings requested during event creation. It runs
// off the event bus so event creation never waits on the booking writes; a
// write that still fails after retries is logged and dropped, leaving the
// event valid with fewer bookings than selections.
type BookingWriter struct {
	uowFactory repository.UnitOfWorkFactory
	logger     *zap.Logger
}

// NewBookingWriter creates a new booking writer
func NewBookingWriter(uowFactory repository.UnitOfWorkFactory, logger *zap.Logger) *BookingWriter {
	return &BookingWriter{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Register subscribes the writer to booking requests on the bus
func (w *BookingWriter) Register(eventBus bus.EventBus) error {
	return eventBus.Subscribe("BookingRequested", bus.EventHandlerFunc(w.Handle))
}

// Handle persists the booking for one request, retrying transient store
// failures before giving up.
func (w *BookingWriter) Handle(ctx context.Context, evt event.DomainEvent) error {
	req, ok := evt.(*event.BookingRequested)
	if !ok {
		return fmt.Errorf("unexpected event type %s", evt.EventType())
	}

	var lastErr error
	for attempt := 1; attempt <= bookingWriteAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(time.Duration(attempt-1) * bookingWriteBackoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = w.write(ctx, req)
		if lastErr == nil {
			return nil
		}

		w.logger.Warn("booking write failed",
			zap.String("event_id", req.EventID),
			zap.String("item_id", req.ItemID),
			zap.Int("attempt", attempt),
			zap.Error(lastErr),
		)
	}

	w.logger.Error("booking write dropped after retries",
		zap.String("event_id", req.EventID),
		zap.String("user_id", req.UserID),
		zap.String("client_id", req.ClientID),
		zap.String("item_id", req.ItemID),
		zap.Error(lastErr),
	)
	return fmt.Errorf("booking write for event %s item %s: %w", req.EventID, req.ItemID, lastErr)
}

func (w *BookingWriter) write(ctx context.Context, req *event.BookingRequested) error {
	uow := w.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	now := time.Now().UTC()
	booking := &model.Booking{
		UserID:    req.UserID,
		ClientID:  req.ClientID,
		ItemID:    req.ItemID,
		EventID:   req.EventID,
		Status:    model.BookingStatusBooked,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uow.BookingRepository().Save(ctx, booking); err != nil {
		uow.Rollback(ctx)
		return err
	}

	return uow.Commit(ctx)
}
