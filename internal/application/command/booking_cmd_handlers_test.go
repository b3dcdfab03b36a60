package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"planora/internal/domain/event"
	"planora/internal/domain/model"
	"planora/pkg/errors"
)

func seedBookingScenario(store *memStore) {
	store.types["t-venue"] = &model.ServiceType{ID: "t-venue", Name: model.TypeVenue}
	store.types["t-catering"] = &model.ServiceType{ID: "t-catering", Name: model.TypeCatering}
	store.items["item-v"] = &model.Item{ID: "item-v", TypeID: "t-venue", ClientID: "c1", Name: "Hall"}
	store.items["item-c"] = &model.Item{ID: "item-c", TypeID: "t-catering", ClientID: "c2", Name: "Buffet"}
	store.events["e1"] = &model.Event{
		ID:         "e1",
		UserID:     "u1",
		Name:       "Reception",
		VenueID:    "item-v",
		CateringID: "item-c",
		Status:     model.EventStatusBooked,
	}
	store.bookings["b1"] = &model.Booking{ID: "b1", EventID: "e1", ClientID: "c1", ItemID: "item-v", Status: model.BookingStatusBooked}
	store.bookings["b2"] = &model.Booking{ID: "b2", EventID: "e1", ClientID: "c2", ItemID: "item-c", Status: model.BookingStatusBooked}
}

func TestConfirmBooking_PendingBookingKeepsEventBooked(t *testing.T) {
	store := newMemStore()
	seedBookingScenario(store)

	handler := NewConfirmBookingWithUoWHandler(&fakeUoWFactory{store}, newFakeBus(), NewEventLocks())

	booking, err := handler.Handle(context.Background(), &ConfirmBooking{BookingID: "b1"})
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, booking.Status)

	// b2 is still pending, so the event must not auto-confirm.
	assert.Equal(t, model.EventStatusBooked, store.events["e1"].Status)
}

func TestConfirmBooking_LastConfirmationFlipsEvent(t *testing.T) {
	store := newMemStore()
	seedBookingScenario(store)
	store.bookings["b2"].Status = model.BookingStatusConfirmed

	eventBus := newFakeBus()
	handler := NewConfirmBookingWithUoWHandler(&fakeUoWFactory{store}, eventBus, NewEventLocks())

	_, err := handler.Handle(context.Background(), &ConfirmBooking{BookingID: "b1"})
	require.NoError(t, err)

	assert.Equal(t, model.EventStatusConfirmed, store.events["e1"].Status)
	assert.Len(t, eventBus.eventsOfType("BookingConfirmed"), 1)
}

func TestConfirmBooking_NotFound(t *testing.T) {
	handler := NewConfirmBookingWithUoWHandler(&fakeUoWFactory{newMemStore()}, newFakeBus(), NewEventLocks())

	_, err := handler.Handle(context.Background(), &ConfirmBooking{BookingID: "missing"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRejectBooking_FlipsEventAndRecordsRejection(t *testing.T) {
	store := newMemStore()
	seedBookingScenario(store)
	store.events["e1"].IsPublished = true

	eventBus := newFakeBus()
	handler := NewRejectBookingWithUoWHandler(&fakeUoWFactory{store}, eventBus, NewEventLocks())

	booking, err := handler.Handle(context.Background(), &RejectBooking{BookingID: "b1"})
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusRejected, booking.Status)

	evt := store.events["e1"]
	assert.Equal(t, model.EventStatusRejected, evt.Status)
	assert.False(t, evt.IsPublished)
	require.Len(t, evt.RejectedBy, 1)
	assert.Equal(t, "item-v", evt.RejectedBy[0].ItemID)
	assert.Equal(t, model.TypeVenue, evt.RejectedBy[0].ItemType)

	rejected := eventBus.eventsOfType("BookingRejected")
	require.Len(t, rejected, 1)
	assert.Equal(t, model.TypeVenue, rejected[0].(*event.BookingRejected).ItemType)
}

func TestRejectBooking_RepeatRejectionDoesNotDuplicateRecord(t *testing.T) {
	store := newMemStore()
	seedBookingScenario(store)

	handler := NewRejectBookingWithUoWHandler(&fakeUoWFactory{store}, newFakeBus(), NewEventLocks())

	for i := 0; i < 2; i++ {
		_, err := handler.Handle(context.Background(), &RejectBooking{BookingID: "b1"})
		require.NoError(t, err)
	}

	assert.Len(t, store.events["e1"].RejectedBy, 1)
}

func TestBookingWriter_RetriesTransientFailure(t *testing.T) {
	store := newMemStore()
	store.failBookingSaves = 1

	writer := NewBookingWriter(&fakeUoWFactory{store}, zap.NewNop())

	err := writer.Handle(context.Background(), &event.BookingRequested{
		EventID:  "e1",
		UserID:   "u1",
		ClientID: "c1",
		ItemID:   "item-v",
	})

	require.NoError(t, err)
	bookings, err := (&fakeBookingRepo{store}).FindByEventID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestBookingWriter_GivesUpAfterRetries(t *testing.T) {
	store := newMemStore()
	store.failBookingSaves = bookingWriteAttempts

	writer := NewBookingWriter(&fakeUoWFactory{store}, zap.NewNop())

	err := writer.Handle(context.Background(), &event.BookingRequested{
		EventID:  "e1",
		UserID:   "u1",
		ClientID: "c1",
		ItemID:   "item-v",
	})

	require.Error(t, err)
	assert.Empty(t, store.bookings)
}
