package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"planora/internal/domain/model"
	"planora/pkg/errors"
)

func TestCreateEvent_PersistsEventAndRequestsBookings(t *testing.T) {
	store := newMemStore()
	factory := &fakeUoWFactory{store}
	eventBus := newFakeBus()

	writer := NewBookingWriter(factory, zap.NewNop())
	require.NoError(t, writer.Register(eventBus))

	handler := NewCreateEventWithUoWHandler(factory, eventBus)

	evt, err := handler.Handle(context.Background(), &CreateEvent{
		UserID: "u1",
		Name:   "Garden Wedding",
		Dates:  []time.Time{time.Date(2099, 6, 1, 0, 0, 0, 0, time.UTC)},
		Services: ServiceSelections{
			Venue:      &ServiceSelection{ItemID: "item-v", ClientID: "c1"},
			Catering:   &ServiceSelection{ItemID: "item-c", ClientID: "c2"},
			Photograph: &ServiceSelection{ItemID: "item-p"},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, model.EventStatusBooked, evt.Status)
	assert.Equal(t, "item-v", evt.VenueID)
	assert.Equal(t, "item-p", evt.PhotographID)
	assert.False(t, evt.IsPublished)

	// Only selections with a concrete provider spawn bookings.
	requests := eventBus.eventsOfType("BookingRequested")
	assert.Len(t, requests, 2)

	bookings, err := (&fakeBookingRepo{store}).FindByEventID(context.Background(), evt.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	for _, b := range bookings {
		assert.Equal(t, model.BookingStatusBooked, b.Status)
		assert.Equal(t, "u1", b.UserID)
	}
}

func TestCreateEvent_RequiresUserAndName(t *testing.T) {
	handler := NewCreateEventWithUoWHandler(&fakeUoWFactory{newMemStore()}, newFakeBus())

	_, err := handler.Handle(context.Background(), &CreateEvent{Name: "No owner"})
	require.Error(t, err)
	appErr, ok := err.(*errors.ApplicationError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	_, err = handler.Handle(context.Background(), &CreateEvent{UserID: "u1"})
	require.Error(t, err)
}

func TestCreateEvent_RejectsClientWithoutItem(t *testing.T) {
	handler := NewCreateEventWithUoWHandler(&fakeUoWFactory{newMemStore()}, newFakeBus())

	_, err := handler.Handle(context.Background(), &CreateEvent{
		UserID: "u1",
		Name:   "Broken selection",
		Services: ServiceSelections{
			Venue: &ServiceSelection{ClientID: "c1"},
		},
	})

	require.Error(t, err)
	appErr, ok := err.(*errors.ApplicationError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestEditEvent_ReplacesBookingsAndResetsState(t *testing.T) {
	store := newMemStore()
	factory := &fakeUoWFactory{store}

	store.events["e1"] = &model.Event{
		ID:          "e1",
		UserID:      "u1",
		Name:        "Old name",
		VenueID:     "item-v",
		CateringID:  "item-c",
		Status:      model.EventStatusRejected,
		IsPublished: true,
		RejectedBy:  []model.Rejection{{ItemID: "item-v", ItemType: model.TypeVenue}},
	}
	store.bookings["b1"] = &model.Booking{ID: "b1", EventID: "e1", ClientID: "c1", ItemID: "item-v", Status: model.BookingStatusRejected}
	store.bookings["b2"] = &model.Booking{ID: "b2", EventID: "e1", ClientID: "c2", ItemID: "item-c", Status: model.BookingStatusConfirmed}

	handler := NewEditEventWithUoWHandler(factory, newFakeBus(), NewEventLocks())

	evt, err := handler.Handle(context.Background(), &EditEvent{
		EventID: "e1",
		Name:    "New name",
		Services: ServiceSelections{
			Catering: &ServiceSelection{ItemID: "item-c2", ClientID: "c3"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "New name", evt.Name)
	assert.Equal(t, model.EventStatusBooked, evt.Status)
	assert.False(t, evt.IsPublished)
	assert.Nil(t, evt.RejectedBy)
	assert.Empty(t, evt.VenueID)
	assert.Equal(t, "item-c2", evt.CateringID)

	// The old booking set is gone; only the new selection survives.
	bookings, err := (&fakeBookingRepo{store}).FindByEventID(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "item-c2", bookings[0].ItemID)
	assert.Equal(t, model.BookingStatusBooked, bookings[0].Status)
}

func TestEditEvent_NotFound(t *testing.T) {
	handler := NewEditEventWithUoWHandler(&fakeUoWFactory{newMemStore()}, newFakeBus(), NewEventLocks())

	_, err := handler.Handle(context.Background(), &EditEvent{EventID: "missing"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestPublishEvent_Idempotent(t *testing.T) {
	store := newMemStore()
	store.events["e1"] = &model.Event{ID: "e1", UserID: "u1", Name: "Show", Status: model.EventStatusBooked}

	handler := NewPublishEventWithUoWHandler(&fakeUoWFactory{store}, newFakeBus())

	for i := 0; i < 2; i++ {
		evt, err := handler.Handle(context.Background(), &PublishEvent{EventID: "e1"})
		require.NoError(t, err)
		assert.True(t, evt.IsPublished)
		assert.Equal(t, model.EventStatusConfirmed, evt.Status)
	}
}

func TestCancelEvent_CascadesToBookings(t *testing.T) {
	store := newMemStore()
	store.events["e1"] = &model.Event{ID: "e1", UserID: "u1", Name: "Show", Status: model.EventStatusConfirmed, IsPublished: true}
	store.bookings["b1"] = &model.Booking{ID: "b1", EventID: "e1", Status: model.BookingStatusConfirmed}
	store.bookings["b2"] = &model.Booking{ID: "b2", EventID: "e1", Status: model.BookingStatusBooked}

	handler := NewCancelEventWithUoWHandler(&fakeUoWFactory{store}, newFakeBus(), NewEventLocks())

	evt, err := handler.Handle(context.Background(), &CancelEvent{EventID: "e1"})
	require.NoError(t, err)
	assert.Equal(t, model.EventStatusCanceled, evt.Status)
	assert.False(t, evt.IsPublished)

	for _, b := range store.bookings {
		assert.Equal(t, model.BookingStatusCanceled, b.Status)
	}
}

func TestDeleteEventField_RemovesField(t *testing.T) {
	store := newMemStore()
	store.events["e1"] = &model.Event{ID: "e1", UserID: "u1", Name: "Show", Description: "long text"}

	handler := NewDeleteEventFieldWithUoWHandler(&fakeUoWFactory{store})

	evt, err := handler.Handle(context.Background(), &DeleteEventField{EventID: "e1", Field: "description"})
	require.NoError(t, err)
	assert.Empty(t, evt.Description)

	_, err = handler.Handle(context.Background(), &DeleteEventField{EventID: "missing", Field: "description"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
