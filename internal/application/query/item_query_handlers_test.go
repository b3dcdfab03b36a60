package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planora/internal/application/images"
	"planora/internal/domain/model"
	"planora/pkg/errors"
)

func TestSearchAvailableItems_ExcludesBookedProviders(t *testing.T) {
	day := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	clientRepo := &fakeClientRepo{clients: map[string]*model.Client{
		"free":   {ID: "free"},
		"booked": {ID: "booked", Availability: []time.Time{day}},
	}}
	itemRepo := &fakeItemRepo{items: map[string]*model.Item{
		"i1": {ID: "i1", ClientID: "free", TypeID: "t-venue", Images: []string{"hall.jpg", "broken.jpg"}},
		"i2": {ID: "i2", ClientID: "free", TypeID: "t-catering"},
		"i3": {ID: "i3", ClientID: "booked", TypeID: "t-venue"},
	}}
	typeRepo := &fakeTypeRepo{types: map[string]*model.ServiceType{
		"t-venue":    {ID: "t-venue", Name: model.TypeVenue},
		"t-catering": {ID: "t-catering", Name: model.TypeCatering},
	}}
	enricher := images.NewEnricher(&fakeBlobStore{blobs: map[string][]byte{
		"hall.jpg": []byte("hall"),
	}})

	handler := NewSearchAvailableItemsHandler(itemRepo, clientRepo, typeRepo, enricher)

	// The search day overlaps the booked provider's calendar.
	result, err := handler.Handle(context.Background(), &SearchAvailableItems{
		Start: day.Add(9 * time.Hour),
		End:   day.Add(20 * time.Hour),
	})
	require.NoError(t, err)

	require.Len(t, result.Venues, 1)
	assert.Equal(t, "i1", result.Venues[0].Item.ID)
	require.Len(t, result.Venues[0].Images, 1)
	assert.Equal(t, "hall.jpg", result.Venues[0].Images[0].Name)
	assert.Len(t, result.Caterings, 1)
	assert.Empty(t, result.Photographs)
	assert.Empty(t, result.Decorations)
}

func TestSearchAvailableItems_InvalidRange(t *testing.T) {
	handler := NewSearchAvailableItemsHandler(
		&fakeItemRepo{}, &fakeClientRepo{}, &fakeTypeRepo{},
		images.NewEnricher(&fakeBlobStore{}),
	)

	_, err := handler.Handle(context.Background(), &SearchAvailableItems{
		Start: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	appErr, ok := err.(*errors.ApplicationError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestListItemsByType(t *testing.T) {
	itemRepo := &fakeItemRepo{items: map[string]*model.Item{
		"i1": {ID: "i1", TypeID: "t-venue"},
		"i2": {ID: "i2", TypeID: "t-catering"},
	}}
	typeRepo := &fakeTypeRepo{types: map[string]*model.ServiceType{
		"t-venue": {ID: "t-venue", Name: model.TypeVenue},
	}}

	handler := NewListItemsByTypeHandler(itemRepo, typeRepo)

	items, err := handler.Handle(context.Background(), &ListItemsByType{TypeName: model.TypeVenue})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "i1", items[0].ID)

	_, err = handler.Handle(context.Background(), &ListItemsByType{TypeName: "unknown"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestListClientSchedule_FiltersConfirmedUpcoming(t *testing.T) {
	futureEvent := &model.Event{ID: "e-future", Dates: []time.Time{time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)}}
	pastEvent := &model.Event{ID: "e-past", Dates: []time.Time{time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)}}

	repo := &fakeBookingRepo{views: []*model.BookingView{
		{Booking: model.Booking{ID: "b1", ClientID: "c1", Status: model.BookingStatusConfirmed}, Event: futureEvent},
		{Booking: model.Booking{ID: "b2", ClientID: "c1", Status: model.BookingStatusBooked}, Event: futureEvent},
		{Booking: model.Booking{ID: "b3", ClientID: "c1", Status: model.BookingStatusConfirmed}, Event: pastEvent},
		{Booking: model.Booking{ID: "b4", ClientID: "c1", Status: model.BookingStatusConfirmed}},
	}}

	handler := NewListClientScheduleHandler(repo)

	schedule, err := handler.Handle(context.Background(), &ListClientSchedule{ClientID: "c1"})
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.Equal(t, "b1", schedule[0].ID)
}
