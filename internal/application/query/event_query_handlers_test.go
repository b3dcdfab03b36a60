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

func TestListEvents_PartitionsAndEnriches(t *testing.T) {
	future := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	past := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	repo := &fakeEventRepo{
		views: []*model.EventView{
			{ID: "up", Images: []string{"cover.jpg", "broken.jpg"}, LastDate: &future},
			{ID: "gone", LastDate: &past},
			{ID: "undated"},
		},
	}
	store := &fakeBlobStore{blobs: map[string][]byte{"cover.jpg": []byte("img")}}
	handler := NewListEventsHandler(repo, images.NewEnricher(store))

	result, err := handler.Handle(context.Background(), &ListEvents{})
	require.NoError(t, err)

	require.Len(t, result.Upcoming, 1)
	assert.Equal(t, "up", result.Upcoming[0].ID)

	// Unresolvable assets are dropped from the gallery, not surfaced as errors.
	require.Len(t, result.Upcoming[0].ResolvedImages, 1)
	assert.Equal(t, "cover.jpg", result.Upcoming[0].ResolvedImages[0].Name)

	assert.Len(t, result.Past, 2)
}

func TestGetEventDetail_JoinsSlotsAndGalleries(t *testing.T) {
	repo := &fakeEventRepo{
		events: map[string]*model.Event{
			"e1": {
				ID:           "e1",
				Name:         "Reception",
				Images:       []string{"hero.jpg"},
				VenueID:      "item-v",
				DecorationID: "item-d",
			},
		},
	}
	itemRepo := &fakeItemRepo{
		items: map[string]*model.Item{
			"item-v": {ID: "item-v", Name: "Hall", Images: []string{"hall.jpg"}},
			"item-d": {
				ID:               "item-d",
				Name:             "Florals",
				Images:           []string{"cover.jpg"},
				DecorationImages: []string{"staging.jpg"},
			},
		},
	}
	store := &fakeBlobStore{blobs: map[string][]byte{
		"hero.jpg":    []byte("a"),
		"hall.jpg":    []byte("b"),
		"staging.jpg": []byte("c"),
		"cover.jpg":   []byte("d"),
	}}

	handler := NewGetEventDetailHandler(repo, itemRepo, images.NewEnricher(store))

	detail, err := handler.Handle(context.Background(), &GetEventDetail{EventID: "e1"})
	require.NoError(t, err)

	require.Len(t, detail.Images, 1)
	require.NotNil(t, detail.Venue)
	assert.Equal(t, "Hall", detail.Venue.Item.Name)
	assert.Nil(t, detail.Catering)
	assert.Nil(t, detail.Photograph)

	// Decoration slots expose the staging gallery, not the cover shots.
	require.NotNil(t, detail.Decoration)
	require.Len(t, detail.Decoration.Images, 1)
	assert.Equal(t, "staging.jpg", detail.Decoration.Images[0].Name)
}

func TestGetEventDetail_MissingEventIsTypedNotFound(t *testing.T) {
	handler := NewGetEventDetailHandler(
		&fakeEventRepo{events: map[string]*model.Event{}},
		&fakeItemRepo{},
		images.NewEnricher(&fakeBlobStore{}),
	)

	_, err := handler.Handle(context.Background(), &GetEventDetail{EventID: "missing"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestGetEventDetail_DanglingItemLeavesSlotEmpty(t *testing.T) {
	repo := &fakeEventRepo{
		events: map[string]*model.Event{
			"e1": {ID: "e1", VenueID: "deleted-item"},
		},
	}
	handler := NewGetEventDetailHandler(repo, &fakeItemRepo{items: map[string]*model.Item{}}, images.NewEnricher(&fakeBlobStore{}))

	detail, err := handler.Handle(context.Background(), &GetEventDetail{EventID: "e1"})
	require.NoError(t, err)
	assert.Nil(t, detail.Venue)
}
