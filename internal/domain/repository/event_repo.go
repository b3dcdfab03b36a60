package repository

import (
	"context"

	"planora/internal/domain/model"
)

// EventFilter selects the events an aggregation query runs over. Exactly one
// of the two query shapes is used per call: the public listing (Published) or
// an owner's dashboard (UserID).
type EventFilter struct {
	Published *bool
	UserID    string
}

// EventRepository is the port for the event store
type EventRepository interface {
	Save(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id string) error

	// UnsetField removes a single named field from the event document.
	// Administrative escape hatch: the field name is not validated.
	UnsetField(ctx context.Context, id, field string) error

	// ListViews runs the aggregation: filter, latest-date derivation and the
	// four service-slot joins. Partitioning into buckets happens in the caller.
	ListViews(ctx context.Context, filter EventFilter) ([]*model.EventView, error)
}
