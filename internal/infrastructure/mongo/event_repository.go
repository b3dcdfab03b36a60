package mongo

import (
	"context"
	"fmt"

	"planora/internal/domain/model"
	"planora/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	eventCollection = "events"
	itemCollection  = "items"
)

// EventRepository implements repository.EventRepository using MongoDB
type EventRepository struct {
	*GenericRepository[*model.Event]
}

// NewEventRepository creates a new MongoDB event repository
func NewEventRepository(database *mongo.Database) *EventRepository {
	return &EventRepository{
		GenericRepository: NewGenericRepository[*model.Event](database, eventCollection),
	}
}

// UnsetField removes a single named field from the event document
func (r *EventRepository) UnsetField(ctx context.Context, id, field string) error {
	return r.GenericRepository.UnsetField(ctx, id, field)
}

// ListViews runs the aggregation that backs every event listing: filter,
// latest-date derivation and a left join of each service slot against the
// items collection. The latest date is the maximum of the dates list, not its
// last element - the stored list is unordered.
func (r *EventRepository) ListViews(ctx context.Context, filter repository.EventFilter) ([]*model.EventView, error) {
	match := bson.M{}
	if filter.Published != nil {
		match["is_published"] = *filter.Published
	}
	if filter.UserID != "" {
		match["user_id"] = filter.UserID
	}

	lookup := func(local, as string) bson.D {
		return bson.D{{Key: "$lookup", Value: bson.M{
			"from":         itemCollection,
			"localField":   local,
			"foreignField": "_id",
			"as":           as,
		}}}
	}
	first := func(field string) bson.M {
		return bson.M{"$arrayElemAt": bson.A{"$" + field, 0}}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"last_date": bson.M{"$max": "$dates"},
		}}},
		lookup("venue_id", "venue"),
		lookup("catering_id", "catering"),
		lookup("decoration_id", "decoration"),
		lookup("photograph_id", "photograph"),
		bson.D{{Key: "$project", Value: bson.M{
			"name":         1,
			"description":  1,
			"images":       1,
			"ticket_price": 1,
			"venue":        first("venue"),
			"catering":     first("catering"),
			"decoration":   first("decoration"),
			"photograph":   first("photograph"),
			"status":       1,
			"rejected_by":  1,
			"dates":        1,
			"is_published": 1,
			"last_date":    1,
		}}},
	}

	var views []*model.EventView
	if err := r.Aggregate(ctx, pipeline, &views); err != nil {
		return nil, fmt.Errorf("failed to list event views: %w", err)
	}
	return views, nil
}
