package mongo

import (
	"context"
	"fmt"
	"time"

	"planora/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const bookingCollection = "bookings"

// BookingRepository implements repository.BookingRepository using MongoDB
type BookingRepository struct {
	*GenericRepository[*model.Booking]
}

// NewBookingRepository creates a new MongoDB booking repository
func NewBookingRepository(database *mongo.Database) *BookingRepository {
	return &BookingRepository{
		GenericRepository: NewGenericRepository[*model.Booking](database, bookingCollection),
	}
}

// FindByEventID returns every booking belonging to the event
func (r *BookingRepository) FindByEventID(ctx context.Context, eventID string) ([]*model.Booking, error) {
	return r.FindBy(ctx, map[string]interface{}{"event_id": eventID})
}

// FindByClientID returns every booking assigned to the client
func (r *BookingRepository) FindByClientID(ctx context.Context, clientID string) ([]*model.Booking, error) {
	return r.FindBy(ctx, map[string]interface{}{"client_id": clientID})
}

// FindViewsByClientID joins each of the client's bookings with its event
func (r *BookingRepository) FindViewsByClientID(ctx context.Context, clientID string) ([]*model.BookingView, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"client_id": clientID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         eventCollection,
			"localField":   "event_id",
			"foreignField": "_id",
			"as":           "event",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"event": bson.M{"$arrayElemAt": bson.A{"$event", 0}},
		}}},
	}

	var views []*model.BookingView
	if err := r.Aggregate(ctx, pipeline, &views); err != nil {
		return nil, fmt.Errorf("failed to list booking views: %w", err)
	}
	return views, nil
}

// DeleteByEventID removes every booking belonging to the event
func (r *BookingRepository) DeleteByEventID(ctx context.Context, eventID string) error {
	return r.DeleteBy(ctx, map[string]interface{}{"event_id": eventID})
}

// UpdateStatusByEventID rewrites the status of every booking on the event
func (r *BookingRepository) UpdateStatusByEventID(ctx context.Context, eventID string, status model.BookingStatus) error {
	return r.UpdateFieldsBy(ctx,
		map[string]interface{}{"event_id": eventID},
		map[string]interface{}{"status": status, "updated_at": time.Now().UTC()},
	)
}
