package mongo

import (
	"context"
	"time"

	"planora/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const clientCollection = "clients"

// ClientRepository implements repository.ClientRepository using MongoDB
type ClientRepository struct {
	*GenericRepository[*model.Client]
}

// NewClientRepository creates a new MongoDB client repository
func NewClientRepository(database *mongo.Database) *ClientRepository {
	return &ClientRepository{
		GenericRepository: NewGenericRepository[*model.Client](database, clientCollection),
	}
}

// FindAll returns every client profile
func (r *ClientRepository) FindAll(ctx context.Context) ([]*model.Client, error) {
	return r.FindBy(ctx, map[string]interface{}{})
}

// FindByUserID returns the client profile owned by the user
func (r *ClientRepository) FindByUserID(ctx context.Context, userID string) (*model.Client, error) {
	return r.FindOneBy(ctx, map[string]interface{}{"user_id": userID})
}

// FindAvailableOutside returns clients with no availability date inside the
// given normalized day set. Dates are stored UTC-midnight-truncated, so a
// plain set-membership test is exact calendar-day matching.
func (r *ClientRepository) FindAvailableOutside(ctx context.Context, days []time.Time) ([]*model.Client, error) {
	return r.FindBy(ctx, map[string]interface{}{
		"availability": bson.M{"$not": bson.M{"$in": days}},
	})
}
