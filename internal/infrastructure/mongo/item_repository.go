package mongo

import (
	"context"

	"planora/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ItemRepository implements repository.ItemRepository using MongoDB
type ItemRepository struct {
	*GenericRepository[*model.Item]
}

// NewItemRepository creates a new MongoDB item repository
func NewItemRepository(database *mongo.Database) *ItemRepository {
	return &ItemRepository{
		GenericRepository: NewGenericRepository[*model.Item](database, itemCollection),
	}
}

// FindByTypeID returns every item of one service type
func (r *ItemRepository) FindByTypeID(ctx context.Context, typeID string) ([]*model.Item, error) {
	return r.FindBy(ctx, map[string]interface{}{"type_id": typeID})
}

// FindByClientID returns every item owned by the client
func (r *ItemRepository) FindByClientID(ctx context.Context, clientID string) ([]*model.Item, error) {
	return r.FindBy(ctx, map[string]interface{}{"client_id": clientID})
}

// FindByClientIDs returns every item owned by any of the clients
func (r *ItemRepository) FindByClientIDs(ctx context.Context, clientIDs []string) ([]*model.Item, error) {
	if len(clientIDs) == 0 {
		return nil, nil
	}
	return r.FindBy(ctx, map[string]interface{}{"client_id": bson.M{"$in": clientIDs}})
}
