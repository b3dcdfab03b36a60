package mongo

import (
	"context"
	"errors"
	"fmt"

	"planora/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GenericRepository implements repository.GenericRepository for MongoDB
type GenericRepository[T repository.Entity] struct {
	database       *mongo.Database
	collection     *mongo.Collection
	collectionName string
	session        mongo.Session
}

// NewGenericRepository creates a new MongoDB generic repository
func NewGenericRepository[T repository.Entity](database *mongo.Database, collectionName string) *GenericRepository[T] {
	return &GenericRepository[T]{
		database:       database,
		collection:     database.Collection(collectionName),
		collectionName: collectionName,
	}
}

// SetTransaction implements TransactionalRepository
func (r *GenericRepository[T]) SetTransaction(tx interface{}) {
	if session, ok := tx.(mongo.Session); ok {
		r.session = session
	}
}

// GetTransaction implements TransactionalRepository
func (r *GenericRepository[T]) GetTransaction() interface{} {
	return r.session
}

// IsTransactional implements TransactionalRepository
func (r *GenericRepository[T]) IsTransactional() bool {
	return r.session != nil
}

// getContext returns the appropriate context for operations
func (r *GenericRepository[T]) getContext(ctx context.Context) context.Context {
	if r.session != nil {
		return mongo.NewSessionContext(ctx, r.session)
	}
	return ctx
}

// Save stores an entity, generating a store-native id for new documents
func (r *GenericRepository[T]) Save(ctx context.Context, entity T) error {
	ctx = r.getContext(ctx)

	if entity.GetID() == "" {
		entity.SetID(uuid.New().String())
		entity.SetVersion(1)

		if _, err := r.collection.InsertOne(ctx, entity); err != nil {
			return fmt.Errorf("failed to insert entity: %w", err)
		}
		return nil
	}

	return r.Update(ctx, entity)
}

// GetByID retrieves an entity by ID
func (r *GenericRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	ctx = r.getContext(ctx)
	var zero T

	var result T
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, repository.ErrNotFound
		}
		return zero, fmt.Errorf("failed to get entity by ID: %w", err)
	}

	return result, nil
}

// Update updates an existing entity with optimistic locking
func (r *GenericRepository[T]) Update(ctx context.Context, entity T) error {
	ctx = r.getContext(ctx)

	currentVersion := entity.GetVersion()
	entity.SetVersion(currentVersion + 1)

	filter := bson.M{
		"_id":     entity.GetID(),
		"version": currentVersion,
	}

	result, err := r.collection.ReplaceOne(ctx, filter, entity)
	if err != nil {
		return fmt.Errorf("failed to update entity: %w", err)
	}

	if result.MatchedCount == 0 {
		return repository.ErrOptimisticLock
	}

	return nil
}

// Delete removes an entity by ID
func (r *GenericRepository[T]) Delete(ctx context.Context, id string) error {
	ctx = r.getContext(ctx)

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}

	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// FindBy finds entities matching the given filter
func (r *GenericRepository[T]) FindBy(ctx context.Context, filter map[string]interface{}) ([]T, error) {
	ctx = r.getContext(ctx)

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find entities: %w", err)
	}
	defer cursor.Close(ctx)

	var results []T
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, fmt.Errorf("failed to decode entity: %w", err)
		}
		results = append(results, entity)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return results, nil
}

// FindOneBy finds a single entity matching the given filter
func (r *GenericRepository[T]) FindOneBy(ctx context.Context, filter map[string]interface{}) (T, error) {
	ctx = r.getContext(ctx)
	var zero T

	var result T
	err := r.collection.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, repository.ErrNotFound
		}
		return zero, fmt.Errorf("failed to find entity: %w", err)
	}

	return result, nil
}

// Exists checks if an entity exists by ID
func (r *GenericRepository[T]) Exists(ctx context.Context, id string) (bool, error) {
	ctx = r.getContext(ctx)

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check entity existence: %w", err)
	}

	return count > 0, nil
}

// DeleteBy removes every document matching the filter
func (r *GenericRepository[T]) DeleteBy(ctx context.Context, filter map[string]interface{}) error {
	ctx = r.getContext(ctx)

	if _, err := r.collection.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete entities: %w", err)
	}
	return nil
}

// UpdateFieldsBy applies a partial $set to every document matching the filter
func (r *GenericRepository[T]) UpdateFieldsBy(ctx context.Context, filter, set map[string]interface{}) error {
	ctx = r.getContext(ctx)

	if _, err := r.collection.UpdateMany(ctx, filter, bson.M{"$set": set}); err != nil {
		return fmt.Errorf("failed to update entities: %w", err)
	}
	return nil
}

// UnsetField removes a single named field from one document
func (r *GenericRepository[T]) UnsetField(ctx context.Context, id, field string) error {
	ctx = r.getContext(ctx)

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$unset": bson.M{field: ""}},
	)
	if err != nil {
		return fmt.Errorf("failed to unset field: %w", err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Aggregate runs a pipeline on the underlying collection and decodes every
// result into out, which must be a pointer to a slice.
func (r *GenericRepository[T]) Aggregate(ctx context.Context, pipeline interface{}, out interface{}) error {
	ctx = r.getContext(ctx)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("failed to run aggregation: %w", err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode aggregation results: %w", err)
	}
	return nil
}
