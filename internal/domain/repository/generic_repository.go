package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("entity not found")

// ErrOptimisticLock is returned when a versioned update lost a write race.
var ErrOptimisticLock = errors.New("optimistic locking failed - entity was modified by another operation")

// Entity is the minimal contract every persisted document satisfies
type Entity interface {
	GetID() string
	SetID(id string)
	GetVersion() int
	SetVersion(v int)
}

// GenericRepository defines the operations shared by all entity stores
type GenericRepository[T Entity] interface {
	Save(ctx context.Context, entity T) error
	GetByID(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id string) error
	FindBy(ctx context.Context, filter map[string]interface{}) ([]T, error)
	FindOneBy(ctx context.Context, filter map[string]interface{}) (T, error)
	Exists(ctx context.Context, id string) (bool, error)
}
