package repository

import (
	"context"

	"planora/internal/domain/model"
)

// ItemRepository is the port for the service-offering store
type ItemRepository interface {
	Save(ctx context.Context, item *model.Item) error
	GetByID(ctx context.Context, id string) (*model.Item, error)
	Update(ctx context.Context, item *model.Item) error
	Delete(ctx context.Context, id string) error

	FindByTypeID(ctx context.Context, typeID string) ([]*model.Item, error)
	FindByClientID(ctx context.Context, clientID string) ([]*model.Item, error)
	FindByClientIDs(ctx context.Context, clientIDs []string) ([]*model.Item, error)
}
