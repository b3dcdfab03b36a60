package repository

import (
	"context"
	"time"

	"planora/internal/domain/model"
)

// ClientRepository is the port for the service-provider store
type ClientRepository interface {
	Save(ctx context.Context, client *model.Client) error
	GetByID(ctx context.Context, id string) (*model.Client, error)
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, id string) error

	FindAll(ctx context.Context) ([]*model.Client, error)
	FindByUserID(ctx context.Context, userID string) (*model.Client, error)

	// FindAvailableOutside returns clients whose availability set contains
	// none of the given normalized days.
	FindAvailableOutside(ctx context.Context, days []time.Time) ([]*model.Client, error)
}
