package repository

import (
	"context"

	"planora/internal/domain/model"
)

// ServiceTypeRepository is the port for the service-type classification store
type ServiceTypeRepository interface {
	Save(ctx context.Context, serviceType *model.ServiceType) error
	GetByID(ctx context.Context, id string) (*model.ServiceType, error)
	FindByName(ctx context.Context, name string) (*model.ServiceType, error)
	FindAll(ctx context.Context) ([]*model.ServiceType, error)
}
