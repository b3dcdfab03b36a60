package mongo

import (
	"context"

	"planora/internal/domain/model"

	"go.mongodb.org/mongo-driver/mongo"
)

const serviceTypeCollection = "service_types"

// ServiceTypeRepository implements repository.ServiceTypeRepository using MongoDB
type ServiceTypeRepository struct {
	*GenericRepository[*model.ServiceType]
}

// NewServiceTypeRepository creates a new MongoDB service type repository
func NewServiceTypeRepository(database *mongo.Database) *ServiceTypeRepository {
	return &ServiceTypeRepository{
		GenericRepository: NewGenericRepository[*model.ServiceType](database, serviceTypeCollection),
	}
}

// FindByName returns the classification with the given name
func (r *ServiceTypeRepository) FindByName(ctx context.Context, name string) (*model.ServiceType, error) {
	return r.FindOneBy(ctx, map[string]interface{}{"name": name})
}

// FindAll returns every service type
func (r *ServiceTypeRepository) FindAll(ctx context.Context) ([]*model.ServiceType, error) {
	return r.FindBy(ctx, map[string]interface{}{})
}
