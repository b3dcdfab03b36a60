package mongo

import (
	"context"

	"planora/internal/domain/model"

	"go.mongodb.org/mongo-driver/mongo"
)

const userCollection = "users"

// UserRepository implements repository.UserRepository using MongoDB
type UserRepository struct {
	*GenericRepository[*model.User]
}

// NewUserRepository creates a new MongoDB user repository
func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{
		GenericRepository: NewGenericRepository[*model.User](database, userCollection),
	}
}

// FindByEmail returns the account registered under the email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.FindOneBy(ctx, map[string]interface{}{"email": email})
}
