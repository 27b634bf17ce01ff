package userRepo

import (
	"context"

	"meditrip/database"
	"meditrip/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a new UserRepository instance using MongoDB.
func NewMongoUserRepo() UserRepository {
	return &mongoUserRepo{
		coll: database.Collection("users"),
	}
}
