package orderRepo

import (
	"context"

	"meditrip/database"
	"meditrip/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository persists order aggregates. Mutations go through Update,
// which performs an optimistic version check, or through RunInOrderTx, which
// wraps reads and writes for one order in a single mongo transaction.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	RunInOrderTx(ctx context.Context, orderID string, fn func(txCtx context.Context) error) error
}

type MongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo returns a new OrderRepository instance using MongoDB.
func NewMongoOrderRepo() *MongoOrderRepo {
	return &MongoOrderRepo{
		coll: database.Collection("orders"),
	}
}
