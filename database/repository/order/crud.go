package orderRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meditrip/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrVersionConflict is returned when an Update loses its compare-and-set
// against a concurrent mutation of the same order.
var ErrVersionConflict = errors.New("order was modified concurrently")

// Create inserts a new order document.
func (r *MongoOrderRepo) Create(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	order.Version = 1

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("error creating order: %w", err)
	}
	return nil
}

// GetByID retrieves an order by its ID.
func (r *MongoOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching order %s: %w", id, err)
	}
	return &order, nil
}

// GetByUserID fetches all orders belonging to a user, newest first.
func (r *MongoOrderRepo) GetByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("error listing orders for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Update replaces the order document, guarded by the version the caller read.
// A zero match means another writer got there first.
func (r *MongoOrderRepo) Update(ctx context.Context, order *models.Order) error {
	readVersion := order.Version
	order.Version = readVersion + 1
	order.UpdatedAt = time.Now()

	filter := bson.M{"id": order.ID, "version": readVersion}
	res, err := r.coll.ReplaceOne(ctx, filter, order)
	if err != nil {
		return fmt.Errorf("error updating order %s: %w", order.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}
