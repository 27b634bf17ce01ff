package itineraryRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meditrip/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new itinerary item.
func (r *mongoItineraryRepo) Create(ctx context.Context, item *models.ItineraryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("error creating itinerary item: %w", err)
	}
	return nil
}

// GetByID returns an itinerary item by its ID.
func (r *mongoItineraryRepo) GetByID(ctx context.Context, id string) (*models.ItineraryItem, error) {
	var item models.ItineraryItem
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching itinerary item %s: %w", id, err)
	}
	return &item, nil
}

// GetByOrderID fetches all items for an order, sorted by start date ascending.
// Items with no start date sort first.
func (r *mongoItineraryRepo) GetByOrderID(ctx context.Context, orderID string) ([]models.ItineraryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"orderId": orderID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing itinerary for order %s: %w", orderID, err)
	}
	defer cursor.Close(ctx)

	var items []models.ItineraryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces an itinerary item document.
func (r *mongoItineraryRepo) Update(ctx context.Context, item *models.ItineraryItem) error {
	item.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": item.ID}, item)
	if err != nil {
		return fmt.Errorf("error updating itinerary item %s: %w", item.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("itinerary item %s not found", item.ID)
	}
	return nil
}

// DeleteByID removes an itinerary item.
func (r *mongoItineraryRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting itinerary item %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("itinerary item %s not found", id)
	}
	return nil
}
