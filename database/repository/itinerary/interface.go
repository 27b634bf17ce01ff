package itineraryRepo

import (
	"context"

	"meditrip/database"
	"meditrip/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ItineraryRepository persists itinerary line items per order.
type ItineraryRepository interface {
	Create(ctx context.Context, item *models.ItineraryItem) error
	GetByID(ctx context.Context, id string) (*models.ItineraryItem, error)
	GetByOrderID(ctx context.Context, orderID string) ([]models.ItineraryItem, error)
	Update(ctx context.Context, item *models.ItineraryItem) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoItineraryRepo struct {
	coll *mongo.Collection
}

// NewMongoItineraryRepo returns a new ItineraryRepository instance using MongoDB.
func NewMongoItineraryRepo() ItineraryRepository {
	return &mongoItineraryRepo{
		coll: database.Collection("itineraries"),
	}
}
