package reservationRepo

import (
	"context"

	"meditrip/database"
	"meditrip/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository persists provider confirmation records.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.ServiceReservation) error
	GetByOrderID(ctx context.Context, orderID string) ([]models.ServiceReservation, error)
	MarkNotified(ctx context.Context, id string) error
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo returns a new ReservationRepository instance using MongoDB.
func NewMongoReservationRepo() ReservationRepository {
	return &mongoReservationRepo{
		coll: database.Collection("service_reservations"),
	}
}
