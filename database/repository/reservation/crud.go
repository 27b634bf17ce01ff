package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"meditrip/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoReservationRepo) Create(ctx context.Context, reservation *models.ServiceReservation) error {
	if reservation.ID == "" {
		reservation.ID = uuid.New().String()
	}
	reservation.CreatedAt = time.Now()
	reservation.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, reservation); err != nil {
		return fmt.Errorf("error creating service reservation: %w", err)
	}
	return nil
}

func (r *mongoReservationRepo) GetByOrderID(ctx context.Context, orderID string) ([]models.ServiceReservation, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"orderId": orderID})
	if err != nil {
		return nil, fmt.Errorf("error listing reservations for order %s: %w", orderID, err)
	}
	defer cursor.Close(ctx)

	var reservations []models.ServiceReservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *mongoReservationRepo) MarkNotified(ctx context.Context, id string) error {
	update := bson.M{"$set": bson.M{"notificationSent": true, "updatedAt": time.Now()}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error marking reservation %s notified: %w", id, err)
	}
	return nil
}
