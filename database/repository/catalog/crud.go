package catalogRepo

import (
	"context"
	"errors"
	"fmt"

	"meditrip/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoCatalogRepo) GetHospitalByID(ctx context.Context, id string) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.hospitalColl.FindOne(ctx, bson.M{"id": id, "isActive": true}).Decode(&hospital)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching hospital %s: %w", id, err)
	}
	return &hospital, nil
}

func (r *mongoCatalogRepo) ListHospitals(ctx context.Context, featuredOnly bool) ([]models.Hospital, error) {
	filter := bson.M{"isActive": true}
	if featuredOnly {
		filter["isFeatured"] = true
	}
	cursor, err := r.hospitalColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing hospitals: %w", err)
	}
	defer cursor.Close(ctx)

	var hospitals []models.Hospital
	if err := cursor.All(ctx, &hospitals); err != nil {
		return nil, err
	}
	return hospitals, nil
}

// SearchHospitals matches name or location with a case-insensitive prefix-free
// regex, capped to 50 results.
func (r *mongoCatalogRepo) SearchHospitals(ctx context.Context, query string) ([]models.Hospital, error) {
	pattern := bson.M{"$regex": query, "$options": "i"}
	filter := bson.M{
		"isActive": true,
		"$or": bson.A{
			bson.M{"nameEn": pattern},
			bson.M{"location": pattern},
			bson.M{"specialties": pattern},
		},
	}
	opts := options.Find().SetLimit(50)
	cursor, err := r.hospitalColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error searching hospitals: %w", err)
	}
	defer cursor.Close(ctx)

	var hospitals []models.Hospital
	if err := cursor.All(ctx, &hospitals); err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *mongoCatalogRepo) GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.doctorColl.FindOne(ctx, bson.M{"id": id, "isActive": true}).Decode(&doctor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching doctor %s: %w", id, err)
	}
	return &doctor, nil
}

func (r *mongoCatalogRepo) ListDoctorsByHospital(ctx context.Context, hospitalID string) ([]models.Doctor, error) {
	cursor, err := r.doctorColl.Find(ctx, bson.M{"hospitalId": hospitalID, "isActive": true})
	if err != nil {
		return nil, fmt.Errorf("error listing doctors for hospital %s: %w", hospitalID, err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *mongoCatalogRepo) ListFeaturedDoctors(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := r.doctorColl.Find(ctx, bson.M{"isFeatured": true, "isActive": true})
	if err != nil {
		return nil, fmt.Errorf("error listing featured doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *mongoCatalogRepo) SearchFlights(ctx context.Context, origin, destination string) ([]models.Flight, error) {
	filter := bson.M{
		"origin":      bson.M{"$regex": "^" + origin + "$", "$options": "i"},
		"destination": bson.M{"$regex": "^" + destination + "$", "$options": "i"},
		"isActive":    true,
	}
	opts := options.Find().SetSort(bson.D{{Key: "price", Value: 1}}).SetLimit(50)
	cursor, err := r.flightColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error searching flights: %w", err)
	}
	defer cursor.Close(ctx)

	var flights []models.Flight
	if err := cursor.All(ctx, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *mongoCatalogRepo) SearchHotels(ctx context.Context, city string) ([]models.Hotel, error) {
	filter := bson.M{
		"city":     bson.M{"$regex": "^" + city + "$", "$options": "i"},
		"isActive": true,
	}
	opts := options.Find().SetSort(bson.D{{Key: "basePricePerNight", Value: 1}}).SetLimit(50)
	cursor, err := r.hotelColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error searching hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *mongoCatalogRepo) ListFeaturedAttractions(ctx context.Context, city string) ([]models.Attraction, error) {
	filter := bson.M{"isFeatured": true, "isActive": true}
	if city != "" {
		filter["city"] = bson.M{"$regex": "^" + city + "$", "$options": "i"}
	}
	cursor, err := r.attractionColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing attractions: %w", err)
	}
	defer cursor.Close(ctx)

	var attractions []models.Attraction
	if err := cursor.All(ctx, &attractions); err != nil {
		return nil, err
	}
	return attractions, nil
}
