package catalogRepo

import (
	"context"

	"meditrip/database"
	"meditrip/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository serves the read-mostly hospital/doctor/hotel/flight data
// backing search and listing endpoints.
type CatalogRepository interface {
	GetHospitalByID(ctx context.Context, id string) (*models.Hospital, error)
	ListHospitals(ctx context.Context, featuredOnly bool) ([]models.Hospital, error)
	SearchHospitals(ctx context.Context, query string) ([]models.Hospital, error)

	GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error)
	ListDoctorsByHospital(ctx context.Context, hospitalID string) ([]models.Doctor, error)
	ListFeaturedDoctors(ctx context.Context) ([]models.Doctor, error)

	SearchFlights(ctx context.Context, origin, destination string) ([]models.Flight, error)
	SearchHotels(ctx context.Context, city string) ([]models.Hotel, error)
	ListFeaturedAttractions(ctx context.Context, city string) ([]models.Attraction, error)
}

type mongoCatalogRepo struct {
	hospitalColl   *mongo.Collection
	doctorColl     *mongo.Collection
	hotelColl      *mongo.Collection
	flightColl     *mongo.Collection
	attractionColl *mongo.Collection
}

// NewMongoCatalogRepo returns a new CatalogRepository instance using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	return &mongoCatalogRepo{
		hospitalColl:   database.Collection("hospitals"),
		doctorColl:     database.Collection("doctors"),
		hotelColl:      database.Collection("hotels"),
		flightColl:     database.Collection("flights"),
		attractionColl: database.Collection("attractions"),
	}
}
