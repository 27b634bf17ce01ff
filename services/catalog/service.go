package catalog

import (
	"context"
	"strings"

	catalogRepo "meditrip/database/repository/catalog"
	"meditrip/models"
	"meditrip/services/booking"

	"go.uber.org/zap"
)

// CatalogService exposes the hospital/doctor/travel search surface.
type CatalogService interface {
	GetHospital(ctx context.Context, id string) (*models.Hospital, error)
	ListHospitals(ctx context.Context, featuredOnly bool) ([]models.Hospital, error)
	SearchHospitals(ctx context.Context, query string) ([]models.Hospital, error)
	GetDoctor(ctx context.Context, id string) (*models.Doctor, error)
	ListDoctors(ctx context.Context, hospitalID string) ([]models.Doctor, error)
	SearchFlights(ctx context.Context, origin, destination string) ([]models.Flight, error)
	SearchHotels(ctx context.Context, city string) ([]models.Hotel, error)
	ListAttractions(ctx context.Context, city string) ([]models.Attraction, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo   catalogRepo.CatalogRepository
	Logger *zap.Logger
}

func (s *DefaultCatalogService) GetHospital(ctx context.Context, id string) (*models.Hospital, error) {
	if id == "" {
		return nil, booking.NewValidationError("Hospital ID is required")
	}
	h, err := s.Repo.GetHospitalByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, booking.NewNotFoundError("Hospital not found")
	}
	return h, nil
}

func (s *DefaultCatalogService) ListHospitals(ctx context.Context, featuredOnly bool) ([]models.Hospital, error) {
	return s.Repo.ListHospitals(ctx, featuredOnly)
}

func (s *DefaultCatalogService) SearchHospitals(ctx context.Context, query string) ([]models.Hospital, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, booking.NewValidationError("Search query is required")
	}
	return s.Repo.SearchHospitals(ctx, query)
}

func (s *DefaultCatalogService) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	if id == "" {
		return nil, booking.NewValidationError("Doctor ID is required")
	}
	d, err := s.Repo.GetDoctorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, booking.NewNotFoundError("Doctor not found")
	}
	return d, nil
}

// ListDoctors returns a hospital's doctors, or the featured set when no
// hospital is given.
func (s *DefaultCatalogService) ListDoctors(ctx context.Context, hospitalID string) ([]models.Doctor, error) {
	if hospitalID == "" {
		return s.Repo.ListFeaturedDoctors(ctx)
	}
	return s.Repo.ListDoctorsByHospital(ctx, hospitalID)
}

func (s *DefaultCatalogService) SearchFlights(ctx context.Context, origin, destination string) ([]models.Flight, error) {
	if origin == "" || destination == "" {
		return nil, booking.NewValidationError("Origin and destination are required")
	}
	return s.Repo.SearchFlights(ctx, origin, destination)
}

func (s *DefaultCatalogService) SearchHotels(ctx context.Context, city string) ([]models.Hotel, error) {
	if city == "" {
		return nil, booking.NewValidationError("City is required")
	}
	return s.Repo.SearchHotels(ctx, city)
}

func (s *DefaultCatalogService) ListAttractions(ctx context.Context, city string) ([]models.Attraction, error) {
	return s.Repo.ListFeaturedAttractions(ctx, city)
}
