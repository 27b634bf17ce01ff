package catalog

import (
	"context"
	"testing"

	"meditrip/models"
	"meditrip/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCatalogRepo struct {
	hospitals map[string]*models.Hospital
	doctors   map[string]*models.Doctor
}

func (r *fakeCatalogRepo) GetHospitalByID(ctx context.Context, id string) (*models.Hospital, error) {
	return r.hospitals[id], nil
}

func (r *fakeCatalogRepo) ListHospitals(ctx context.Context, featuredOnly bool) ([]models.Hospital, error) {
	var out []models.Hospital
	for _, h := range r.hospitals {
		if !featuredOnly || h.IsFeatured {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) SearchHospitals(ctx context.Context, query string) ([]models.Hospital, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error) {
	return r.doctors[id], nil
}

func (r *fakeCatalogRepo) ListDoctorsByHospital(ctx context.Context, hospitalID string) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range r.doctors {
		if d.HospitalID == hospitalID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) ListFeaturedDoctors(ctx context.Context) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range r.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeCatalogRepo) SearchFlights(ctx context.Context, origin, destination string) ([]models.Flight, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) SearchHotels(ctx context.Context, city string) ([]models.Hotel, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) ListFeaturedAttractions(ctx context.Context, city string) ([]models.Attraction, error) {
	return nil, nil
}

func newCatalogService() *DefaultCatalogService {
	return &DefaultCatalogService{
		Repo: &fakeCatalogRepo{
			hospitals: map[string]*models.Hospital{
				"h1": {ID: "h1", NameEn: "Jilin University First Hospital", IsFeatured: true},
				"h2": {ID: "h2", NameEn: "Changchun Orthopedic Center"},
			},
			doctors: map[string]*models.Doctor{
				"d1": {ID: "d1", NameEn: "Dr. Li", HospitalID: "h1"},
				"d2": {ID: "d2", NameEn: "Dr. Wang", HospitalID: "h2"},
			},
		},
		Logger: zap.NewNop(),
	}
}

func TestGetHospital(t *testing.T) {
	svc := newCatalogService()

	h, err := svc.GetHospital(context.Background(), "h1")
	require.NoError(t, err)
	assert.Equal(t, "Jilin University First Hospital", h.NameEn)

	_, err = svc.GetHospital(context.Background(), "missing")
	var nfErr *booking.NotFoundError
	require.ErrorAs(t, err, &nfErr)

	_, err = svc.GetHospital(context.Background(), "")
	var vErr *booking.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestListHospitals_FeaturedFilter(t *testing.T) {
	svc := newCatalogService()

	all, err := svc.ListHospitals(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	featured, err := svc.ListHospitals(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "h1", featured[0].ID)
}

func TestListDoctors_ScopedToHospital(t *testing.T) {
	svc := newCatalogService()

	scoped, err := svc.ListDoctors(context.Background(), "h1")
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "d1", scoped[0].ID)

	all, err := svc.ListDoctors(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSearchValidation(t *testing.T) {
	svc := newCatalogService()

	_, err := svc.SearchHospitals(context.Background(), "   ")
	var vErr *booking.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = svc.SearchFlights(context.Background(), "", "Changchun")
	require.ErrorAs(t, err, &vErr)

	_, err = svc.SearchHotels(context.Background(), "")
	require.ErrorAs(t, err, &vErr)
}
