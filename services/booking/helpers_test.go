package booking

import (
	"context"
	"fmt"
	"time"

	"meditrip/models"

	"go.uber.org/zap"
)

// In-memory repository fakes for the service tests.

type fakeOrderRepo struct {
	orders  map[string]*models.Order
	txCount int
}

func newFakeOrderRepo(orders ...*models.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[string]*models.Order)}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}
	return repo
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *models.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return fmt.Errorf("order %s not found", order.ID)
	}
	cp := *order
	cp.Version++
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) RunInOrderTx(ctx context.Context, orderID string, fn func(txCtx context.Context) error) error {
	r.txCount++
	// Wrap like the mongo implementation so tests exercise unwrapping.
	if err := fn(ctx); err != nil {
		return fmt.Errorf("order %s transaction failed: %w", orderID, err)
	}
	return nil
}

type fakeItineraryRepo struct {
	items map[string]*models.ItineraryItem
}

func newFakeItineraryRepo(items ...*models.ItineraryItem) *fakeItineraryRepo {
	repo := &fakeItineraryRepo{items: make(map[string]*models.ItineraryItem)}
	for _, it := range items {
		repo.items[it.ID] = it
	}
	return repo
}

func (r *fakeItineraryRepo) Create(ctx context.Context, item *models.ItineraryItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItineraryRepo) GetByID(ctx context.Context, id string) (*models.ItineraryItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItineraryRepo) GetByOrderID(ctx context.Context, orderID string) ([]models.ItineraryItem, error) {
	var out []models.ItineraryItem
	for _, it := range r.items {
		if it.OrderID == orderID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *fakeItineraryRepo) Update(ctx context.Context, item *models.ItineraryItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("itinerary item %s not found", item.ID)
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItineraryRepo) DeleteByID(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type fakeReservationRepo struct {
	reservations []*models.ServiceReservation
}

func (r *fakeReservationRepo) Create(ctx context.Context, reservation *models.ServiceReservation) error {
	r.reservations = append(r.reservations, reservation)
	return nil
}

func (r *fakeReservationRepo) GetByOrderID(ctx context.Context, orderID string) ([]models.ServiceReservation, error) {
	var out []models.ServiceReservation
	for _, res := range r.reservations {
		if res.OrderID == orderID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) MarkNotified(ctx context.Context, id string) error {
	for _, res := range r.reservations {
		if res.ID == id {
			res.NotificationSent = true
		}
	}
	return nil
}

type fixedEstimator struct {
	price float64
	err   error
}

func (e *fixedEstimator) EstimateAdjustment(ctx context.Context, order *models.Order, proposal AdjustmentProposal) (float64, error) {
	return e.price, e.err
}

type recordingNotifier struct {
	notices []string
}

func (n *recordingNotifier) EnqueueReservationNotice(ctx context.Context, userID, orderID, reservationID, reference string) error {
	n.notices = append(n.notices, orderID+":"+reference)
	return nil
}

func newTestService(orders *fakeOrderRepo, items *fakeItineraryRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Orders:       orders,
		Itineraries:  items,
		Reservations: &fakeReservationRepo{},
		Estimator:    &fixedEstimator{price: 500},
		Notification: &recordingNotifier{},
		Logger:       zap.NewNop(),
	}
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}
