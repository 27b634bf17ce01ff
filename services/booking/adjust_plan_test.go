package booking

import (
	"context"
	"testing"

	"meditrip/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedOrder() *models.Order {
	return &models.Order{
		ID:          "ord-1",
		UserID:      "u1",
		Status:      models.OrderStatusConfirmed,
		TotalAmount: 8000,
	}
}

func TestProposeAdjustment_RecordsPendingAdjustment(t *testing.T) {
	orders := newFakeOrderRepo(confirmedOrder())
	svc := newTestService(orders, newFakeItineraryRepo())
	svc.Estimator = &fixedEstimator{price: 650}

	result, err := svc.ProposeAdjustment(context.Background(), AdjustmentProposal{
		OrderID:      "ord-1",
		UserID:       "u1",
		Type:         "examination",
		Reason:       "additional MRI requested",
		CurrentValue: "basic examination",
		NewValue:     "basic examination + MRI",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Adjustment.ID)
	assert.Equal(t, models.AdjustmentStatusPending, result.Adjustment.Status)
	assert.Equal(t, 650.0, result.Adjustment.PriceAdjustment)
	assert.Equal(t, 8650.0, result.NewTotalAmount)

	updated, _ := orders.GetByID(context.Background(), "ord-1")
	require.Len(t, updated.PlanAdjustments, 1)
	assert.Equal(t, 650.0, updated.PriceAdjustmentAmount)
	assert.Equal(t, models.AdjustmentStatusPending, updated.PriceAdjustmentStatus)
	// The projected total is not applied until approval.
	assert.Equal(t, 8000.0, updated.TotalAmount)
}

func TestProposeAdjustment_OnlyConfirmedOrders(t *testing.T) {
	order := confirmedOrder()
	order.Status = models.OrderStatusPending

	svc := newTestService(newFakeOrderRepo(order), newFakeItineraryRepo())

	_, err := svc.ProposeAdjustment(context.Background(), AdjustmentProposal{
		OrderID: "ord-1",
		UserID:  "u1",
		Type:    "surgery",
		Reason:  "upgrade",
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Only confirmed orders can be adjusted", vErr.Message)
}

func TestProposeAdjustment_UnknownType(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(confirmedOrder()), newFakeItineraryRepo())

	_, err := svc.ProposeAdjustment(context.Background(), AdjustmentProposal{
		OrderID: "ord-1",
		UserID:  "u1",
		Type:    "spa",
		Reason:  "relaxation",
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "Unknown adjustment type")
}

func TestProposeAdjustment_MissingUserID(t *testing.T) {
	orders := newFakeOrderRepo(confirmedOrder())
	svc := newTestService(orders, newFakeItineraryRepo())

	_, err := svc.ProposeAdjustment(context.Background(), AdjustmentProposal{
		OrderID: "ord-1",
		Type:    "treatment",
		Reason:  "change of plan",
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Order ID, user ID, type and reason are required", vErr.Message)

	updated, _ := orders.GetByID(context.Background(), "ord-1")
	assert.Empty(t, updated.PlanAdjustments)
}

func TestProposeAdjustment_WrongOwner(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(confirmedOrder()), newFakeItineraryRepo())

	_, err := svc.ProposeAdjustment(context.Background(), AdjustmentProposal{
		OrderID: "ord-1",
		UserID:  "intruder",
		Type:    "treatment",
		Reason:  "change of plan",
	})
	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
}

func TestProposeAdjustment_AccumulatesDeltas(t *testing.T) {
	orders := newFakeOrderRepo(confirmedOrder())
	svc := newTestService(orders, newFakeItineraryRepo())
	svc.Estimator = &fixedEstimator{price: 300}

	for i := 0; i < 2; i++ {
		_, err := svc.ProposeAdjustment(context.Background(), AdjustmentProposal{
			OrderID: "ord-1",
			UserID:  "u1",
			Type:    "consultation",
			Reason:  "follow-up visit",
		})
		require.NoError(t, err)
	}

	updated, _ := orders.GetByID(context.Background(), "ord-1")
	assert.Len(t, updated.PlanAdjustments, 2)
	assert.Equal(t, 600.0, updated.PriceAdjustmentAmount)
}
