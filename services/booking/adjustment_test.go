package booking

import (
	"context"
	"testing"

	"meditrip/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderWithAdjustments() *models.Order {
	return &models.Order{
		ID:          "ord-1",
		UserID:      "u1",
		Status:      models.OrderStatusConfirmed,
		TotalAmount: 5000,
		PlanAdjustments: []models.PlanAdjustment{
			{ID: "adj-1", Type: "examination", PriceAdjustment: 500, Status: models.AdjustmentStatusPending},
			{ID: "adj-2", Type: "treatment", PriceAdjustment: 1000, Status: models.AdjustmentStatusApproved},
		},
		PriceAdjustmentAmount: 1500,
		PriceAdjustmentStatus: models.AdjustmentStatusPending,
	}
}

func TestDecideAdjustment_Approve(t *testing.T) {
	orders := newFakeOrderRepo(orderWithAdjustments())
	svc := newTestService(orders, newFakeItineraryRepo())

	result, err := svc.DecideAdjustment(context.Background(), AdjustmentDecision{
		OrderID:      "ord-1",
		AdjustmentID: "adj-1",
		Action:       AdjustmentActionApprove,
		Reason:       "agreed with surgeon",
		UserID:       "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Adjustment approved", result.Message)
	assert.Nil(t, result.NewTotalAmount)

	updated, _ := orders.GetByID(context.Background(), "ord-1")
	adj := updated.PlanAdjustments[0]
	assert.Equal(t, models.AdjustmentStatusApproved, adj.Status)
	assert.NotNil(t, adj.ApprovedAt)
	assert.Equal(t, "agreed with surgeon", adj.ApprovalReason)

	// Both adjustments are now approved, so the order-level status follows.
	assert.Equal(t, models.AdjustmentStatusApproved, updated.PriceAdjustmentStatus)
}

func TestDecideAdjustment_RejectRemovesAndReverses(t *testing.T) {
	orders := newFakeOrderRepo(orderWithAdjustments())
	svc := newTestService(orders, newFakeItineraryRepo())

	result, err := svc.DecideAdjustment(context.Background(), AdjustmentDecision{
		OrderID:      "ord-1",
		AdjustmentID: "adj-1",
		Action:       AdjustmentActionReject,
		UserID:       "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Adjustment rejected and removed", result.Message)
	require.NotNil(t, result.NewTotalAmount)
	assert.Equal(t, 4500.0, *result.NewTotalAmount)

	updated, _ := orders.GetByID(context.Background(), "ord-1")
	require.Len(t, updated.PlanAdjustments, 1)
	assert.Equal(t, "adj-2", updated.PlanAdjustments[0].ID)
	// Aggregate recomputed from the surviving approved adjustment.
	assert.Equal(t, 1000.0, updated.PriceAdjustmentAmount)
	assert.Equal(t, 4500.0, updated.TotalAmount)
	// No pending adjustments remain but the list is not empty.
	assert.Equal(t, models.AdjustmentStatusPending, updated.PriceAdjustmentStatus)
}

func TestDecideAdjustment_RejectLastClearsStatus(t *testing.T) {
	order := orderWithAdjustments()
	order.PlanAdjustments = order.PlanAdjustments[:1]
	order.PriceAdjustmentAmount = 500

	orders := newFakeOrderRepo(order)
	svc := newTestService(orders, newFakeItineraryRepo())

	_, err := svc.DecideAdjustment(context.Background(), AdjustmentDecision{
		OrderID:      "ord-1",
		AdjustmentID: "adj-1",
		Action:       AdjustmentActionReject,
		UserID:       "u1",
	})
	require.NoError(t, err)

	updated, _ := orders.GetByID(context.Background(), "ord-1")
	assert.Empty(t, updated.PlanAdjustments)
	assert.Equal(t, 0.0, updated.PriceAdjustmentAmount)
	assert.Equal(t, "", updated.PriceAdjustmentStatus)
}

func TestDecideAdjustment_Validation(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(orderWithAdjustments()), newFakeItineraryRepo())

	cases := []struct {
		name string
		req  AdjustmentDecision
		want string
	}{
		{
			name: "missing ids",
			req:  AdjustmentDecision{Action: AdjustmentActionApprove, UserID: "u1"},
			want: "Order ID, adjustment ID and user ID are required",
		},
		{
			name: "missing user id",
			req:  AdjustmentDecision{OrderID: "ord-1", AdjustmentID: "adj-1", Action: AdjustmentActionApprove},
			want: "Order ID, adjustment ID and user ID are required",
		},
		{
			name: "bad action",
			req:  AdjustmentDecision{OrderID: "ord-1", AdjustmentID: "adj-1", Action: "defer", UserID: "u1"},
			want: "Action must be approve or reject",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.DecideAdjustment(context.Background(), tc.req)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.want, vErr.Message)
		})
	}
}

func TestDecideAdjustment_OrderNotFound(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(), newFakeItineraryRepo())

	_, err := svc.DecideAdjustment(context.Background(), AdjustmentDecision{
		OrderID:      "missing",
		AdjustmentID: "adj-1",
		Action:       AdjustmentActionApprove,
		UserID:       "u1",
	})
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "Order not found", nfErr.Message)
}

func TestDecideAdjustment_AdjustmentNotFound(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(orderWithAdjustments()), newFakeItineraryRepo())

	_, err := svc.DecideAdjustment(context.Background(), AdjustmentDecision{
		OrderID:      "ord-1",
		AdjustmentID: "adj-99",
		Action:       AdjustmentActionApprove,
		UserID:       "u1",
	})
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "Adjustment not found", nfErr.Message)
}

func TestDecideAdjustment_WrongOwner(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(orderWithAdjustments()), newFakeItineraryRepo())

	_, err := svc.DecideAdjustment(context.Background(), AdjustmentDecision{
		OrderID:      "ord-1",
		AdjustmentID: "adj-1",
		Action:       AdjustmentActionApprove,
		UserID:       "someone-else",
	})
	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
}

func TestDecideAdjustment_EmptyUserIDDoesNotMutate(t *testing.T) {
	orders := newFakeOrderRepo(orderWithAdjustments())
	svc := newTestService(orders, newFakeItineraryRepo())

	_, err := svc.DecideAdjustment(context.Background(), AdjustmentDecision{
		OrderID:      "ord-1",
		AdjustmentID: "adj-1",
		Action:       AdjustmentActionReject,
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	// The rejection must not have gone through without an owner check.
	updated, _ := orders.GetByID(context.Background(), "ord-1")
	assert.Len(t, updated.PlanAdjustments, 2)
	assert.Equal(t, 5000.0, updated.TotalAmount)
}

func TestDecideAdjustment_ApprovalKeepsStatusPendingWhileOthersWait(t *testing.T) {
	order := orderWithAdjustments()
	order.PlanAdjustments[1].Status = models.AdjustmentStatusPending
	order.PriceAdjustmentStatus = ""

	orders := newFakeOrderRepo(order)
	svc := newTestService(orders, newFakeItineraryRepo())

	_, err := svc.DecideAdjustment(context.Background(), AdjustmentDecision{
		OrderID:      "ord-1",
		AdjustmentID: "adj-1",
		Action:       AdjustmentActionApprove,
		UserID:       "u1",
	})
	require.NoError(t, err)

	updated, _ := orders.GetByID(context.Background(), "ord-1")
	assert.Equal(t, models.AdjustmentStatusApproved, updated.PlanAdjustments[0].Status)
	// adj-2 is still pending, so the order-level status must not flip.
	assert.Equal(t, models.AdjustmentStatusPending, updated.PriceAdjustmentStatus)
}

func TestDecideAdjustment_RejectWithApprovedSurvivorsSetsPending(t *testing.T) {
	order := orderWithAdjustments()
	order.PlanAdjustments[0].Status = models.AdjustmentStatusApproved
	order.PriceAdjustmentStatus = models.AdjustmentStatusApproved

	orders := newFakeOrderRepo(order)
	svc := newTestService(orders, newFakeItineraryRepo())

	_, err := svc.DecideAdjustment(context.Background(), AdjustmentDecision{
		OrderID:      "ord-1",
		AdjustmentID: "adj-1",
		Action:       AdjustmentActionReject,
		UserID:       "u1",
	})
	require.NoError(t, err)

	updated, _ := orders.GetByID(context.Background(), "ord-1")
	require.Len(t, updated.PlanAdjustments, 1)
	// Removal reopens the order-level status even though only approved
	// adjustments survive.
	assert.Equal(t, models.AdjustmentStatusPending, updated.PriceAdjustmentStatus)
}
