package booking

import (
	"context"
	"time"

	"meditrip/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Adjustment types the estimator knows how to price.
var adjustmentTypes = map[string]bool{
	"consultation":   true,
	"examination":    true,
	"surgery":        true,
	"treatment":      true,
	"rehabilitation": true,
}

// ProposeAdjustment records a plan-change request against a confirmed order.
// The price delta comes from the estimator; the projected total is returned
// to the caller but not persisted until the adjustment is approved.
func (s *DefaultBookingService) ProposeAdjustment(ctx context.Context, req AdjustmentProposal) (*ProposalResult, error) {
	if req.OrderID == "" || req.UserID == "" || req.Type == "" || req.Reason == "" {
		return nil, NewValidationError("Order ID, user ID, type and reason are required")
	}
	if !adjustmentTypes[req.Type] {
		return nil, NewValidationError("Unknown adjustment type: " + req.Type)
	}

	var result *ProposalResult

	err := s.Orders.RunInOrderTx(ctx, req.OrderID, func(txCtx context.Context) error {
		order, err := s.Orders.GetByID(txCtx, req.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return NewNotFoundError("Order not found")
		}
		if order.UserID != req.UserID {
			return NewAuthorizationError("Order does not belong to user")
		}
		if order.Status != models.OrderStatusConfirmed {
			return NewValidationError("Only confirmed orders can be adjusted")
		}

		delta, err := s.Estimator.EstimateAdjustment(txCtx, order, req)
		if err != nil {
			return err
		}

		now := time.Now()
		adjustment := models.PlanAdjustment{
			ID:              uuid.New().String(),
			Type:            req.Type,
			Reason:          req.Reason,
			CurrentValue:    req.CurrentValue,
			NewValue:        req.NewValue,
			PriceAdjustment: delta,
			Status:          models.AdjustmentStatusPending,
			CreatedAt:       now,
		}

		order.PlanAdjustments = append(order.PlanAdjustments, adjustment)
		order.PriceAdjustmentAmount += delta
		order.PriceAdjustmentStatus = models.AdjustmentStatusPending
		order.UpdatedAt = now

		if err := s.Orders.Update(txCtx, order); err != nil {
			return err
		}

		result = &ProposalResult{
			Adjustment:     adjustment,
			NewTotalAmount: order.TotalAmount + delta,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("plan adjustment proposed",
		zap.String("orderId", req.OrderID),
		zap.String("type", req.Type),
		zap.Float64("priceAdjustment", result.Adjustment.PriceAdjustment))
	return result, nil
}
