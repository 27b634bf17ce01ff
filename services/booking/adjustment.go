package booking

import (
	"context"
	"time"

	"meditrip/models"

	"go.uber.org/zap"
)

// DecideAdjustment resolves one pending plan adjustment. Approval stamps the
// record in place; rejection removes it and reverses its delta on the order
// total. The whole decision runs inside the order's transaction so the
// adjustment list, the aggregate amount and the total move together.
func (s *DefaultBookingService) DecideAdjustment(ctx context.Context, req AdjustmentDecision) (*AdjustmentResult, error) {
	if req.OrderID == "" || req.AdjustmentID == "" || req.UserID == "" {
		return nil, NewValidationError("Order ID, adjustment ID and user ID are required")
	}
	if req.Action != AdjustmentActionApprove && req.Action != AdjustmentActionReject {
		return nil, NewValidationError("Action must be approve or reject")
	}

	var result *AdjustmentResult

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

		idx := -1
		for i := range order.PlanAdjustments {
			if order.PlanAdjustments[i].ID == req.AdjustmentID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return NewNotFoundError("Adjustment not found")
		}

		if req.Action == AdjustmentActionApprove {
			result, err = s.approveAdjustment(txCtx, order, idx, req.Reason)
		} else {
			result, err = s.rejectAdjustment(txCtx, order, idx)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("plan adjustment decided",
		zap.String("orderId", req.OrderID),
		zap.String("adjustmentId", req.AdjustmentID),
		zap.String("action", req.Action))
	return result, nil
}

// approveAdjustment marks the record approved. The order-level status turns
// approved only once every adjustment in the list is, else stays pending.
func (s *DefaultBookingService) approveAdjustment(ctx context.Context, order *models.Order, idx int, reason string) (*AdjustmentResult, error) {
	now := time.Now()
	adj := &order.PlanAdjustments[idx]
	adj.Status = models.AdjustmentStatusApproved
	adj.ApprovedAt = &now
	adj.ApprovalReason = reason

	allApproved := true
	for _, a := range order.PlanAdjustments {
		if a.Status != models.AdjustmentStatusApproved {
			allApproved = false
			break
		}
	}
	if allApproved {
		order.PriceAdjustmentStatus = models.AdjustmentStatusApproved
	} else {
		order.PriceAdjustmentStatus = models.AdjustmentStatusPending
	}
	order.UpdatedAt = now

	if err := s.Orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return &AdjustmentResult{Message: "Adjustment approved"}, nil
}

// rejectAdjustment removes the record, recomputes the aggregate from the
// survivors and takes the rejected delta back off the total.
func (s *DefaultBookingService) rejectAdjustment(ctx context.Context, order *models.Order, idx int) (*AdjustmentResult, error) {
	rejected := order.PlanAdjustments[idx]
	order.PlanAdjustments = append(order.PlanAdjustments[:idx], order.PlanAdjustments[idx+1:]...)

	order.PriceAdjustmentAmount = order.ApprovedAdjustmentTotal()
	order.TotalAmount -= rejected.PriceAdjustment

	// Any surviving adjustment, approved or not, leaves the order awaiting
	// a fresh recompute; an empty list clears the status.
	if len(order.PlanAdjustments) > 0 {
		order.PriceAdjustmentStatus = models.AdjustmentStatusPending
	} else {
		order.PriceAdjustmentStatus = ""
	}
	order.UpdatedAt = time.Now()

	if err := s.Orders.Update(ctx, order); err != nil {
		return nil, err
	}

	newTotal := order.TotalAmount
	return &AdjustmentResult{
		Message:        "Adjustment rejected and removed",
		NewTotalAmount: &newTotal,
	}, nil
}
