package booking

import (
	"context"
	"fmt"
	"math"
	"time"

	"meditrip/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// ProcessPayment charges the order total through Stripe and moves a pending
// order to confirmed. The charged amount is always the order's stored total;
// a mismatching client amount is rejected rather than honored.
func (s *DefaultBookingService) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if req.OrderID == "" || req.UserID == "" {
		return nil, NewValidationError("Order ID and user ID are required")
	}

	var invoice *models.Invoice

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
		if order.Status != models.OrderStatusPending {
			return NewValidationError("Order is not awaiting payment")
		}
		if req.Amount != 0 && math.Abs(req.Amount-order.TotalAmount) > 0.01 {
			return NewValidationError("Payment amount does not match order total")
		}

		currency := order.Currency
		if currency == "" {
			currency = "usd"
		}

		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(int64(math.Round(order.TotalAmount * 100))),
			Currency: stripe.String(currency),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled: stripe.Bool(true),
			},
		}
		params.AddMetadata("orderId", order.ID)
		params.AddMetadata("userId", order.UserID)

		intent, err := paymentintent.New(params)
		if err != nil {
			return fmt.Errorf("failed to create payment intent: %w", err)
		}

		now := time.Now()
		order.Status = models.OrderStatusConfirmed
		order.UpdatedAt = now
		if err := s.Orders.Update(txCtx, order); err != nil {
			return err
		}

		invoice = &models.Invoice{
			InvoiceID: uuid.New().String(),
			OrderID:   order.ID,
			UserID:    order.UserID,
			PaymentID: intent.ID,
			Amount:    order.TotalAmount,
			Currency:  currency,
			Method:    req.Method,
			Status:    "paid",
			CreatedAt: now,
			UpdatedAt: now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("order payment processed",
		zap.String("orderId", req.OrderID),
		zap.String("paymentId", invoice.PaymentID),
		zap.Float64("amount", invoice.Amount))
	return invoice, nil
}
