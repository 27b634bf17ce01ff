package booking

import (
	"context"
	"time"

	"meditrip/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmReservation records a provider booking confirmation against an order
// and, when the request names an itinerary item, marks that item confirmed
// with the provider reference. The owner is notified asynchronously.
func (s *DefaultBookingService) ConfirmReservation(ctx context.Context, req ReservationRequest) (*models.ServiceReservation, error) {
	if req.OrderID == "" || req.Type == "" || req.ProviderName == "" {
		return nil, NewValidationError("Order ID, type and provider name are required")
	}

	order, err := s.Orders.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, NewNotFoundError("Order not found")
	}

	now := time.Now()
	reservation := &models.ServiceReservation{
		ID:                uuid.New().String(),
		OrderID:           req.OrderID,
		ItineraryID:       req.ItineraryID,
		Type:              req.Type,
		ProviderName:      req.ProviderName,
		ProviderReference: req.ProviderReference,
		Status:            models.ItineraryStatusConfirmed,
		ReservationDate:   now,
		ConfirmationDate:  &now,
		Price:             req.Price,
		Currency:          req.Currency,
		Details:           req.Details,
		Remarks:           req.Remarks,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.Reservations.Create(ctx, reservation); err != nil {
		return nil, err
	}

	if req.ItineraryID != "" {
		item, err := s.Itineraries.GetByID(ctx, req.ItineraryID)
		if err != nil {
			return nil, err
		}
		if item != nil {
			item.Status = models.ItineraryStatusConfirmed
			item.BookingConfirmation = req.ProviderReference
			if err := s.Itineraries.Update(ctx, item); err != nil {
				return nil, err
			}
		}
	}

	if s.Notification != nil {
		if err := s.Notification.EnqueueReservationNotice(ctx, order.UserID, order.ID, reservation.ID, req.ProviderReference); err != nil {
			// Notification delivery is best effort; the reservation stands.
			s.Logger.Warn("failed to enqueue reservation notice",
				zap.String("orderId", order.ID), zap.Error(err))
		}
	}

	s.Logger.Info("service reservation confirmed",
		zap.String("orderId", req.OrderID),
		zap.String("provider", req.ProviderName),
		zap.String("reference", req.ProviderReference))
	return reservation, nil
}

// ListReservations returns the provider confirmations recorded for an order.
func (s *DefaultBookingService) ListReservations(ctx context.Context, orderID string) ([]models.ServiceReservation, error) {
	if orderID == "" {
		return nil, NewValidationError("Order ID is required")
	}
	order, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, NewNotFoundError("Order not found")
	}
	return s.Reservations.GetByOrderID(ctx, orderID)
}

// GetItinerary returns the order's itinerary items sorted by start date.
func (s *DefaultBookingService) GetItinerary(ctx context.Context, orderID string) ([]models.ItineraryItem, error) {
	if orderID == "" {
		return nil, NewValidationError("Order ID is required")
	}
	order, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, NewNotFoundError("Order not found")
	}
	return s.Itineraries.GetByOrderID(ctx, orderID)
}
