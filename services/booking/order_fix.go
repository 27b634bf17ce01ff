package booking

import (
	"context"
	"fmt"
	"math"
	"time"

	"meditrip/models"

	"go.uber.org/zap"
)

const (
	// Baseline consultation fee applied when an order has a doctor linked
	// but no medical fee on record.
	baseConsultationFee = 200.0
	// Flat surcharge applied to the added fee only, not recomputed against
	// the full order.
	consultationFeeSurcharge = 1.01
)

// FixOrder repairs an order's hotel window and, when requested, its missing
// consultation fee. All reads and writes of one pass share a transaction
// scoped to the order id.
//
// The hotel check-in is derived from the outbound flight's departure date,
// not its landing date; that matches the booking flow that wrote the window.
func (s *DefaultBookingService) FixOrder(ctx context.Context, orderID string, addMedicalFee bool) (*OrderFixResult, error) {
	var result *OrderFixResult

	err := s.Orders.RunInOrderTx(ctx, orderID, func(txCtx context.Context) error {
		order, err := s.Orders.GetByID(txCtx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return NewNotFoundError("Order not found")
		}

		items, err := s.Itineraries.GetByOrderID(txCtx, orderID)
		if err != nil {
			return err
		}

		result = &OrderFixResult{}

		if err := s.fixHotelWindow(txCtx, items, result); err != nil {
			return err
		}

		if addMedicalFee && order.DoctorID != "" && order.MedicalFee == 0 {
			if err := s.addConsultationFee(txCtx, order, items, result); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("order fix pass completed",
		zap.String("orderId", orderID),
		zap.Bool("hotelFixed", result.HotelFixed),
		zap.Bool("medicalFeeFixed", result.MedicalFeeFixed))
	return result, nil
}

// fixHotelWindow corrects an inverted hotel stay window using the flight
// pair. Missing flights or flight dates skip the correction silently;
// missing hotel dates halt the whole pass.
func (s *DefaultBookingService) fixHotelWindow(ctx context.Context, items []models.ItineraryItem, result *OrderFixResult) error {
	var hotel *models.ItineraryItem
	var flights []*models.ItineraryItem
	for i := range items {
		switch items[i].Type {
		case models.ItineraryTypeHotel:
			if hotel == nil {
				hotel = &items[i]
			}
		case models.ItineraryTypeFlight:
			flights = append(flights, &items[i])
		}
	}
	if hotel == nil {
		return nil
	}
	if len(flights) != 2 || flights[0].StartDate == nil || flights[1].StartDate == nil {
		return nil
	}

	outbound, returnFlight := flights[0], flights[1]
	if returnFlight.StartDate.Before(*outbound.StartDate) {
		outbound, returnFlight = returnFlight, outbound
	}
	correctStart := *outbound.StartDate
	correctEnd := *returnFlight.StartDate

	if hotel.StartDate == nil || hotel.EndDate == nil {
		return NewValidationError("Hotel dates are null")
	}
	if !hotel.StartDate.After(*hotel.EndDate) {
		return nil
	}

	oldStart, oldEnd := hotel.StartDate, hotel.EndDate
	nights := int(math.Ceil(correctEnd.Sub(correctStart).Hours() / 24))

	hotel.StartDate = &correctStart
	hotel.EndDate = &correctEnd
	hotel.Description = fmt.Sprintf("%d nights accommodation", nights)
	if err := s.Itineraries.Update(ctx, hotel); err != nil {
		return err
	}

	result.HotelFixed = true
	result.HotelDates = &HotelDatesChange{
		OldStartDate: oldStart,
		OldEndDate:   oldEnd,
		NewStartDate: correctStart,
		NewEndDate:   correctEnd,
	}
	return nil
}

// addConsultationFee applies the baseline fee to the order aggregate and
// mirrors it onto the consultation ticket item when one exists.
func (s *DefaultBookingService) addConsultationFee(ctx context.Context, order *models.Order, items []models.ItineraryItem, result *OrderFixResult) error {
	oldFee := order.MedicalFee

	order.MedicalFee = baseConsultationFee
	order.Subtotal += baseConsultationFee
	order.TotalAmount += baseConsultationFee * consultationFeeSurcharge
	order.UpdatedAt = time.Now()
	if err := s.Orders.Update(ctx, order); err != nil {
		return err
	}

	for i := range items {
		if items[i].Type == models.ItineraryTypeTicket {
			items[i].Price = baseConsultationFee
			if err := s.Itineraries.Update(ctx, &items[i]); err != nil {
				return err
			}
			break
		}
	}

	result.MedicalFeeFixed = true
	result.MedicalFee = &MedicalFeeChange{
		OldMedicalFee: oldFee,
		NewMedicalFee: baseConsultationFee,
	}
	return nil
}
