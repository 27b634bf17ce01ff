package booking

import (
	"context"
	"sort"
	"time"

	"meditrip/models"

	"go.uber.org/zap"
)

const (
	// Flight time of the domestic connecting leg on the return itinerary.
	connectingLegMinutes = 120
	// Stored timestamps within this tolerance of the recomputed chain are
	// left untouched, so repeat calls are no-ops.
	segmentTolerance = time.Second
)

// flightPair extracts the outbound/return flight items from an order's
// itinerary, sorted by start date ascending. requireEnd additionally demands
// end dates on both legs.
func flightPair(items []models.ItineraryItem, requireEnd bool) (outbound, ret *models.ItineraryItem, err error) {
	var flights []models.ItineraryItem
	for _, item := range items {
		if item.Type == models.ItineraryTypeFlight {
			flights = append(flights, item)
		}
	}
	if len(flights) != 2 {
		return nil, nil, NewValidationError("Expected 2 flight itineraries")
	}
	for _, f := range flights {
		if f.StartDate == nil {
			if requireEnd {
				return nil, nil, NewValidationError("Both flights must have start and end dates")
			}
			return nil, nil, NewValidationError("Both flights must have start dates")
		}
		if requireEnd && f.EndDate == nil {
			return nil, nil, NewValidationError("Both flights must have start and end dates")
		}
	}
	sort.Slice(flights, func(i, j int) bool {
		return flights[i].StartDate.Before(*flights[j].StartDate)
	})
	return &flights[0], &flights[1], nil
}

func summarize(item *models.ItineraryItem) FlightSummary {
	return FlightSummary{
		ID:        item.ID,
		Name:      item.Name,
		StartDate: item.StartDate,
		EndDate:   item.EndDate,
		Location:  item.Location,
	}
}

// FixReturnFlight recomputes the connecting-segment chain of the return
// flight. The second segment must depart at the first segment's arrival plus
// the recorded layover and land two hours later; when the stored timestamps
// drift outside tolerance the corrected chain, end date and duration are
// written back. Idempotent: a second pass reports fixed=false.
func (s *DefaultBookingService) FixReturnFlight(ctx context.Context, orderID string) (*FlightFixResult, error) {
	var result *FlightFixResult

	err := s.Orders.RunInOrderTx(ctx, orderID, func(txCtx context.Context) error {
		items, err := s.Itineraries.GetByOrderID(txCtx, orderID)
		if err != nil {
			return err
		}
		outbound, returnFlight, err := flightPair(items, false)
		if err != nil {
			return err
		}

		fixed := false
		meta := returnFlight.Metadata
		if meta != nil && meta.FlightDetails != nil && len(meta.FlightDetails.Segments) == 2 {
			details := meta.FlightDetails
			first := details.Segments[0]
			second := details.Segments[1]

			layover := time.Duration(meta.LayoverMinutes) * time.Minute
			correctDeparture := first.ArrivalTime.Add(layover)
			correctArrival := correctDeparture.Add(connectingLegMinutes * time.Minute)

			departureDrift := absDuration(second.DepartureTime.Sub(correctDeparture))
			arrivalDrift := absDuration(second.ArrivalTime.Sub(correctArrival))

			if departureDrift > segmentTolerance || arrivalDrift > segmentTolerance {
				details.Segments[1].DepartureTime = correctDeparture
				details.Segments[1].ArrivalTime = correctArrival
				details.TotalDurationMinutes = int(correctDeparture.Sub(first.DepartureTime).Minutes()) + connectingLegMinutes

				newEnd := correctArrival
				returnFlight.EndDate = &newEnd
				returnFlight.DurationMinutes = int(newEnd.Sub(*returnFlight.StartDate).Minutes())

				if err := s.Itineraries.Update(txCtx, returnFlight); err != nil {
					return err
				}
				fixed = true
			}
		}

		result = &FlightFixResult{
			Fixed:          fixed,
			ReturnFlightID: returnFlight.ID,
			OutboundFlight: summarize(outbound),
			ReturnFlight:   summarize(returnFlight),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Fixed {
		s.Logger.Info("return flight segment chain corrected",
			zap.String("orderId", orderID),
			zap.String("returnFlightId", result.ReturnFlightID))
	}
	return result, nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
