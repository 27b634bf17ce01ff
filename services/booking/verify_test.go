package booking

import (
	"context"
	"testing"

	"meditrip/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueTypes(issues []VerifyIssue) []string {
	var types []string
	for _, issue := range issues {
		types = append(types, issue.Type)
	}
	return types
}

func TestVerifyFlights_CleanItinerary(t *testing.T) {
	ret := returnFlightWithDrift("ord-1")
	// Return starts well over a day after the outbound lands (2026-03-01T22:00Z).
	orders := newFakeOrderRepo(&models.Order{ID: "ord-1", UserID: "u1"})
	items := newFakeItineraryRepo(outboundFlight("ord-1"), ret)
	svc := newTestService(orders, items)

	result, err := svc.VerifyFlights(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.False(t, result.HasIssues)
	assert.Empty(t, result.Issues)
	assert.InDelta(t, 8.5, result.TimeCheck.DaysDifference, 1e-9)
	assert.True(t, result.TimeCheck.ExpectedReturnStart.Equal(ts("2026-03-02T22:00:00Z")))
}

func TestVerifyFlights_ReturnTooEarly(t *testing.T) {
	ret := returnFlightWithDrift("ord-1")
	ret.StartDate = tsp("2026-03-02T06:00:00Z")
	ret.EndDate = tsp("2026-03-03T09:00:00Z")

	orders := newFakeOrderRepo(&models.Order{ID: "ord-1", UserID: "u1"})
	items := newFakeItineraryRepo(outboundFlight("ord-1"), ret)
	svc := newTestService(orders, items)

	result, err := svc.VerifyFlights(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.True(t, result.HasIssues)
	assert.Contains(t, issueTypes(result.Issues), "time_order")
	assert.Less(t, result.TimeCheck.DaysDifference, 1.0)
}

func TestVerifyFlights_WrongRouteWaypoints(t *testing.T) {
	ret := returnFlightWithDrift("ord-1")
	segs := ret.Metadata.FlightDetails.Segments
	segs[0].Origin = "Boston"
	segs[1].Destination = "Harbin"

	orders := newFakeOrderRepo(&models.Order{ID: "ord-1", UserID: "u1"})
	items := newFakeItineraryRepo(outboundFlight("ord-1"), ret)
	svc := newTestService(orders, items)

	result, err := svc.VerifyFlights(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.True(t, result.HasIssues)

	types := issueTypes(result.Issues)
	assert.Equal(t, []string{"route_error", "route_error"}, types)
	assert.Contains(t, result.Issues[0].Message, "New York")
	assert.Contains(t, result.Issues[1].Message, "Changchun")
}

func TestVerifyFlights_SkipsRouteCheckWithoutTwoSegments(t *testing.T) {
	ret := returnFlightWithDrift("ord-1")
	ret.Metadata.FlightDetails.Segments = ret.Metadata.FlightDetails.Segments[:1]

	orders := newFakeOrderRepo(&models.Order{ID: "ord-1", UserID: "u1"})
	items := newFakeItineraryRepo(outboundFlight("ord-1"), ret)
	svc := newTestService(orders, items)

	result, err := svc.VerifyFlights(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.False(t, result.HasIssues)
}

func TestVerifyFlights_RequiresEndDates(t *testing.T) {
	out := outboundFlight("ord-1")
	out.EndDate = nil

	orders := newFakeOrderRepo(&models.Order{ID: "ord-1", UserID: "u1"})
	items := newFakeItineraryRepo(out, returnFlightWithDrift("ord-1"))
	svc := newTestService(orders, items)

	_, err := svc.VerifyFlights(context.Background(), "ord-1")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Both flights must have start and end dates", vErr.Message)
}

func TestVerifyFlights_DoesNotMutate(t *testing.T) {
	ret := returnFlightWithDrift("ord-1")
	ret.StartDate = tsp("2026-03-02T06:00:00Z")

	orders := newFakeOrderRepo(&models.Order{ID: "ord-1", UserID: "u1"})
	items := newFakeItineraryRepo(outboundFlight("ord-1"), ret)
	svc := newTestService(orders, items)

	_, err := svc.VerifyFlights(context.Background(), "ord-1")
	require.NoError(t, err)

	stored, _ := items.GetByID(context.Background(), "fl-return")
	assert.True(t, stored.StartDate.Equal(ts("2026-03-02T06:00:00Z")))
	assert.Equal(t, 0, orders.txCount)
}
