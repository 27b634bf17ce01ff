package booking

import (
	"context"
	"time"

	itineraryRepo "meditrip/database/repository/itinerary"
	orderRepo "meditrip/database/repository/order"
	reservationRepo "meditrip/database/repository/reservation"
	"meditrip/models"

	"go.uber.org/zap"
)

// FlightSummary is the descriptive slice of a flight item returned by the
// fix and verify operations.
type FlightSummary struct {
	ID        string     `json:"id"`
	Name      string     `json:"name,omitempty"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Location  string     `json:"location,omitempty"`
}

// FlightFixResult reports whether the return-flight segment reconciler
// applied a correction.
type FlightFixResult struct {
	Fixed          bool          `json:"fixed"`
	ReturnFlightID string        `json:"returnFlightId"`
	OutboundFlight FlightSummary `json:"outboundFlight"`
	ReturnFlight   FlightSummary `json:"returnFlight"`
}

// HotelDatesChange records the before/after window of a hotel correction.
type HotelDatesChange struct {
	OldStartDate *time.Time `json:"oldStartDate"`
	OldEndDate   *time.Time `json:"oldEndDate"`
	NewStartDate time.Time  `json:"newStartDate"`
	NewEndDate   time.Time  `json:"newEndDate"`
}

// MedicalFeeChange records the before/after consultation fee.
type MedicalFeeChange struct {
	OldMedicalFee float64 `json:"oldMedicalFee"`
	NewMedicalFee float64 `json:"newMedicalFee"`
}

// OrderFixResult reports what the combined order fix corrected.
type OrderFixResult struct {
	HotelFixed      bool              `json:"hotelFixed"`
	MedicalFeeFixed bool              `json:"medicalFeeFixed"`
	HotelDates      *HotelDatesChange `json:"hotelDates,omitempty"`
	MedicalFee      *MedicalFeeChange `json:"medicalFee,omitempty"`
}

// VerifyIssue is one problem found by the read-only flight verification.
type VerifyIssue struct {
	Type    string `json:"type"` // time_order, route_error
	Message string `json:"message"`
}

// TimeCheck is the day-difference diagnostic attached to every verification.
type TimeCheck struct {
	OutboundEnd         time.Time `json:"outboundEnd"`
	ReturnStart         time.Time `json:"returnStart"`
	ExpectedReturnStart time.Time `json:"expectedReturnStart"`
	DaysDifference      float64   `json:"daysDifference"`
}

// VerifyResult is the outcome of the flight verification. Never mutates state.
type VerifyResult struct {
	HasIssues      bool          `json:"hasIssues"`
	Issues         []VerifyIssue `json:"issues"`
	OutboundFlight FlightSummary `json:"outboundFlight"`
	ReturnFlight   FlightSummary `json:"returnFlight"`
	TimeCheck      TimeCheck     `json:"timeCheck"`
}

// Adjustment approval actions.
const (
	AdjustmentActionApprove = "approve"
	AdjustmentActionReject  = "reject"
)

// AdjustmentDecision is an approve/reject request against one pending
// plan adjustment.
type AdjustmentDecision struct {
	OrderID      string
	AdjustmentID string
	Action       string
	Reason       string
	UserID       string
}

// AdjustmentResult reports the decision outcome.
type AdjustmentResult struct {
	Message        string   `json:"message"`
	NewTotalAmount *float64 `json:"newTotalAmount,omitempty"`
}

// AdjustmentProposal is a new plan-change request awaiting a price estimate.
type AdjustmentProposal struct {
	OrderID      string
	UserID       string
	Type         string // consultation, examination, surgery, treatment, rehabilitation
	Reason       string
	CurrentValue string
	NewValue     string
}

// ProposalResult carries the recorded adjustment and the projected total.
type ProposalResult struct {
	Adjustment     models.PlanAdjustment `json:"adjustment"`
	NewTotalAmount float64               `json:"newTotalAmount"`
}

// ReservationRequest records a provider confirmation for an itinerary item.
type ReservationRequest struct {
	OrderID           string                 `json:"orderId"`
	ItineraryID       string                 `json:"itineraryId,omitempty"`
	Type              string                 `json:"type"`
	ProviderName      string                 `json:"providerName"`
	ProviderReference string                 `json:"providerReference"`
	Price             float64                `json:"price"`
	Currency          string                 `json:"currency"`
	Details           map[string]interface{} `json:"details,omitempty"`
	Remarks           string                 `json:"remarks,omitempty"`
}

// PriceEstimator prices a proposed plan change. The production implementation
// asks Gemini and falls back to a fixed table when the model is unavailable.
type PriceEstimator interface {
	EstimateAdjustment(ctx context.Context, order *models.Order, proposal AdjustmentProposal) (float64, error)
}

// Notifier pushes reservation notices to the order owner.
type Notifier interface {
	EnqueueReservationNotice(ctx context.Context, userID, orderID, reservationID, reference string) error
}

// BookingService exposes the order/itinerary reconciliation and booking
// operations behind the HTTP boundary.
type BookingService interface {
	FixReturnFlight(ctx context.Context, orderID string) (*FlightFixResult, error)
	FixOrder(ctx context.Context, orderID string, addMedicalFee bool) (*OrderFixResult, error)
	VerifyFlights(ctx context.Context, orderID string) (*VerifyResult, error)
	DecideAdjustment(ctx context.Context, req AdjustmentDecision) (*AdjustmentResult, error)
	ProposeAdjustment(ctx context.Context, req AdjustmentProposal) (*ProposalResult, error)
	ConfirmReservation(ctx context.Context, req ReservationRequest) (*models.ServiceReservation, error)
	ListReservations(ctx context.Context, orderID string) ([]models.ServiceReservation, error)
	GetItinerary(ctx context.Context, orderID string) ([]models.ItineraryItem, error)
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Orders       orderRepo.OrderRepository
	Itineraries  itineraryRepo.ItineraryRepository
	Reservations reservationRepo.ReservationRepository
	Estimator    PriceEstimator
	Notification Notifier
	Logger       *zap.Logger
}
