package models

import "time"

// Order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Price-adjustment aggregate statuses. Empty means no adjustments on record.
const (
	AdjustmentStatusPending  = "pending"
	AdjustmentStatusApproved = "approved"
)

// Order is the denormalized booking aggregate. Fee components and totals are
// maintained alongside the itinerary line items and repaired by the
// reconciliation routines when they drift.
type Order struct {
	ID         string `bson:"id" json:"id"`
	UserID     string `bson:"userId" json:"userId"`
	DoctorID   string `bson:"doctorId,omitempty" json:"doctorId,omitempty"`
	HospitalID string `bson:"hospitalId,omitempty" json:"hospitalId,omitempty"`
	DiseaseID  string `bson:"diseaseId,omitempty" json:"diseaseId,omitempty"`

	Status                   string     `bson:"status" json:"status"`
	DoctorAppointmentStatus  string     `bson:"doctorAppointmentStatus" json:"doctorAppointmentStatus"`
	DoctorAppointmentDate    *time.Time `bson:"doctorAppointmentDate,omitempty" json:"doctorAppointmentDate,omitempty"`
	ServiceReservationStatus string     `bson:"serviceReservationStatus" json:"serviceReservationStatus"`

	MedicalFee       float64 `bson:"medicalFee" json:"medicalFee"`
	HotelFee         float64 `bson:"hotelFee" json:"hotelFee"`
	FlightFee        float64 `bson:"flightFee" json:"flightFee"`
	TicketFee        float64 `bson:"ticketFee" json:"ticketFee"`
	Subtotal         float64 `bson:"subtotal" json:"subtotal"`
	ServiceFeeRate   float64 `bson:"serviceFeeRate" json:"serviceFeeRate"`
	ServiceFeeAmount float64 `bson:"serviceFeeAmount" json:"serviceFeeAmount"`
	TotalAmount      float64 `bson:"totalAmount" json:"totalAmount"`
	Currency         string  `bson:"currency" json:"currency"`

	// Plan adjustments are embedded as structured records; the aggregate
	// amount tracks the sum of approved deltas.
	PlanAdjustments       []PlanAdjustment `bson:"planAdjustments,omitempty" json:"planAdjustments,omitempty"`
	PriceAdjustmentAmount float64          `bson:"priceAdjustmentAmount" json:"priceAdjustmentAmount"`
	PriceAdjustmentStatus string           `bson:"priceAdjustmentStatus,omitempty" json:"priceAdjustmentStatus,omitempty"`

	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`
	TravelNotes string `bson:"travelNotes,omitempty" json:"travelNotes,omitempty"`

	// Version is bumped on every transactional mutation; concurrent fixes
	// against the same order fail their compare-and-set instead of racing.
	Version   int64     `bson:"version" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ApprovedAdjustmentTotal sums the price deltas of approved adjustments.
func (o *Order) ApprovedAdjustmentTotal() float64 {
	var total float64
	for _, adj := range o.PlanAdjustments {
		if adj.Status == AdjustmentStatusApproved {
			total += adj.PriceAdjustment
		}
	}
	return total
}

// PlanAdjustment is an amendment proposal attached to an order. It is decided
// via the approval workflow: approve keeps it with approved status, reject
// removes it from the list and reverses its effect on the total.
type PlanAdjustment struct {
	ID              string     `bson:"id" json:"id"`
	Type            string     `bson:"type" json:"type"`
	Reason          string     `bson:"reason" json:"reason"`
	CurrentValue    string     `bson:"currentValue,omitempty" json:"currentValue,omitempty"`
	NewValue        string     `bson:"newValue,omitempty" json:"newValue,omitempty"`
	PriceAdjustment float64    `bson:"priceAdjustment" json:"priceAdjustment"`
	Status          string     `bson:"status" json:"status"`
	ApprovedAt      *time.Time `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	ApprovalReason  string     `bson:"approvalReason,omitempty" json:"approvalReason,omitempty"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
}
