package models

import "time"

// Itinerary item types.
const (
	ItineraryTypeFlight    = "flight"
	ItineraryTypeTrain     = "train"
	ItineraryTypeHotel     = "hotel"
	ItineraryTypeCarRental = "car_rental"
	ItineraryTypeTicket    = "ticket"
	ItineraryTypeVisa      = "visa"
	ItineraryTypeInsurance = "insurance"
)

// Itinerary item / reservation statuses.
const (
	ItineraryStatusPending   = "pending"
	ItineraryStatusConfirmed = "confirmed"
	ItineraryStatusCancelled = "cancelled"
	ItineraryStatusCompleted = "completed"
)

// ItineraryItem is one bookable leg of a trip, owned by exactly one order.
type ItineraryItem struct {
	ID          string     `bson:"id" json:"id"`
	OrderID     string     `bson:"orderId" json:"orderId"`
	Type        string     `bson:"type" json:"type"`
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	StartDate   *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Location    string     `bson:"location,omitempty" json:"location,omitempty"`
	Price       float64    `bson:"price" json:"price"`

	// Flights only: total door-to-door duration.
	DurationMinutes int `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"`

	BookingConfirmation string             `bson:"bookingConfirmation,omitempty" json:"bookingConfirmation,omitempty"`
	Status              string             `bson:"status" json:"status"`
	NotificationSent    bool               `bson:"notificationSent" json:"notificationSent"`
	Metadata            *ItineraryMetadata `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ItineraryMetadata carries carrier-specific details per item type.
type ItineraryMetadata struct {
	FlightDetails  *FlightDetails `bson:"flightDetails,omitempty" json:"flightDetails,omitempty"`
	LayoverMinutes int            `bson:"layoverMinutes,omitempty" json:"layoverMinutes,omitempty"`
	MedicalType    string         `bson:"medicalType,omitempty" json:"medicalType,omitempty"`
	AttractionType string         `bson:"attractionType,omitempty" json:"attractionType,omitempty"`
}
