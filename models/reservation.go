package models

import "time"

// ServiceReservation links an itinerary item to an external provider's
// booking confirmation. Created once when a provider confirms; never
// reconciled afterwards.
type ServiceReservation struct {
	ID                string     `bson:"id" json:"id"`
	OrderID           string     `bson:"orderId" json:"orderId"`
	ItineraryID       string     `bson:"itineraryId,omitempty" json:"itineraryId,omitempty"`
	Type              string     `bson:"type" json:"type"`
	ProviderName      string     `bson:"providerName" json:"providerName"`
	ProviderReference string     `bson:"providerReference" json:"providerReference"`
	Status            string     `bson:"status" json:"status"`
	ReservationDate   time.Time  `bson:"reservationDate" json:"reservationDate"`
	ConfirmationDate  *time.Time `bson:"confirmationDate,omitempty" json:"confirmationDate,omitempty"`
	CancellationDate  *time.Time `bson:"cancellationDate,omitempty" json:"cancellationDate,omitempty"`
	Price             float64    `bson:"price" json:"price"`
	Currency          string     `bson:"currency" json:"currency"`
	Details           map[string]interface{} `bson:"details,omitempty" json:"details,omitempty"`
	Remarks           string     `bson:"remarks,omitempty" json:"remarks,omitempty"`
	NotificationSent  bool       `bson:"notificationSent" json:"notificationSent"`
	CreatedAt         time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time  `bson:"updatedAt" json:"updatedAt"`
}
