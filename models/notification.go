package models

// ReservationNoticePayload is the queued push-notification job emitted when a
// provider confirms a reservation.
type ReservationNoticePayload struct {
	UserID        string `json:"userId"`
	OrderID       string `json:"orderId"`
	ReservationID string `json:"reservationId"`
	Reference     string `json:"reference"`
	Title         string `json:"title"`
	Body          string `json:"body"`
}
