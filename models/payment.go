package models

import "time"

// PaymentRequest is the input for charging an order.
type PaymentRequest struct {
	OrderID  string  `json:"orderId"`
	UserID   string  `json:"userId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"` // card, cash
}

// Invoice represents an invoice generated after processing an in-app payment.
type Invoice struct {
	InvoiceID string    `bson:"invoiceId" json:"invoiceId"`
	OrderID   string    `bson:"orderId" json:"orderId"`
	UserID    string    `bson:"userId" json:"userId"`
	PaymentID string    `bson:"paymentId,omitempty" json:"paymentId,omitempty"` // Stripe PaymentIntent ID
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Method    string    `bson:"method" json:"method"`
	Status    string    `bson:"status" json:"status"` // pending, paid, failed
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
