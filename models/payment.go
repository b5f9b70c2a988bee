package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentLink statuses.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusExpired = "expired"
)

// DefaultCurrency is applied to payment links when none is supplied.
const DefaultCurrency = "AUD"

// PaymentLink is an opaque, pre-expiry reference a customer can use to
// initiate payment later; it is not itself a payment and no processor is
// called anywhere in this service.
type PaymentLink struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CustomerID  string             `bson:"customer_id" json:"customer_id"`
	AmountCents int                `bson:"amount_cents" json:"amount_cents"`
	Currency    string             `bson:"currency" json:"currency"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	Token       string             `bson:"token" json:"token"`
	URL         string             `bson:"url" json:"url"`
	ExpiresAt   time.Time          `bson:"expires_at" json:"expires_at"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// PaymentLinkRequest is the payload for POST /api/payment-links.
type PaymentLinkRequest struct {
	CustomerID  string `json:"customer_id" binding:"required"`
	AmountCents int    `json:"amount_cents" binding:"required,gt=0"`
	Description string `json:"description"`
}

// PaymentLinkResult acknowledges a created payment link.
type PaymentLinkResult struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	URL   string `json:"url"`
}
