package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking sources.
const (
	SourcePhone  = "phone"
	SourceWeb    = "web"
	SourceAI     = "ai"
	SourceManual = "manual"
)

// Booking represents a confirmed reservation against a customer/service/time,
// optionally tied to a schedule slot.
type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CustomerID     string             `bson:"customer_id" json:"customer_id"`
	ServiceID      string             `bson:"service_id" json:"service_id"`
	StaffID        string             `bson:"staff_id,omitempty" json:"staff_id,omitempty"`
	StartTime      time.Time          `bson:"start_time" json:"start_time"`
	EndTime        time.Time          `bson:"end_time" json:"end_time"`
	Status         string             `bson:"status" json:"status"`
	Quantity       int                `bson:"quantity" json:"quantity"`
	PriceCents     int                `bson:"price_cents" json:"price_cents"`
	Source         string             `bson:"source" json:"source"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	ScheduleSlotID *string            `bson:"schedule_slot_id" json:"schedule_slot_id"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// BookingRequest is the payload for POST /api/bookings.
type BookingRequest struct {
	CustomerID string    `json:"customer_id" binding:"required"`
	ServiceID  string    `json:"service_id" binding:"required"`
	StaffID    string    `json:"staff_id"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
	Notes      string    `json:"notes"`
	Source     string    `json:"source" binding:"omitempty,oneof=phone web ai manual"`
}

// BookingResult acknowledges a created booking. Warning is set when the
// post-insert slot capacity update could not be applied.
type BookingResult struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Warning string `json:"warning,omitempty"`
}

// AvailabilityRequest is the payload for POST /api/availability.
type AvailabilityRequest struct {
	ServiceID string `json:"service_id"`
	StaffID   string `json:"staff_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Days      int    `json:"days"`
	Limit     int    `json:"limit"`
}
