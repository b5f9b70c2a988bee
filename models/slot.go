package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleSlot statuses.
const (
	SlotStatusOpen    = "open"
	SlotStatusHeld    = "held"
	SlotStatusBooked  = "booked"
	SlotStatusBlocked = "blocked"
)

// ScheduleSlot represents a bookable time window with finite capacity.
type ScheduleSlot struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ServiceID string             `bson:"service_id,omitempty" json:"service_id,omitempty"`
	StaffID   string             `bson:"staff_id,omitempty" json:"staff_id,omitempty"`
	StartTime time.Time          `bson:"start_time" json:"start_time"`
	EndTime   time.Time          `bson:"end_time" json:"end_time"`
	Capacity  int                `bson:"capacity" json:"capacity"`
	Remaining int                `bson:"remaining" json:"remaining"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	Status    string             `bson:"status" json:"status"`
}

// SlotResponse is the wire shape for a slot. Store identifiers are always
// rendered as plain hex strings; primitive.ObjectID never leaves the process.
type SlotResponse struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"service_id,omitempty"`
	StaffID   string    `json:"staff_id,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Capacity  int       `json:"capacity"`
	Remaining int       `json:"remaining"`
	Location  string    `json:"location,omitempty"`
	Status    string    `json:"status"`
}

// Response converts a stored slot into its wire shape.
func (s ScheduleSlot) Response() SlotResponse {
	return SlotResponse{
		ID:        s.ID.Hex(),
		ServiceID: s.ServiceID,
		StaffID:   s.StaffID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Capacity:  s.Capacity,
		Remaining: s.Remaining,
		Location:  s.Location,
		Status:    s.Status,
	}
}

// SlotCreateRequest is the payload for POST /api/slots.
type SlotCreateRequest struct {
	ServiceID string    `json:"service_id"`
	StaffID   string    `json:"staff_id"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required,gtfield=StartTime"`
	Capacity  int       `json:"capacity" binding:"required,min=1"`
	Remaining *int      `json:"remaining" binding:"omitempty,min=0"`
	Location  string    `json:"location"`
	Status    string    `json:"status" binding:"omitempty,oneof=open held booked blocked"`
}

// Slot builds a ScheduleSlot from the request, applying defaults:
// remaining falls back to capacity and status to open.
func (r SlotCreateRequest) Slot() ScheduleSlot {
	slot := ScheduleSlot{
		ServiceID: r.ServiceID,
		StaffID:   r.StaffID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Capacity:  r.Capacity,
		Remaining: r.Capacity,
		Location:  r.Location,
		Status:    SlotStatusOpen,
	}
	if r.Remaining != nil {
		slot.Remaining = *r.Remaining
	}
	if r.Status != "" {
		slot.Status = r.Status
	}
	return slot
}
