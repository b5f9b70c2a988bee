package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSlotResponseRendersHexID(t *testing.T) {
	id := primitive.NewObjectID()
	slot := ScheduleSlot{ID: id, Status: SlotStatusOpen, Capacity: 2, Remaining: 1}

	resp := slot.Response()

	assert.Equal(t, id.Hex(), resp.ID)

	// The raw ObjectID must never appear in serialized output.
	raw, err := json.Marshal(resp)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), id.Hex())
}

func TestSlotCreateRequestDefaults(t *testing.T) {
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	req := SlotCreateRequest{
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Capacity:  4,
	}

	slot := req.Slot()

	assert.Equal(t, 4, slot.Remaining, "remaining defaults to capacity")
	assert.Equal(t, SlotStatusOpen, slot.Status)
}

func TestSlotCreateRequestExplicitRemaining(t *testing.T) {
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	remaining := 1
	req := SlotCreateRequest{
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Capacity:  4,
		Remaining: &remaining,
		Status:    SlotStatusHeld,
	}

	slot := req.Slot()

	assert.Equal(t, 1, slot.Remaining)
	assert.Equal(t, SlotStatusHeld, slot.Status)
}

func TestBookingSlotRefSerializesNull(t *testing.T) {
	b := Booking{Status: BookingStatusConfirmed, Quantity: 1}

	raw, err := json.Marshal(b)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"schedule_slot_id":null`)
}
