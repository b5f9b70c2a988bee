package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	bookingRepo "facilityai/database/repository/booking"
	slotRepo "facilityai/database/repository/slot"
	"facilityai/models"
)

// Validation and business-rule failures surfaced to the HTTP layer as 400s.
var (
	ErrInvalidDate     = errors.New("invalid date format, use YYYY-MM-DD")
	ErrSlotUnavailable = errors.New("slot not available")
)

const (
	defaultWindowDays  = 7
	defaultResultLimit = 20
)

// BookingService covers the two flows that touch the slot/booking pair.
type BookingService interface {
	CheckAvailability(ctx context.Context, req models.AvailabilityRequest) ([]models.SlotResponse, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
}

// DefaultBookingService implements BookingService over the slot and booking
// repositories. Cache is optional; when nil every availability query goes to
// the store.
type DefaultBookingService struct {
	Slots    slotRepo.ScheduleSlotRepository
	Bookings bookingRepo.BookingRepository
	Cache    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}

// CheckAvailability returns open slots whose start_time falls inside the
// requested window. The window starts at the supplied calendar date
// (midnight UTC) or now when omitted.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, req models.AvailabilityRequest) ([]models.SlotResponse, error) {
	from := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		from = parsed
	}

	days := req.Days
	if days <= 0 {
		days = defaultWindowDays
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultResultLimit
	}
	to := from.AddDate(0, 0, days)

	cacheKey := fmt.Sprintf("availability:%s:%s:%s:%d:%d", req.ServiceID, req.StaffID, req.Date, days, limit)
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		return cached, nil
	}

	slots, err := s.Slots.FindOpenInWindow(ctx, slotRepo.WindowQuery{
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		From:      from,
		To:        to,
		Limit:     int64(limit),
	})
	if err != nil {
		return nil, err
	}

	out := make([]models.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		out = append(out, slot.Response())
	}
	s.cacheSet(ctx, cacheKey, out)
	return out, nil
}

// CreateBooking runs the booking creation flow: match a slot by exact window,
// reject when the match is unavailable, insert the booking, then take one
// capacity unit from the matched slot.
//
// The slot lookup intentionally ignores service_id and staff_id: the slot
// calendar is keyed by window alone, and callers rely on that looseness.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	slot, err := s.Slots.FindByExactWindow(ctx, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if slot != nil && (slot.Status != models.SlotStatusOpen || slot.Remaining <= 0) {
		return nil, ErrSlotUnavailable
	}

	source := req.Source
	if source == "" {
		source = models.SourceAI
	}

	booking := models.Booking{
		CustomerID: req.CustomerID,
		ServiceID:  req.ServiceID,
		StaffID:    req.StaffID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     models.BookingStatusConfirmed,
		Quantity:   1,
		PriceCents: 0,
		Source:     source,
		Notes:      req.Notes,
	}
	if slot != nil {
		ref := slot.ID.Hex()
		booking.ScheduleSlotID = &ref
	}

	id, err := s.Bookings.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	result := &models.BookingResult{ID: id, Status: "created"}
	if slot != nil {
		if err := s.Slots.DecrementRemaining(ctx, slot.ID); err != nil {
			// The booking is already inserted; surface the failure instead of
			// swallowing it so a reconciliation pass can pick it up.
			s.Logger.Warn("booking created but slot capacity update failed",
				zap.String("booking_id", id),
				zap.String("slot_id", slot.ID.Hex()),
				zap.Error(err))
			result.Warning = "slot capacity was not updated; booking requires reconciliation"
		}
	}
	return result, nil
}

func (s *DefaultBookingService) cacheGet(ctx context.Context, key string) ([]models.SlotResponse, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var slots []models.SlotResponse
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (s *DefaultBookingService) cacheSet(ctx context.Context, key string, slots []models.SlotResponse) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, s.CacheTTL).Err(); err != nil {
		s.Logger.Debug("availability cache write failed", zap.Error(err))
	}
}
