package appointments

import (
	"context"
	"time"

	"automation_hub_backend/internal/events"
	"automation_hub_backend/platform/logger"

	"github.com/google/uuid"
)

const (
	defaultDurationMinutes = 30
	slotCount              = 5
	slotStartHour          = 10
)

// Slot is a proposed appointment window. Slots are generated, never stored;
// proposing the same window twice yields two independent confirmations.
type Slot struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"durationMinutes"`
	Available       bool      `json:"available"`
}

// Customer identifies who a booking is for.
type Customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Booking is a confirmed appointment.
type Booking struct {
	Booked           bool     `json:"booked"`
	EventID          string   `json:"eventId"`
	Slot             Slot     `json:"slot"`
	Customer         Customer `json:"customer"`
	Status           string   `json:"status"`
	ConfirmationSent bool     `json:"confirmationSent"`
	Timestamp        string   `json:"timestamp"`
}

// BookingDetails is the record returned for a booking lookup.
type BookingDetails struct {
	EventID     string `json:"eventId"`
	Status      string `json:"status"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Attendee    string `json:"attendee"`
	MeetingLink string `json:"meetingLink"`
}

// CancelResult confirms a cancellation.
type CancelResult struct {
	Cancelled bool   `json:"cancelled"`
	EventID   string `json:"eventId"`
	Refund    string `json:"refund"`
	Timestamp string `json:"timestamp"`
}

// ProposeSlotsOptions tunes slot generation.
type ProposeSlotsOptions struct {
	Timezone        string `json:"timezone"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Service proposes slots and manages (mock) bookings. No calendar backend is
// contacted; booking operations are stateless stubs behind the interface a
// real integration would use.
type Service struct {
	log *logger.Logger
	bus events.Bus
	now func() time.Time
}

// NewService creates the appointments service.
func NewService(log *logger.Logger, bus events.Bus) *Service {
	return &Service{log: log, bus: bus, now: time.Now}
}

// ProposeSlots deterministically generates the next slotCount daily windows
// at 10:00 in the requested timezone, starting tomorrow. Deterministic given
// the current time; unknown timezones fall back to UTC.
func (s *Service) ProposeSlots(ctx context.Context, opts ProposeSlotsOptions) ([]Slot, error) {
	duration := opts.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}

	loc := time.UTC
	if opts.Timezone != "" {
		if parsed, err := time.LoadLocation(opts.Timezone); err == nil {
			loc = parsed
		}
	}

	now := s.now().In(loc)
	slots := make([]Slot, 0, slotCount)
	for i := 1; i <= slotCount; i++ {
		day := now.AddDate(0, 0, i)
		start := time.Date(day.Year(), day.Month(), day.Day(), slotStartHour, 0, 0, 0, loc)
		slots = append(slots, Slot{
			Start:           start,
			End:             start.Add(time.Duration(duration) * time.Minute),
			DurationMinutes: duration,
			Available:       true,
		})
	}

	s.log.Info("slots proposed", "timezone", loc.String(), "count", len(slots))
	return slots, nil
}

// BookSlot confirms a booking for the given slot and customer. There is no
// conflict detection; the confirmation email is handled by the notification
// module via the event bus.
func (s *Service) BookSlot(ctx context.Context, slot Slot, customer Customer) (Booking, error) {
	eventID := "evt_" + uuid.NewString()

	s.log.Info("slot booked", "event_id", eventID, "customer", customer.Email)

	s.bus.Publish(ctx, events.BookingCreated{
		BaseEvent:     events.NewBaseEvent(),
		EventID:       eventID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		SlotStart:     slot.Start.Format(time.RFC3339),
		SlotEnd:       slot.End.Format(time.RFC3339),
	})

	return Booking{
		Booked:           true,
		EventID:          eventID,
		Slot:             slot,
		Customer:         customer,
		Status:           "confirmed",
		ConfirmationSent: true,
		Timestamp:        s.now().UTC().Format(time.RFC3339),
	}, nil
}

// GetBookingDetails fabricates a confirmed record for any event ID. This is
// documented stub behavior, not a real lookup.
func (s *Service) GetBookingDetails(ctx context.Context, eventID string) BookingDetails {
	start := s.now().UTC()
	return BookingDetails{
		EventID:     eventID,
		Status:      "confirmed",
		StartTime:   start.Format(time.RFC3339),
		EndTime:     start.Add(defaultDurationMinutes * time.Minute).Format(time.RFC3339),
		Attendee:    "customer@example.com",
		MeetingLink: "https://meet.example.com/xyz123",
	}
}

// CancelBooking transitions a booking to cancelled. The only lifecycle
// transition a booking supports.
func (s *Service) CancelBooking(ctx context.Context, eventID string) CancelResult {
	s.log.Info("booking cancelled", "event_id", eventID)

	s.bus.Publish(ctx, events.BookingCancelled{
		BaseEvent: events.NewBaseEvent(),
		EventID:   eventID,
	})

	return CancelResult{
		Cancelled: true,
		EventID:   eventID,
		Refund:    "pending",
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
}
