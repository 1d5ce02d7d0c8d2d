package appointments

import (
	"context"
	"strings"
	"testing"
	"time"

	"automation_hub_backend/internal/events"
	"automation_hub_backend/platform/logger"
)

func newTestService(now time.Time) *Service {
	log := logger.New("test")
	svc := NewService(log, events.NewInMemoryBus(log))
	svc.now = func() time.Time { return now }
	return svc
}

func TestProposeSlotsShape(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)
	svc := newTestService(now)

	slots, err := svc.ProposeSlots(context.Background(), ProposeSlotsOptions{Timezone: "UTC", DurationMinutes: 45})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 5 {
		t.Fatalf("expected exactly 5 slots, got %d", len(slots))
	}
	for i, slot := range slots {
		if got := slot.End.Sub(slot.Start); got != 45*time.Minute {
			t.Fatalf("slot %d: expected 45m duration, got %v", i, got)
		}
		if slot.Start.Hour() != 10 {
			t.Fatalf("slot %d: expected 10:00 start, got %v", i, slot.Start)
		}
		if !slot.Available {
			t.Fatalf("slot %d: expected available", i)
		}
		if i > 0 && !slots[i-1].Start.Before(slot.Start) {
			t.Fatalf("slot starts must be strictly increasing")
		}
	}
	if first := slots[0].Start; first.Day() != 31 {
		t.Fatalf("first slot should be tomorrow, got %v", first)
	}
}

func TestProposeSlotsDeterministic(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	first, err := svc.ProposeSlots(context.Background(), ProposeSlotsOptions{Timezone: "UTC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.ProposeSlots(context.Background(), ProposeSlotsOptions{Timezone: "UTC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || !first[i].End.Equal(second[i].End) {
			t.Fatalf("slot %d differs between identical calls", i)
		}
	}
}

func TestProposeSlotsUnknownTimezoneFallsBackToUTC(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	slots, err := svc.ProposeSlots(context.Background(), ProposeSlotsOptions{Timezone: "Not/AZone"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc := slots[0].Start.Location(); loc != time.UTC {
		t.Fatalf("expected UTC fallback, got %v", loc)
	}
}

func TestProposeSlotsDefaultDuration(t *testing.T) {
	svc := newTestService(time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))

	slots, err := svc.ProposeSlots(context.Background(), ProposeSlotsOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slots[0].DurationMinutes != defaultDurationMinutes {
		t.Fatalf("expected default duration, got %d", slots[0].DurationMinutes)
	}
}

func TestBookSlot(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	start := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	slot := Slot{Start: start, End: start.Add(30 * time.Minute), DurationMinutes: 30, Available: true}

	booking, err := svc.BookSlot(context.Background(), slot, Customer{Name: "Ada", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !booking.Booked {
		t.Fatalf("expected booked=true")
	}
	if !strings.HasPrefix(booking.EventID, "evt_") {
		t.Fatalf("expected evt_ prefix, got %q", booking.EventID)
	}
	if booking.Status != "confirmed" {
		t.Fatalf("expected confirmed status, got %q", booking.Status)
	}
	if !booking.ConfirmationSent {
		t.Fatalf("expected confirmation marked sent")
	}
}

func TestBookSlotPublishesBookingCreated(t *testing.T) {
	log := logger.New("test")
	bus := events.NewInMemoryBus(log)
	svc := NewService(log, bus)
	svc.now = func() time.Time { return time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC) }

	received := make(chan events.BookingCreated, 1)
	bus.Subscribe(events.BookingCreated{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		if booking, ok := event.(events.BookingCreated); ok {
			received <- booking
		}
		return nil
	}))

	start := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	booking, err := svc.BookSlot(context.Background(), Slot{Start: start, End: start.Add(30 * time.Minute)}, Customer{Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case event := <-received:
		if event.EventID != booking.EventID {
			t.Fatalf("event id mismatch: %q vs %q", event.EventID, booking.EventID)
		}
		if event.CustomerEmail != "ada@example.com" {
			t.Fatalf("unexpected event email: %q", event.CustomerEmail)
		}
	case <-time.After(time.Second):
		t.Fatalf("booking created event not published")
	}
}

func TestCancelBooking(t *testing.T) {
	svc := newTestService(time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))

	result := svc.CancelBooking(context.Background(), "evt_abc")
	if !result.Cancelled {
		t.Fatalf("expected cancelled=true")
	}
	if result.EventID != "evt_abc" {
		t.Fatalf("unexpected event id: %q", result.EventID)
	}
	if result.Refund != "pending" {
		t.Fatalf("unexpected refund state: %q", result.Refund)
	}
}

func TestGetBookingDetailsFabricatesConfirmedRecord(t *testing.T) {
	svc := newTestService(time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))

	details := svc.GetBookingDetails(context.Background(), "evt_any")
	if details.EventID != "evt_any" {
		t.Fatalf("unexpected event id: %q", details.EventID)
	}
	if details.Status != "confirmed" {
		t.Fatalf("expected confirmed status, got %q", details.Status)
	}
	if details.MeetingLink == "" {
		t.Fatalf("expected a meeting link")
	}
}
