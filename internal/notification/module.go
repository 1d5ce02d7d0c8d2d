// Package notification turns domain events into outbound notifications.
// Domain modules publish events; this module owns the email provider, so
// they never need to know about delivery.
package notification

import (
	"context"
	"fmt"

	"automation_hub_backend/internal/email"
	"automation_hub_backend/internal/events"
	"automation_hub_backend/platform/logger"
)

// Module subscribes notification handlers to the event bus.
type Module struct {
	sender email.Sender
	log    *logger.Logger
}

// NewModule creates the notification module.
func NewModule(sender email.Sender, log *logger.Logger) *Module {
	return &Module{sender: sender, log: log}
}

// Register subscribes all handlers. Call once during composition.
func (m *Module) Register(bus events.Bus) {
	bus.Subscribe(events.BookingCreated{}.EventName(), events.HandlerFunc(m.onBookingCreated))
	bus.Subscribe(events.BookingCancelled{}.EventName(), events.HandlerFunc(m.onBookingCancelled))
}

func (m *Module) onBookingCreated(ctx context.Context, event events.Event) error {
	booking, ok := event.(events.BookingCreated)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, event.EventName())
	}
	if booking.CustomerEmail == "" {
		return nil
	}

	m.log.Info("sending booking confirmation", "event_id", booking.EventID)
	return m.sender.SendBookingConfirmationEmail(ctx,
		booking.CustomerEmail,
		booking.CustomerName,
		booking.EventID,
		booking.SlotStart,
		booking.SlotEnd,
	)
}

func (m *Module) onBookingCancelled(ctx context.Context, event events.Event) error {
	cancelled, ok := event.(events.BookingCancelled)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, event.EventName())
	}

	// No recipient is carried on the cancel event; log only until bookings
	// are persisted with customer contact details.
	m.log.Info("booking cancelled notification", "event_id", cancelled.EventID)
	return nil
}
