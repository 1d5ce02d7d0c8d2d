// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"automation_hub_backend/platform/events"
	"automation_hub_backend/platform/logger"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Webhook Domain Events
// =============================================================================

// InboundEventReceived is published for every webhook delivery after it has
// been classified, whether or not a module handled it.
type InboundEventReceived struct {
	BaseEvent
	EventType string `json:"eventType"`
	Module    string `json:"module,omitempty"`
	Action    string `json:"action,omitempty"`
}

func (e InboundEventReceived) EventName() string { return "webhook.event.received" }

// =============================================================================
// Instagram Domain Events
// =============================================================================

// CommentReplied is published when an auto-reply is generated for a comment.
type CommentReplied struct {
	BaseEvent
	Intent   string `json:"intent"`
	FellBack bool   `json:"fellBack"`
}

func (e CommentReplied) EventName() string { return "instagram.comment.replied" }

// =============================================================================
// Ecommerce Domain Events
// =============================================================================

// OrderProcessed is published when an order webhook has been normalized.
type OrderProcessed struct {
	BaseEvent
	OrderID   string `json:"orderId"`
	ItemCount int    `json:"itemCount"`
}

func (e OrderProcessed) EventName() string { return "ecommerce.order.processed" }

// =============================================================================
// Appointments Domain Events
// =============================================================================

// BookingCreated is published when a slot is booked. The notification module
// subscribes to send the confirmation email.
type BookingCreated struct {
	BaseEvent
	EventID       string `json:"eventId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	SlotStart     string `json:"slotStart"`
	SlotEnd       string `json:"slotEnd"`
}

func (e BookingCreated) EventName() string { return "appointments.booking.created" }

// BookingCancelled is published when a booking is cancelled.
type BookingCancelled struct {
	BaseEvent
	EventID string `json:"eventId"`
}

func (e BookingCancelled) EventName() string { return "appointments.booking.cancelled" }
