package webhook

import (
	"automation_hub_backend/internal/instagram"
)

// EventKind discriminates inbound webhook payloads.
type EventKind int

const (
	KindUnrecognized EventKind = iota
	KindInstagramComment
	KindInstagramDM
	KindOrder
	KindBookingRequest
)

// InboundEvent is a classified webhook payload. Only the fields for the
// matched Kind are populated.
type InboundEvent struct {
	Kind      EventKind
	EventType string

	Comment  instagram.Comment
	Message  instagram.Message
	Order    map[string]any
	Timezone string
}

// Classify maps a decoded payload onto an InboundEvent. Match order:
// Instagram (type "ig.comment" or object "instagram"; data.text selects a
// comment, data.from.id a DM, neither falls through), then order events,
// then booking requests. Anything else is Unrecognized.
func Classify(raw map[string]any) InboundEvent {
	eventType, _ := raw["type"].(string)
	object, _ := raw["object"].(string)

	if eventType == "ig.comment" || object == "instagram" {
		if data, ok := raw["data"].(map[string]any); ok {
			if text, ok := data["text"].(string); ok && text != "" {
				return InboundEvent{
					Kind:      KindInstagramComment,
					EventType: eventType,
					Comment:   instagram.Comment{Text: text, From: senderID(data)},
				}
			}
			if id := senderID(data); id != "" {
				text, _ := data["text"].(string)
				return InboundEvent{
					Kind:      KindInstagramDM,
					EventType: eventType,
					Message:   instagram.Message{Text: text, From: id},
				}
			}
		}
	}

	if eventType == "shopify.order.created" || eventType == "woo.order.created" {
		order, ok := raw["data"].(map[string]any)
		if !ok {
			order = raw
		}
		return InboundEvent{Kind: KindOrder, EventType: eventType, Order: order}
	}

	if eventType == "calendar.booking_request" {
		timezone, _ := raw["timezone"].(string)
		if timezone == "" {
			timezone = "UTC"
		}
		return InboundEvent{Kind: KindBookingRequest, EventType: eventType, Timezone: timezone}
	}

	if eventType == "" {
		eventType = "unknown"
	}
	return InboundEvent{Kind: KindUnrecognized, EventType: eventType}
}

func senderID(data map[string]any) string {
	from, ok := data["from"].(map[string]any)
	if !ok {
		return ""
	}
	id, _ := from["id"].(string)
	return id
}
