package webhook

import (
	"context"
	"net/http"
	"time"

	"automation_hub_backend/internal/appointments"
	"automation_hub_backend/internal/ecommerce"
	"automation_hub_backend/internal/events"
	"automation_hub_backend/internal/instagram"
	"automation_hub_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// Narrow views of the domain services, so tests can substitute fakes.
type instagramService interface {
	AutoReplyComment(ctx context.Context, comment instagram.Comment) (instagram.CommentReply, error)
	AutoReplyDM(ctx context.Context, message instagram.Message) (instagram.DMReply, error)
}

type orderService interface {
	HandleOrderWebhook(ctx context.Context, raw map[string]any) (ecommerce.OrderSummary, error)
}

type slotService interface {
	ProposeSlots(ctx context.Context, opts appointments.ProposeSlotsOptions) ([]appointments.Slot, error)
}

// Handler terminates the webhook endpoints: the Meta verification handshake,
// the event router, and the echo endpoint used during webhook setup.
type Handler struct {
	verifyToken string
	production  bool
	log         *logger.Logger
	bus         events.Bus

	instagram    instagramService
	orders       orderService
	appointments slotService
}

// NewHandler creates the webhook handler.
func NewHandler(verifyToken string, production bool, log *logger.Logger, bus events.Bus, ig instagramService, orders orderService, slots slotService) *Handler {
	return &Handler{
		verifyToken:  verifyToken,
		production:   production,
		log:          log,
		bus:          bus,
		instagram:    ig,
		orders:       orders,
		appointments: slots,
	}
}

// Verify handles GET /webhook, the Meta subscription handshake. The
// challenge is echoed verbatim on success.
func (h *Handler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "" || token == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	if mode == "subscribe" && token == h.verifyToken {
		h.log.Info("webhook verified")
		c.String(http.StatusOK, challenge)
		return
	}

	c.Status(http.StatusForbidden)
}

// Receive handles POST /webhook. Events are classified and dispatched to
// the owning module; unrecognized events are acknowledged without side
// effects. A handler failure never crashes the process.
func (h *Handler) Receive(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil || len(raw) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty request body"})
		return
	}

	ctx := c.Request.Context()
	event := Classify(raw)

	switch event.Kind {
	case KindInstagramComment:
		h.log.WebhookEvent(event.EventType, "instagram", "comment_reply")
		result, err := h.instagram.AutoReplyComment(ctx, event.Comment)
		if err != nil {
			h.fail(c, err)
			return
		}
		h.publish(ctx, event, "instagram", "comment_reply")
		c.JSON(http.StatusOK, gin.H{"received": true, "module": "instagram", "action": "comment_reply", "result": result})

	case KindInstagramDM:
		h.log.WebhookEvent(event.EventType, "instagram", "dm_reply")
		result, err := h.instagram.AutoReplyDM(ctx, event.Message)
		if err != nil {
			h.fail(c, err)
			return
		}
		h.publish(ctx, event, "instagram", "dm_reply")
		c.JSON(http.StatusOK, gin.H{"received": true, "module": "instagram", "action": "dm_reply", "result": result})

	case KindOrder:
		h.log.WebhookEvent(event.EventType, "ecommerce", "order_processed")
		result, err := h.orders.HandleOrderWebhook(ctx, event.Order)
		if err != nil {
			h.fail(c, err)
			return
		}
		h.publish(ctx, event, "ecommerce", "order_processed")
		c.JSON(http.StatusOK, gin.H{"received": true, "module": "ecommerce", "action": "order_processed", "result": result})

	case KindBookingRequest:
		h.log.WebhookEvent(event.EventType, "appointments", "slots_proposed")
		slots, err := h.appointments.ProposeSlots(ctx, appointments.ProposeSlotsOptions{Timezone: event.Timezone})
		if err != nil {
			h.fail(c, err)
			return
		}
		h.publish(ctx, event, "appointments", "slots_proposed")
		c.JSON(http.StatusOK, gin.H{"received": true, "module": "appointments", "action": "slots_proposed", "slots": slots})

	default:
		h.log.WebhookEvent(event.EventType, "", "ack")
		c.JSON(http.StatusOK, gin.H{
			"received":  true,
			"eventType": event.EventType,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// TestEcho handles POST /test/webhook, echoing the payload back. Used to
// verify delivery during webhook setup.
func (h *Handler) TestEcho(c *gin.Context) {
	var raw map[string]any
	_ = c.ShouldBindJSON(&raw)

	h.log.Info("test webhook received")
	c.JSON(http.StatusOK, gin.H{"received": true, "body": raw})
}

func (h *Handler) publish(ctx context.Context, event InboundEvent, module, action string) {
	h.bus.Publish(ctx, events.InboundEventReceived{
		BaseEvent: events.NewBaseEvent(),
		EventType: event.EventType,
		Module:    module,
		Action:    action,
	})
}

// fail writes the 500 envelope. The concrete message leaks only outside
// production.
func (h *Handler) fail(c *gin.Context, err error) {
	h.log.Error("webhook processing failed", "error", err.Error())

	message := err.Error()
	if h.production {
		message = "An error occurred while processing the webhook"
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":     "webhook_processing_error",
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
