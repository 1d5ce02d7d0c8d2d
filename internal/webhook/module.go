// Package webhook routes inbound platform events (Meta/Instagram,
// e-commerce, calendar) to the owning domain module.
package webhook

import (
	apphttp "automation_hub_backend/internal/http"
)

// Module wires the webhook handler onto the public routes.
type Module struct {
	handler *Handler
}

// NewModule creates the webhook module around an already-built handler.
func NewModule(handler *Handler) *Module {
	return &Module{handler: handler}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "webhook"
}

// RegisterRoutes mounts the handshake, event router and echo endpoints.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Engine.GET("/webhook", m.handler.Verify)
	ctx.Engine.POST("/webhook", m.handler.Receive)
	ctx.Engine.POST("/test/webhook", m.handler.TestEcho)
}

var _ apphttp.Module = (*Module)(nil)
