// Package ecommerce provides the ecommerce domain module: catalog sync,
// order webhook normalization, inventory, and upsell stubs.
package ecommerce

import (
	"automation_hub_backend/internal/events"
	apphttp "automation_hub_backend/internal/http"
	"automation_hub_backend/platform/logger"
)

// Module wires the ecommerce service and its demo routes.
type Module struct {
	handler *Handler
	service *Service
}

// NewModule creates the ecommerce module with all dependencies wired.
func NewModule(log *logger.Logger, bus events.Bus) *Module {
	svc := NewService(log, bus)
	return &Module{handler: NewHandler(svc), service: svc}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "ecommerce"
}

// Service exposes the service for the webhook router.
func (m *Module) Service() *Service {
	return m.service
}

// RegisterRoutes mounts the development demo endpoint.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	if ctx.Demo != nil {
		ctx.Demo.POST("/ecommerce/sync", m.handler.DemoSync)
	}
}

var _ apphttp.Module = (*Module)(nil)
