// Package appointments provides the appointments domain module: slot
// proposals and mock booking management.
package appointments

import (
	"automation_hub_backend/internal/events"
	apphttp "automation_hub_backend/internal/http"
	"automation_hub_backend/platform/httpkit"
	"automation_hub_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// Module wires the appointments service and its demo route.
type Module struct {
	service *Service
}

// NewModule creates the appointments module with all dependencies wired.
func NewModule(log *logger.Logger, bus events.Bus) *Module {
	return &Module{service: NewService(log, bus)}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "appointments"
}

// Service exposes the service for the webhook router.
func (m *Module) Service() *Service {
	return m.service
}

// RegisterRoutes mounts the development demo endpoint.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	if ctx.Demo == nil {
		return
	}
	ctx.Demo.POST("/appointments", func(c *gin.Context) {
		var opts ProposeSlotsOptions
		_ = c.ShouldBindJSON(&opts)
		if opts.Timezone == "" {
			opts.Timezone = "UTC"
		}

		slots, err := m.service.ProposeSlots(c.Request.Context(), opts)
		if httpkit.HandleError(c, err) {
			return
		}
		httpkit.OK(c, gin.H{"module": "appointments", "slots": slots})
	})
}

var _ apphttp.Module = (*Module)(nil)
