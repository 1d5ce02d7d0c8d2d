// Package prospecting provides the lead discovery, enrichment and
// segmentation module.
package prospecting

import (
	"automation_hub_backend/internal/ai"
	apphttp "automation_hub_backend/internal/http"
	"automation_hub_backend/platform/httpkit"
	"automation_hub_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// Module wires the prospecting service and its demo route.
type Module struct {
	service *Service
}

// NewModule creates the prospecting module with all dependencies wired.
func NewModule(orch *ai.Orchestrator, log *logger.Logger) *Module {
	return &Module{service: NewService(orch, log)}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "prospecting"
}

// Service exposes the service for composition.
func (m *Module) Service() *Service {
	return m.service
}

// RegisterRoutes mounts the development demo endpoint.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	if ctx.Demo == nil {
		return
	}
	ctx.Demo.POST("/prospecting", func(c *gin.Context) {
		var opts DiscoverOptions
		_ = c.ShouldBindJSON(&opts)
		if opts.Niche == "" {
			opts.Niche = "fitness"
		}

		result, err := m.service.DiscoverLeads(c.Request.Context(), opts)
		if httpkit.HandleError(c, err) {
			return
		}
		httpkit.OK(c, gin.H{"module": "prospecting", "result": result})
	})
}

var _ apphttp.Module = (*Module)(nil)
