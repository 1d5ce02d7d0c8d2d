// Package growth provides the audience growth module: playbooks, engagement
// metrics and recommendations.
package growth

import (
	"automation_hub_backend/internal/ai"
	apphttp "automation_hub_backend/internal/http"
	"automation_hub_backend/platform/httpkit"
	"automation_hub_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// Module wires the growth service and its demo route.
type Module struct {
	service *Service
}

// NewModule creates the growth module with all dependencies wired.
func NewModule(orch *ai.Orchestrator, log *logger.Logger) *Module {
	return &Module{service: NewService(orch, log)}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "growth"
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
	ctx.Demo.POST("/growth", func(c *gin.Context) {
		var req struct {
			Niche string `json:"niche"`
		}
		_ = c.ShouldBindJSON(&req)
		if req.Niche == "" {
			req.Niche = "fitness"
		}

		playbook, err := m.service.RunGrowthPlaybook(c.Request.Context(), req.Niche)
		if httpkit.HandleError(c, err) {
			return
		}
		httpkit.OK(c, gin.H{"module": "growth", "result": playbook})
	})
}

var _ apphttp.Module = (*Module)(nil)
