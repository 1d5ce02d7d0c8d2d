// Package reels provides the short-video content module: script generation,
// asset rendering and publishing stubs.
package reels

import (
	"automation_hub_backend/internal/ai"
	apphttp "automation_hub_backend/internal/http"
	"automation_hub_backend/platform/httpkit"
	"automation_hub_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// Module wires the reels service and its demo route.
type Module struct {
	service *Service
}

// NewModule creates the reels module with all dependencies wired.
func NewModule(orch *ai.Orchestrator, log *logger.Logger) *Module {
	return &Module{service: NewService(orch, log)}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "reels"
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
	ctx.Demo.POST("/reels", func(c *gin.Context) {
		var req struct {
			Topic string `json:"topic"`
		}
		_ = c.ShouldBindJSON(&req)
		if req.Topic == "" {
			req.Topic = "5 morning habits"
		}

		script, err := m.service.GenerateReelScript(c.Request.Context(), req.Topic)
		if httpkit.HandleError(c, err) {
			return
		}
		httpkit.OK(c, gin.H{"module": "reels", "result": script})
	})
}

var _ apphttp.Module = (*Module)(nil)
