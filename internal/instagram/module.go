// Package instagram provides the Instagram domain module: AI comment and DM
// replies plus engagement metrics.
package instagram

import (
	"automation_hub_backend/internal/ai"
	"automation_hub_backend/internal/events"
	apphttp "automation_hub_backend/internal/http"
	"automation_hub_backend/platform/httpkit"
	"automation_hub_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// Module wires the Instagram service and its demo route.
type Module struct {
	service *Service
}

// NewModule creates the Instagram module with all dependencies wired.
func NewModule(orch *ai.Orchestrator, log *logger.Logger, bus events.Bus) *Module {
	return &Module{service: NewService(orch, log, bus)}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "instagram"
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
	ctx.Demo.POST("/instagram/reply", func(c *gin.Context) {
		var comment Comment
		_ = c.ShouldBindJSON(&comment)
		if comment.Text == "" {
			comment.Text = "Bu ürün harika görünüyor, fiyatı nedir?"
		}

		reply, err := m.service.AutoReplyComment(c.Request.Context(), comment)
		if httpkit.HandleError(c, err) {
			return
		}
		httpkit.OK(c, gin.H{"module": "instagram", "action": "comment_reply", "result": reply})
	})
}

var _ apphttp.Module = (*Module)(nil)
