// Package voice provides the outbound voice module: survey calls and TTS
// message stubs over normalized phone numbers.
package voice

import (
	apphttp "automation_hub_backend/internal/http"
	"automation_hub_backend/platform/httpkit"
	"automation_hub_backend/platform/logger"
	"automation_hub_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Module wires the voice service and its demo route.
type Module struct {
	service *Service
}

// NewModule creates the voice module with all dependencies wired.
func NewModule(log *logger.Logger, val *validator.Validator, region string) *Module {
	return &Module{service: NewService(log, val, region)}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "voice"
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
	ctx.Demo.POST("/voice", func(c *gin.Context) {
		var opts CallOptions
		_ = c.ShouldBindJSON(&opts)
		if opts.To == "" {
			opts.To = "+16502530000"
		}
		if opts.Script == "" {
			opts.Script = "How satisfied are you?"
		}

		result, err := m.service.CallAndSurvey(c.Request.Context(), opts)
		if httpkit.HandleError(c, err) {
			return
		}
		httpkit.OK(c, gin.H{"module": "voice", "result": result})
	})
}

var _ apphttp.Module = (*Module)(nil)
