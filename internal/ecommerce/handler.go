package ecommerce

import (
	"automation_hub_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the development-only ecommerce demo endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type syncDemoRequest struct {
	Products []map[string]any `json:"products"`
}

// DemoSync handles POST /demo/ecommerce/sync
func (h *Handler) DemoSync(c *gin.Context) {
	var req syncDemoRequest
	_ = c.ShouldBindJSON(&req)

	if len(req.Products) == 0 {
		req.Products = []map[string]any{
			{"id": 1, "name": "Product 1", "price": 29.99},
			{"id": 2, "name": "Product 2", "price": 49.99},
		}
	}

	result := h.svc.SyncCatalog(c.Request.Context(), req.Products)
	httpkit.OK(c, gin.H{"module": "ecommerce", "action": "sync", "result": result})
}
