// Package router builds the Gin engine: global middleware, health endpoint,
// module route registration, and the 404 handler.
package router

import (
	"net/http"
	"time"

	apphttp "automation_hub_backend/internal/http"
	"automation_hub_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// maxBodyBytes caps inbound webhook payloads at 1MB.
const maxBodyBytes = 1 << 20

// New assembles the engine from the fully initialized App.
func New(app *apphttp.App) *gin.Engine {
	if !app.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(corsMiddleware(app.Config.GetCORSOrigins()))
	engine.Use(httpkit.RequestLogger(app.Logger))

	limiter := httpkit.NewIPRateLimiter(app.Config.GetRateLimitWindow(), app.Config.GetRateLimitMax(), app.Logger)
	engine.Use(limiter.RateLimit())
	engine.Use(httpkit.MaxBodySize(maxBodyBytes))

	startedAt := time.Now()
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "OK",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"uptime":      time.Since(startedAt).Seconds(),
			"environment": app.Config.GetEnv(),
		})
	})

	ctx := &apphttp.RouterContext{Engine: engine}
	if app.Config.IsDevelopment() {
		ctx.Demo = engine.Group("/demo")
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Info("module routes registered", "module", module.Name())
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "Not Found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	return engine
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Request-Id")
	return cors.New(cfg)
}
