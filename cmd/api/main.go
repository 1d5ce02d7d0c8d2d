package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"automation_hub_backend/internal/ai"
	"automation_hub_backend/internal/appointments"
	"automation_hub_backend/internal/ecommerce"
	"automation_hub_backend/internal/email"
	"automation_hub_backend/internal/events"
	"automation_hub_backend/internal/growth"
	apphttp "automation_hub_backend/internal/http"
	"automation_hub_backend/internal/http/router"
	"automation_hub_backend/internal/instagram"
	"automation_hub_backend/internal/notification"
	"automation_hub_backend/internal/prospecting"
	"automation_hub_backend/internal/reels"
	"automation_hub_backend/internal/voice"
	"automation_hub_backend/internal/webhook"
	"automation_hub_backend/internal/youtube"
	"automation_hub_backend/platform/ai/openai"
	"automation_hub_backend/platform/config"
	"automation_hub_backend/platform/logger"
	"automation_hub_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// AI provider and orchestrator shared by the content modules
	provider := openai.NewClient(cfg)
	orchestrator := ai.NewOrchestrator(provider, log)

	sender := email.NewSender(cfg)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notification module subscribes to domain events (not HTTP-facing)
	notificationModule := notification.NewModule(sender, log)
	notificationModule.Register(eventBus)

	prospectingModule := prospecting.NewModule(orchestrator, log)
	reelsModule := reels.NewModule(orchestrator, log)
	growthModule := growth.NewModule(orchestrator, log)
	ecommerceModule := ecommerce.NewModule(log, eventBus)
	youtubeModule := youtube.NewModule(orchestrator, log)
	instagramModule := instagram.NewModule(orchestrator, log, eventBus)
	appointmentsModule := appointments.NewModule(log, eventBus)
	voiceModule := voice.NewModule(log, val, cfg.GetDefaultPhoneRegion())

	webhookHandler := webhook.NewHandler(
		cfg.GetVerifyToken(),
		!cfg.IsDevelopment(),
		log,
		eventBus,
		instagramModule.Service(),
		ecommerceModule.Service(),
		appointmentsModule.Service(),
	)
	webhookModule := webhook.NewModule(webhookHandler)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			webhookModule,
			prospectingModule,
			reelsModule,
			growthModule,
			ecommerceModule,
			youtubeModule,
			instagramModule,
			appointmentsModule,
			voiceModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
