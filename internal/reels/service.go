package reels

import (
	"context"
	"fmt"
	"time"

	"automation_hub_backend/internal/ai"
	"automation_hub_backend/platform/logger"

	"github.com/google/uuid"
)

// Script is a generated reel script.
type Script struct {
	Topic     string `json:"topic"`
	Script    string `json:"script"`
	Duration  string `json:"duration"`
	Timestamp string `json:"timestamp"`
}

// Assets describes the rendered material for a reel.
type Assets struct {
	VideoPath            string   `json:"videoPath"`
	Captions             string   `json:"captions"`
	MusicRecommendations []string `json:"musicRecommendations"`
	EditingTips          string   `json:"editingTips"`
	Timestamp            string   `json:"timestamp"`
}

// PublishOptions carries what a reel is published with.
type PublishOptions struct {
	VideoPath string   `json:"videoPath"`
	Caption   string   `json:"caption"`
	Hashtags  []string `json:"hashtags"`
}

// PublishResult acknowledges a (mock) publish.
type PublishResult struct {
	Status       string   `json:"status"`
	MediaID      string   `json:"mediaId"`
	Caption      string   `json:"caption"`
	Hashtags     []string `json:"hashtags"`
	ScheduledFor string   `json:"scheduledFor"`
}

// ScheduleOptions carries a deferred publish request.
type ScheduleOptions struct {
	VideoPath   string `json:"videoPath"`
	Caption     string `json:"caption"`
	PublishTime string `json:"publishTime"`
}

// ScheduleResult acknowledges a (mock) scheduled publish.
type ScheduleResult struct {
	Scheduled   bool   `json:"scheduled"`
	MediaID     string `json:"mediaId"`
	PublishTime string `json:"publishTime"`
	Status      string `json:"status"`
}

// Service generates reel scripts via the orchestrator and mocks rendering
// and publishing. No video pipeline or Instagram publishing API is wired.
type Service struct {
	orch *ai.Orchestrator
	log  *logger.Logger
}

// NewService creates the reels service.
func NewService(orch *ai.Orchestrator, log *logger.Logger) *Service {
	return &Service{orch: orch, log: log}
}

// GenerateReelScript asks for a 30-45 second script with hook, benefit and
// call to action.
func (s *Service) GenerateReelScript(ctx context.Context, topic string) (Script, error) {
	s.log.Info("generating reel script", "topic", topic)

	script, err := s.orch.Complete(ctx,
		fmt.Sprintf("Instagram Reels için 30-45 saniye script yaz. Konu: %s. Kanca, fayda, CTA içermeli.", topic), "")
	if err != nil {
		return Script{}, err
	}

	return Script{
		Topic:     topic,
		Script:    script,
		Duration:  "30-45s",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// RenderReelAssets returns static asset descriptors. Rendering is not
// implemented.
func (s *Service) RenderReelAssets(ctx context.Context, script Script) Assets {
	s.log.Info("rendering reel assets", "topic", script.Topic)

	return Assets{
		VideoPath:            "/tmp/reel.mp4",
		Captions:             "SRT format captions",
		MusicRecommendations: []string{"upbeat_track_1", "upbeat_track_2"},
		EditingTips:          "Fast cuts, trending sounds, text overlays",
		Timestamp:            time.Now().UTC().Format(time.RFC3339),
	}
}

// PublishReel queues a reel for publishing and returns a synthesized media
// id. Nothing is uploaded.
func (s *Service) PublishReel(ctx context.Context, opts PublishOptions) PublishResult {
	s.log.Info("publishing reel", "video", opts.VideoPath)

	hashtags := opts.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}

	return PublishResult{
		Status:       "queued",
		MediaID:      "ig_media_" + uuid.NewString(),
		Caption:      opts.Caption,
		Hashtags:     hashtags,
		ScheduledFor: time.Now().UTC().Format(time.RFC3339),
	}
}

// ScheduleReel registers a deferred publish. The schedule is acknowledged
// but not stored anywhere.
func (s *Service) ScheduleReel(ctx context.Context, opts ScheduleOptions) ScheduleResult {
	s.log.Info("scheduling reel", "publish_time", opts.PublishTime)

	return ScheduleResult{
		Scheduled:   true,
		MediaID:     "ig_media_" + uuid.NewString(),
		PublishTime: opts.PublishTime,
		Status:      "scheduled",
	}
}
