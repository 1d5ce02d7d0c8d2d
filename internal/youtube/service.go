package youtube

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"automation_hub_backend/internal/ai"
	"automation_hub_backend/platform/logger"

	"github.com/google/uuid"
)

// TopicIdeas bundles AI suggestions with the standing idea templates.
type TopicIdeas struct {
	Niche       string   `json:"niche"`
	TopicIdeas  []string `json:"topicIdeas"`
	Suggestions string   `json:"suggestions"`
	Timestamp   string   `json:"timestamp"`
}

// StoryboardScene is one scene of a generated storyboard.
type StoryboardScene struct {
	Scene       int    `json:"scene"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// VideoAssets describes the production material for a video idea.
type VideoAssets struct {
	VideoIdea               string            `json:"videoIdea"`
	Duration                string            `json:"duration"`
	Storyboard              []StoryboardScene `json:"storyboard"`
	Voiceover               string            `json:"voiceover"`
	MusicLibrary            []string          `json:"musicLibrary"`
	BRollNeeds              []string          `json:"bRollNeeds"`
	EstimatedProductionTime string            `json:"estimatedProductionTime"`
	Timestamp               string            `json:"timestamp"`
}

// PublishOptions carries what a video is published with.
type PublishOptions struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	FilePath    string   `json:"filePath"`
	Tags        []string `json:"tags"`
}

// PublishResult acknowledges a (mock) upload.
type PublishResult struct {
	Published    bool   `json:"published"`
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	Status       string `json:"status"`
	Visibility   string `json:"visibility"`
	ScheduledFor string `json:"scheduledFor"`
}

// VideoMetrics is a synthetic per-video performance snapshot.
type VideoMetrics struct {
	VideoID              string `json:"videoId"`
	Views                int    `json:"views"`
	Likes                int    `json:"likes"`
	Comments             int    `json:"comments"`
	Shares               int    `json:"shares"`
	AverageWatchDuration int    `json:"averageWatchDuration"`
	ClickThroughRate     string `json:"clickThroughRate"`
	Timestamp            string `json:"timestamp"`
}

// Service ideates and mock-publishes YouTube videos. The Data API is not
// integrated; publish and metrics answers are synthesized.
type Service struct {
	orch *ai.Orchestrator
	log  *logger.Logger
}

// NewService creates the YouTube service.
func NewService(orch *ai.Orchestrator, log *logger.Logger) *Service {
	return &Service{orch: orch, log: log}
}

// IdeatePopularTopics asks the orchestrator for high-potential video ideas
// in a niche.
func (s *Service) IdeatePopularTopics(ctx context.Context, niche string) (TopicIdeas, error) {
	s.log.Info("ideating topics", "niche", niche)

	ideas, err := s.orch.Complete(ctx,
		fmt.Sprintf("YouTube için %s alanında yüksek potansiyelli 5 video fikri öner. Trendleri ve arama hacmini düşün.", niche), "")
	if err != nil {
		return TopicIdeas{}, err
	}

	return TopicIdeas{
		Niche: niche,
		TopicIdeas: []string{
			"10 Dakikada Çözüm",
			"Etkili Teknikler",
			"Yaygın Tuzaklardan Nasıl Kaçınılır",
		},
		Suggestions: ideas,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// GenerateVideoAssets returns a static storyboard for a video idea.
// Production tooling is not implemented.
func (s *Service) GenerateVideoAssets(ctx context.Context, idea, duration string) VideoAssets {
	if duration == "" {
		duration = "10 minutes"
	}
	s.log.Info("generating video assets", "idea", idea)

	return VideoAssets{
		VideoIdea: idea,
		Duration:  duration,
		Storyboard: []StoryboardScene{
			{Scene: 1, Description: "Hook/Introduction", Duration: "0-5s"},
			{Scene: 2, Description: "Problem Statement", Duration: "5-30s"},
			{Scene: 3, Description: "Solution/Tips", Duration: "30s-8min"},
			{Scene: 4, Description: "Call-to-Action", Duration: "8-10min"},
		},
		Voiceover:               "Text-to-Speech optimized script",
		MusicLibrary:            []string{"YTM_Upbeat_Track_01", "YTM_Ambient_Track_02"},
		BRollNeeds:              []string{"B-roll clips for each scene"},
		EstimatedProductionTime: "2-4 hours",
		Timestamp:               time.Now().UTC().Format(time.RFC3339),
	}
}

// PublishToYouTube acknowledges an upload with a synthesized video id.
// Nothing is uploaded.
func (s *Service) PublishToYouTube(ctx context.Context, opts PublishOptions) PublishResult {
	s.log.Info("publishing video", "title", opts.Title)

	videoID := "yt_" + uuid.NewString()
	return PublishResult{
		Published:    true,
		VideoID:      videoID,
		Title:        opts.Title,
		URL:          "https://youtube.com/watch?v=" + videoID,
		Status:       "uploaded",
		Visibility:   "public",
		ScheduledFor: time.Now().UTC().Format(time.RFC3339),
	}
}

// GetVideoMetrics synthesizes a performance snapshot for a video.
func (s *Service) GetVideoMetrics(ctx context.Context, videoID string) VideoMetrics {
	s.log.Info("fetching video metrics", "video_id", videoID)

	return VideoMetrics{
		VideoID:              videoID,
		Views:                rand.Intn(100000),
		Likes:                rand.Intn(5000),
		Comments:             rand.Intn(500),
		Shares:               rand.Intn(100),
		AverageWatchDuration: rand.Intn(600),
		ClickThroughRate:     fmt.Sprintf("%.2f%%", rand.Float64()*5),
		Timestamp:            time.Now().UTC().Format(time.RFC3339),
	}
}
