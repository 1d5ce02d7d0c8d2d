package youtube

import (
	"context"
	"strings"
	"testing"

	"automation_hub_backend/internal/ai"
	"automation_hub_backend/platform/ai/openai"
	"automation_hub_backend/platform/logger"
)

type fakeProvider struct {
	completion string
}

func (f *fakeProvider) Complete(ctx context.Context, prompt string, opts openai.CompleteOptions) (string, error) {
	return f.completion, nil
}

func (f *fakeProvider) Classify(ctx context.Context, text string, labels []string) openai.ClassifyResult {
	return openai.ClassifyResult{Label: labels[0]}
}

func newTestService() *Service {
	log := logger.New("test")
	return NewService(ai.NewOrchestrator(&fakeProvider{completion: "five ideas"}, log), log)
}

func TestIdeatePopularTopics(t *testing.T) {
	svc := newTestService()

	ideas, err := svc.IdeatePopularTopics(context.Background(), "productivity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ideas.Niche != "productivity" {
		t.Fatalf("unexpected niche: %q", ideas.Niche)
	}
	if ideas.Suggestions != "five ideas" {
		t.Fatalf("unexpected suggestions: %q", ideas.Suggestions)
	}
	if len(ideas.TopicIdeas) == 0 {
		t.Fatalf("expected standing topic ideas")
	}
}

func TestGenerateVideoAssetsStoryboard(t *testing.T) {
	svc := newTestService()

	assets := svc.GenerateVideoAssets(context.Background(), "10 tips", "")
	if assets.Duration != "10 minutes" {
		t.Fatalf("expected default duration, got %q", assets.Duration)
	}
	if len(assets.Storyboard) != 4 {
		t.Fatalf("expected 4 storyboard scenes, got %d", len(assets.Storyboard))
	}
	if assets.Storyboard[0].Scene != 1 {
		t.Fatalf("scenes must be numbered from 1")
	}
}

func TestPublishToYouTube(t *testing.T) {
	svc := newTestService()

	result := svc.PublishToYouTube(context.Background(), PublishOptions{Title: "My Video"})
	if !result.Published {
		t.Fatalf("expected published=true")
	}
	if result.Status != "uploaded" {
		t.Fatalf("unexpected status: %q", result.Status)
	}
	if !strings.HasPrefix(result.VideoID, "yt_") {
		t.Fatalf("unexpected video id: %q", result.VideoID)
	}
	if !strings.Contains(result.URL, result.VideoID) {
		t.Fatalf("url should embed the video id: %q", result.URL)
	}
}

func TestGetVideoMetrics(t *testing.T) {
	svc := newTestService()

	metrics := svc.GetVideoMetrics(context.Background(), "yt_abc")
	if metrics.VideoID != "yt_abc" {
		t.Fatalf("unexpected video id: %q", metrics.VideoID)
	}
	if !strings.HasSuffix(metrics.ClickThroughRate, "%") {
		t.Fatalf("ctr should be a percentage, got %q", metrics.ClickThroughRate)
	}
}
