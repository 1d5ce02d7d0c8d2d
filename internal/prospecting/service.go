package prospecting

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"automation_hub_backend/internal/ai"
	"automation_hub_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// Segmentation thresholds. Lower bounds are inclusive.
const (
	highScoreFloor   = 0.8
	mediumScoreFloor = 0.6
)

var defaultPlatforms = []string{"instagram", "youtube"}

// Lead is a prospect before or after enrichment.
type Lead struct {
	Username   string  `json:"username,omitempty"`
	Email      string  `json:"email,omitempty"`
	Score      float64 `json:"score,omitempty"`
	EnrichedAt string  `json:"enrichedAt,omitempty"`
	Source     string  `json:"source,omitempty"`
	DataPoints []string `json:"dataPoints,omitempty"`
}

// DiscoverOptions scopes a lead discovery run.
type DiscoverOptions struct {
	Niche     string   `json:"niche"`
	Platforms []string `json:"platforms"`
}

// DiscoveryResult is the outcome of a discovery run: a strategy plus the
// leads found. Lead sourcing has no data source yet, so the list is empty.
type DiscoveryResult struct {
	Niche     string   `json:"niche"`
	Platforms []string `json:"platforms"`
	Leads     []Lead   `json:"leads"`
	Strategy  string   `json:"strategy"`
	Timestamp string   `json:"timestamp"`
}

// Segments partitions leads by score.
type Segments struct {
	HighPriority []Lead `json:"highPriority"`
	Medium       []Lead `json:"medium"`
	Low          []Lead `json:"low"`
}

// Service discovers, enriches and segments leads. Enrichment providers
// (Clearbit, Hunter) are not integrated; scores are synthesized in the
// [0.7, 1.0) band behind the same shape a real enricher would return.
type Service struct {
	orch *ai.Orchestrator
	log  *logger.Logger
}

// NewService creates the prospecting service.
func NewService(orch *ai.Orchestrator, log *logger.Logger) *Service {
	return &Service{orch: orch, log: log}
}

// DiscoverLeads asks the orchestrator for a per-niche outreach strategy.
// The returned lead list is always empty until a sourcing backend exists.
func (s *Service) DiscoverLeads(ctx context.Context, opts DiscoverOptions) (DiscoveryResult, error) {
	platforms := opts.Platforms
	if len(platforms) == 0 {
		platforms = defaultPlatforms
	}

	s.log.Info("discovering leads", "niche", opts.Niche)

	strategy, err := s.orch.Complete(ctx,
		fmt.Sprintf("Hedef kitle nişi: %s. %s platformlarında hangi içerik formatları ve hashtag'ler etkilidir? 5 pratik öneri ver.",
			opts.Niche, strings.Join(platforms, ", ")), "")
	if err != nil {
		return DiscoveryResult{}, err
	}

	return DiscoveryResult{
		Niche:     opts.Niche,
		Platforms: platforms,
		Leads:     []Lead{},
		Strategy:  strategy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// EnrichLead attaches a synthesized score and enrichment metadata. The score
// always lands in [0.7, 1.0).
func (s *Service) EnrichLead(ctx context.Context, lead Lead) (Lead, error) {
	identifier := lead.Username
	if identifier == "" {
		identifier = lead.Email
	}
	s.log.Info("enriching lead", "lead", identifier)

	lead.Score = rand.Float64()*0.3 + 0.7
	lead.EnrichedAt = time.Now().UTC().Format(time.RFC3339)
	lead.Source = "prospecting_module"
	lead.DataPoints = []string{"email", "company", "industry", "location"}
	return lead, nil
}

// BulkEnrich enriches all leads concurrently. Output order matches input
// order; the first failure fails the batch.
func (s *Service) BulkEnrich(ctx context.Context, leads []Lead) ([]Lead, error) {
	enriched := make([]Lead, len(leads))
	g, gctx := errgroup.WithContext(ctx)
	for i, lead := range leads {
		i, lead := i, lead
		g.Go(func() error {
			result, err := s.EnrichLead(gctx, lead)
			if err != nil {
				return err
			}
			enriched[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}

// SegmentLeads partitions leads into high/medium/low score bands. Every lead
// lands in exactly one segment.
func (s *Service) SegmentLeads(leads []Lead) Segments {
	segments := Segments{
		HighPriority: []Lead{},
		Medium:       []Lead{},
		Low:          []Lead{},
	}
	for _, lead := range leads {
		switch {
		case lead.Score >= highScoreFloor:
			segments.HighPriority = append(segments.HighPriority, lead)
		case lead.Score >= mediumScoreFloor:
			segments.Medium = append(segments.Medium, lead)
		default:
			segments.Low = append(segments.Low, lead)
		}
	}
	return segments
}
