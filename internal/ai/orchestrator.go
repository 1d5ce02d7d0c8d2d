// Package ai provides the orchestration layer between domain modules and the
// AI completion provider. All module AI traffic goes through the Orchestrator
// so input validation and logging happen in one place.
package ai

import (
	"context"

	"automation_hub_backend/platform/apperr"
	"automation_hub_backend/platform/ai/openai"
	"automation_hub_backend/platform/logger"
)

// defaultModel is used when a caller does not specify one.
const defaultModel = "gpt-4"

// ClassifyResult is re-exported so modules do not import the provider package.
type ClassifyResult = openai.ClassifyResult

// Provider is the narrow surface the orchestrator needs from the upstream
// client.
type Provider interface {
	Complete(ctx context.Context, prompt string, opts openai.CompleteOptions) (string, error)
	Classify(ctx context.Context, text string, labels []string) ClassifyResult
}

// Orchestrator validates inputs and routes AI requests to the provider.
type Orchestrator struct {
	provider Provider
	log      *logger.Logger
}

// NewOrchestrator creates an orchestrator backed by the given provider.
func NewOrchestrator(provider Provider, log *logger.Logger) *Orchestrator {
	return &Orchestrator{provider: provider, log: log}
}

// Complete generates text for the prompt. Model may be empty, in which case
// the default model is used. Provider errors are propagated unchanged.
func (o *Orchestrator) Complete(ctx context.Context, prompt, model string) (string, error) {
	if prompt == "" {
		return "", apperr.Validation("prompt is required")
	}
	if model == "" {
		model = defaultModel
	}

	o.log.AIRequest("complete", model)

	result, err := o.provider.Complete(ctx, prompt, openai.CompleteOptions{Model: model})
	if err != nil {
		o.log.AIError("complete", err)
		return "", err
	}
	return result, nil
}

// Classify picks one label for the text. The provider falls back to the
// first label on upstream failure, reported via ClassifyResult.FellBack;
// only empty input is an error here.
func (o *Orchestrator) Classify(ctx context.Context, text string, labels []string) (ClassifyResult, error) {
	if text == "" {
		return ClassifyResult{}, apperr.Validation("text is required")
	}
	if len(labels) == 0 {
		return ClassifyResult{}, apperr.Validation("at least one label is required")
	}

	o.log.AIRequest("classify", "")

	return o.provider.Classify(ctx, text, labels), nil
}

// Embed returns an embedding vector for the text.
//
// This is a fixed stub vector, not a real embedding. It exists so callers
// can program against the final interface; do not treat the values as a
// production contract.
func (o *Orchestrator) Embed(ctx context.Context, text string) ([]float64, error) {
	if text == "" {
		return nil, apperr.Validation("text is required")
	}

	o.log.AIRequest("embed", "")

	return []float64{0.1, 0.2, 0.3}, nil
}
