// Package openai provides a client for OpenAI-compatible chat completion APIs.
// It is the single upstream used for text generation and prompt-based
// classification.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"automation_hub_backend/platform/apperr"
	"automation_hub_backend/platform/config"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"

	// classifierModel is the cheaper model used for label selection.
	classifierModel = "gpt-3.5-turbo"

	// noContentPlaceholder is returned when the provider answers with an
	// empty choice list content.
	noContentPlaceholder = "No response"
)

// Client is an HTTP client for the chat completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// CompleteOptions tunes a single completion call.
type CompleteOptions struct {
	// Model overrides the client's default model when non-empty.
	Model string
}

// ClassifyResult reports the chosen label and whether the safe default was
// used because the provider call failed.
type ClassifyResult struct {
	Label    string `json:"label"`
	FellBack bool   `json:"fellBack"`
}

// NewClient creates a provider client from AI configuration.
func NewClient(cfg config.AIConfig) *Client {
	baseURL := strings.TrimRight(cfg.GetOpenAIBaseURL(), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.GetOpenAIAPIKey(),
		model:      cfg.GetOpenAIModel(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends a single-user-message completion request and returns the
// first choice's content. Exactly one outbound request is made; there are no
// retries.
func (c *Client) Complete(ctx context.Context, prompt string, opts CompleteOptions) (string, error) {
	if c.apiKey == "" {
		return "", apperr.Configuration("OPENAI_API_KEY not configured")
	}

	model := opts.Model
	if model == "" {
		model = c.model
	}

	reqBody := chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
		MaxTokens:   1000,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperr.Wrap(apperr.KindUpstream, "completion request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return "", apperr.Upstream(fmt.Sprintf("provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", apperr.Wrap(apperr.KindUpstream, "failed to decode completion response", err)
	}
	if result.Error != nil {
		return "", apperr.Upstream("provider error: " + result.Error.Message)
	}
	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return noContentPlaceholder, nil
	}

	return result.Choices[0].Message.Content, nil
}

// Classify asks the provider to pick exactly one label for the text. On any
// failure it falls back to the first label; the fallback is reported in the
// result rather than surfaced as an error, so callers always get a label.
func (c *Client) Classify(ctx context.Context, text string, labels []string) ClassifyResult {
	prompt := fmt.Sprintf(
		"Classify the following text into one of these categories: %s. Text: %q. Respond with only the category name.",
		strings.Join(labels, ", "), text,
	)

	raw, err := c.Complete(ctx, prompt, CompleteOptions{Model: classifierModel})
	if err != nil {
		return ClassifyResult{Label: labels[0], FellBack: true}
	}

	return ClassifyResult{Label: strings.TrimSpace(raw)}
}
