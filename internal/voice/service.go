package voice

import (
	"context"
	"time"

	"automation_hub_backend/platform/apperr"
	"automation_hub_backend/platform/logger"
	"automation_hub_backend/platform/phone"
	"automation_hub_backend/platform/validator"

	"github.com/google/uuid"
)

// CallOptions carries an outbound survey call request.
type CallOptions struct {
	To     string `json:"to" validate:"required"`
	Script string `json:"script" validate:"required"`
}

// CallResult is the outcome of a (mock) survey call.
type CallResult struct {
	CallSID      string         `json:"callSid"`
	To           string         `json:"to"`
	Status       string         `json:"status"`
	Duration     int            `json:"duration"`
	Responses    map[string]int `json:"responses"`
	AverageScore float64        `json:"averageScore"`
	Timestamp    string         `json:"timestamp"`
}

// TTSResult acknowledges a (mock) text-to-speech message.
type TTSResult struct {
	Sent      bool   `json:"sent"`
	To        string `json:"to"`
	MessageID string `json:"messageId"`
}

// Service mocks outbound voice operations. Numbers are normalized to E.164
// before use so a telephony provider can be swapped in without changing
// callers; no calls are actually placed.
type Service struct {
	log    *logger.Logger
	val    *validator.Validator
	region string
}

// NewService creates the voice service. Region is the default country for
// numbers without an international prefix.
func NewService(log *logger.Logger, val *validator.Validator, region string) *Service {
	return &Service{log: log, val: val, region: region}
}

// CallAndSurvey places a survey call and returns the collected answers. The
// call and its answers are synthesized.
func (s *Service) CallAndSurvey(ctx context.Context, opts CallOptions) (CallResult, error) {
	if err := s.val.Struct(opts); err != nil {
		return CallResult{}, apperr.Validation("to and script are required")
	}

	to, err := s.normalize(opts.To)
	if err != nil {
		return CallResult{}, err
	}

	s.log.Info("initiating call", "to", to)

	return CallResult{
		CallSID:  "CA_" + uuid.NewString(),
		To:       to,
		Status:   "completed",
		Duration: 300,
		Responses: map[string]int{
			"question1": 4,
			"question2": 5,
			"question3": 4,
		},
		AverageScore: 4.3,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// SendTTSMessage delivers a synthesized voice message. Mock delivery.
func (s *Service) SendTTSMessage(ctx context.Context, to, text string) (TTSResult, error) {
	normalized, err := s.normalize(to)
	if err != nil {
		return TTSResult{}, err
	}

	s.log.Info("sending tts message", "to", normalized)

	return TTSResult{
		Sent:      true,
		To:        normalized,
		MessageID: "msg_" + uuid.NewString(),
	}, nil
}

// normalize converts the input to E.164 and rejects anything that does not
// come out as a dialable number.
func (s *Service) normalize(input string) (string, error) {
	normalized := phone.NormalizeE164InRegion(input, s.region)
	if err := s.val.Var(normalized, "required,e164"); err != nil {
		return "", apperr.Validation("invalid destination number")
	}
	return normalized, nil
}
