package voice

import (
	"context"
	"strings"
	"testing"

	"automation_hub_backend/platform/apperr"
	"automation_hub_backend/platform/logger"
	"automation_hub_backend/platform/validator"
)

func newTestService() *Service {
	return NewService(logger.New("test"), validator.New(), "US")
}

func TestCallAndSurveyNormalizesNumber(t *testing.T) {
	svc := newTestService()

	result, err := svc.CallAndSurvey(context.Background(), CallOptions{To: "650-253-0000", Script: "How satisfied are you?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.To != "+16502530000" {
		t.Fatalf("expected E.164 number, got %q", result.To)
	}
	if !strings.HasPrefix(result.CallSID, "CA_") {
		t.Fatalf("unexpected call sid: %q", result.CallSID)
	}
	if result.Status != "completed" {
		t.Fatalf("unexpected status: %q", result.Status)
	}
	if len(result.Responses) != 3 {
		t.Fatalf("expected survey responses, got %v", result.Responses)
	}
}

func TestCallAndSurveyRejectsMissingScript(t *testing.T) {
	svc := newTestService()

	_, err := svc.CallAndSurvey(context.Background(), CallOptions{To: "+16502530000"})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCallAndSurveyRejectsInvalidNumber(t *testing.T) {
	svc := newTestService()

	_, err := svc.CallAndSurvey(context.Background(), CallOptions{To: "not-a-number", Script: "Hi"})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSendTTSMessage(t *testing.T) {
	svc := newTestService()

	result, err := svc.SendTTSMessage(context.Background(), "+16502530000", "Your order shipped")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Sent {
		t.Fatalf("expected sent=true")
	}
	if result.To != "+16502530000" {
		t.Fatalf("unexpected recipient: %q", result.To)
	}
	if !strings.HasPrefix(result.MessageID, "msg_") {
		t.Fatalf("unexpected message id: %q", result.MessageID)
	}
}
