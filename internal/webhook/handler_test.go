package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"automation_hub_backend/internal/appointments"
	"automation_hub_backend/internal/ecommerce"
	"automation_hub_backend/internal/events"
	apphttp "automation_hub_backend/internal/http"
	"automation_hub_backend/internal/instagram"
	"automation_hub_backend/platform/apperr"
	"automation_hub_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

type fakeInstagram struct {
	commentCalls int
	dmCalls      int
	err          error
}

func (f *fakeInstagram) AutoReplyComment(ctx context.Context, comment instagram.Comment) (instagram.CommentReply, error) {
	f.commentCalls++
	if f.err != nil {
		return instagram.CommentReply{}, f.err
	}
	return instagram.CommentReply{OriginalComment: comment.Text, Intent: "soru", Reply: "reply", Posted: true}, nil
}

func (f *fakeInstagram) AutoReplyDM(ctx context.Context, message instagram.Message) (instagram.DMReply, error) {
	f.dmCalls++
	if f.err != nil {
		return instagram.DMReply{}, f.err
	}
	return instagram.DMReply{OriginalMessage: message.Text, Reply: "reply", Sent: true}, nil
}

type fakeOrders struct {
	calls int
}

func (f *fakeOrders) HandleOrderWebhook(ctx context.Context, raw map[string]any) (ecommerce.OrderSummary, error) {
	f.calls++
	items, _ := raw["items"].([]any)
	id, _ := raw["order_id"].(string)
	return ecommerce.OrderSummary{Acknowledged: true, OrderID: id, ItemsProcessed: len(items)}, nil
}

type fakeSlots struct {
	calls int
}

func (f *fakeSlots) ProposeSlots(ctx context.Context, opts appointments.ProposeSlotsOptions) ([]appointments.Slot, error) {
	f.calls++
	slots := make([]appointments.Slot, 5)
	for i := range slots {
		start := time.Date(2026, 9, i+1, 10, 0, 0, 0, time.UTC)
		slots[i] = appointments.Slot{Start: start, End: start.Add(30 * time.Minute), DurationMinutes: 30, Available: true}
	}
	return slots, nil
}

type testEnv struct {
	engine    *gin.Engine
	instagram *fakeInstagram
	orders    *fakeOrders
	slots     *fakeSlots
}

func newTestEnv(t *testing.T, production bool, igErr error) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.New("test")
	env := &testEnv{
		instagram: &fakeInstagram{err: igErr},
		orders:    &fakeOrders{},
		slots:     &fakeSlots{},
	}

	handler := NewHandler("secret-token", production, log, events.NewInMemoryBus(log), env.instagram, env.orders, env.slots)
	env.engine = gin.New()
	NewModule(handler).RegisterRoutes(&apphttp.RouterContext{Engine: env.engine})
	return env
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	e.engine.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) post(path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	e.engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

func TestVerifyHandshakeSuccess(t *testing.T) {
	env := newTestEnv(t, false, nil)

	rec := env.get("/webhook?hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=challenge-42")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "challenge-42" {
		t.Fatalf("expected verbatim challenge, got %q", rec.Body.String())
	}
}

func TestVerifyHandshakeWrongToken(t *testing.T) {
	env := newTestEnv(t, false, nil)

	rec := env.get("/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=c")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestVerifyHandshakeWrongMode(t *testing.T) {
	env := newTestEnv(t, false, nil)

	rec := env.get("/webhook?hub.mode=unsubscribe&hub.verify_token=secret-token&hub.challenge=c")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestVerifyHandshakeMissingParams(t *testing.T) {
	env := newTestEnv(t, false, nil)

	for _, path := range []string{
		"/webhook",
		"/webhook?hub.mode=subscribe",
		"/webhook?hub.verify_token=secret-token",
	} {
		rec := env.get(path)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, rec.Code)
		}
	}
}

func TestReceiveEmptyBody(t *testing.T) {
	env := newTestEnv(t, false, nil)

	for _, body := range []string{"", "{}"} {
		rec := env.post("/webhook", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
		resp := decodeBody(t, rec)
		if resp["error"] != "Empty request body" {
			t.Fatalf("unexpected error message: %v", resp["error"])
		}
	}
}

func TestReceiveInstagramComment(t *testing.T) {
	env := newTestEnv(t, false, nil)

	rec := env.post("/webhook", `{"type":"ig.comment","data":{"text":"Bu ne kadar?"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["received"] != true {
		t.Fatalf("expected received=true, got %v", resp["received"])
	}
	if resp["module"] != "instagram" || resp["action"] != "comment_reply" {
		t.Fatalf("unexpected dispatch: module=%v action=%v", resp["module"], resp["action"])
	}
	if _, ok := resp["result"].(map[string]any); !ok {
		t.Fatalf("expected result object, got %T", resp["result"])
	}
	if env.instagram.commentCalls != 1 {
		t.Fatalf("expected one comment call, got %d", env.instagram.commentCalls)
	}
}

func TestReceiveInstagramDM(t *testing.T) {
	env := newTestEnv(t, false, nil)

	rec := env.post("/webhook", `{"object":"instagram","data":{"from":{"id":"user_7"}}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["action"] != "dm_reply" {
		t.Fatalf("expected dm_reply action, got %v", resp["action"])
	}
	if env.instagram.dmCalls != 1 {
		t.Fatalf("expected one dm call, got %d", env.instagram.dmCalls)
	}
}

func TestReceiveOrder(t *testing.T) {
	env := newTestEnv(t, false, nil)

	rec := env.post("/webhook", `{"type":"shopify.order.created","data":{"order_id":"order_123","items":[{"sku":"a"},{"sku":"b"}]}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["module"] != "ecommerce" || resp["action"] != "order_processed" {
		t.Fatalf("unexpected dispatch: module=%v action=%v", resp["module"], resp["action"])
	}
	result, ok := resp["result"].(map[string]any)
	if !ok {
		t.Fatalf("expected result object, got %T", resp["result"])
	}
	if result["orderId"] != "order_123" {
		t.Fatalf("unexpected order id: %v", result["orderId"])
	}
	if result["itemsProcessed"] != float64(2) {
		t.Fatalf("expected 2 items processed, got %v", result["itemsProcessed"])
	}
}

func TestReceiveBookingRequest(t *testing.T) {
	env := newTestEnv(t, false, nil)

	rec := env.post("/webhook", `{"type":"calendar.booking_request","timezone":"UTC"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["action"] != "slots_proposed" {
		t.Fatalf("expected slots_proposed action, got %v", resp["action"])
	}
	slots, ok := resp["slots"].([]any)
	if !ok {
		t.Fatalf("expected slots array, got %T", resp["slots"])
	}
	if len(slots) != 5 {
		t.Fatalf("expected 5 slots, got %d", len(slots))
	}
}

func TestReceiveUnknownEventAcksWithoutSideEffects(t *testing.T) {
	env := newTestEnv(t, false, nil)

	rec := env.post("/webhook", `{"type":"custom.event","payload":1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["received"] != true {
		t.Fatalf("expected received=true, got %v", resp["received"])
	}
	if resp["eventType"] != "custom.event" {
		t.Fatalf("unexpected eventType: %v", resp["eventType"])
	}
	if _, ok := resp["module"]; ok {
		t.Fatalf("generic ack must not name a module: %v", resp)
	}
	if env.instagram.commentCalls+env.instagram.dmCalls+env.orders.calls+env.slots.calls != 0 {
		t.Fatalf("unknown event must not reach any module")
	}
}

func TestReceiveHandlerErrorEnvelope(t *testing.T) {
	env := newTestEnv(t, false, apperr.Upstream("provider returned 500"))

	rec := env.post("/webhook", `{"type":"ig.comment","data":{"text":"hi"}}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["error"] != "webhook_processing_error" {
		t.Fatalf("unexpected error code: %v", resp["error"])
	}
	if resp["message"] != "provider returned 500" {
		t.Fatalf("expected concrete message outside production, got %v", resp["message"])
	}
}

func TestReceiveHandlerErrorHidesMessageInProduction(t *testing.T) {
	env := newTestEnv(t, true, apperr.Upstream("provider returned 500"))

	rec := env.post("/webhook", `{"type":"ig.comment","data":{"text":"hi"}}`)
	resp := decodeBody(t, rec)
	if resp["message"] == "provider returned 500" {
		t.Fatalf("production response must not leak the concrete error")
	}
}

func TestEchoEndpoint(t *testing.T) {
	env := newTestEnv(t, false, nil)

	rec := env.post("/test/webhook", `{"ping":"pong"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	body, ok := resp["body"].(map[string]any)
	if !ok {
		t.Fatalf("expected echoed body, got %T", resp["body"])
	}
	if body["ping"] != "pong" {
		t.Fatalf("expected payload echoed back, got %v", body)
	}
}
