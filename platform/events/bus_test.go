package events

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"automation_hub_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	var calls atomic.Int32
	done := make(chan struct{}, 2)
	handler := HandlerFunc(func(ctx context.Context, event Event) error {
		calls.Add(1)
		done <- struct{}{}
		return nil
	})
	bus.Subscribe("test.event", handler)
	bus.Subscribe("test.event", handler)

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"})

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("handler %d not invoked", i)
		}
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 handler calls, got %d", calls.Load())
	}
}

func TestPublishIgnoresUnsubscribedEvents(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	bus.Subscribe("other.event", HandlerFunc(func(ctx context.Context, event Event) error {
		t.Errorf("handler must not fire for a different event name")
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"})
	time.Sleep(50 * time.Millisecond)
}

func TestPublishSyncJoinsErrors(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))

	failure := errors.New("handler failed")
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		return failure
	}))
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		return nil
	}))

	err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"})
	if !errors.Is(err, failure) {
		t.Fatalf("expected joined handler error, got %v", err)
	}
}
