package ecommerce

import (
	"context"
	"testing"

	"automation_hub_backend/internal/events"
	"automation_hub_backend/platform/logger"
)

func newTestService() *Service {
	log := logger.New("test")
	return NewService(log, events.NewInMemoryBus(log))
}

func TestHandleOrderWebhook(t *testing.T) {
	svc := newTestService()

	summary, err := svc.HandleOrderWebhook(context.Background(), map[string]any{
		"order_id": "order_123",
		"total":    "99.99",
		"billing":  map[string]any{"email": "buyer@example.com"},
		"items":    []any{map[string]any{"sku": "a"}, map[string]any{"sku": "b"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !summary.Acknowledged {
		t.Fatalf("expected acknowledged summary")
	}
	if summary.OrderID != "order_123" {
		t.Fatalf("unexpected order id: %q", summary.OrderID)
	}
	if summary.ItemsProcessed != 2 {
		t.Fatalf("expected 2 items processed, got %d", summary.ItemsProcessed)
	}
	if summary.Timestamp == "" {
		t.Fatalf("expected a timestamp")
	}
}

func TestSyncCatalogMarksAllSynced(t *testing.T) {
	svc := newTestService()

	products := []map[string]any{
		{"id": 1, "name": "Product 1"},
		{"id": 2, "name": "Product 2"},
		{"id": 3, "name": "Product 3"},
	}
	result := svc.SyncCatalog(context.Background(), products)

	if result.Synced != 3 || result.Total != 3 {
		t.Fatalf("expected all products synced, got %+v", result)
	}
}

func TestGetInventoryStatusCoversAllProducts(t *testing.T) {
	svc := newTestService()

	statuses := svc.GetInventoryStatus(context.Background(), []string{"p1", "p2", "p3"})
	if len(statuses) != 3 {
		t.Fatalf("expected one status per product, got %d", len(statuses))
	}
	for i, status := range statuses {
		if status.ProductID == "" {
			t.Fatalf("status %d missing product id", i)
		}
		if status.Quantity < 0 || status.Quantity >= 1000 {
			t.Fatalf("quantity out of range: %d", status.Quantity)
		}
	}
}

func TestProcessOrderAndUpsell(t *testing.T) {
	svc := newTestService()

	result := svc.ProcessOrderAndUpsell(context.Background(), map[string]any{"id": "order_7"})
	if result.OrderID != "order_7" {
		t.Fatalf("unexpected order id: %q", result.OrderID)
	}
	if len(result.Recommendations) == 0 {
		t.Fatalf("expected upsell recommendations")
	}
}
