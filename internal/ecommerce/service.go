package ecommerce

import (
	"context"
	"math/rand"
	"time"

	"automation_hub_backend/internal/events"
	"automation_hub_backend/platform/logger"
)

// Service handles catalog sync and order webhook processing. Platform API
// calls (Shopify/Woo) are out of scope; sync and inventory answers are
// synthesized behind the same interface a real integration would use.
type Service struct {
	log *logger.Logger
	bus events.Bus
}

// NewService creates the ecommerce service.
func NewService(log *logger.Logger, bus events.Bus) *Service {
	return &Service{log: log, bus: bus}
}

// SyncedProduct is a product after a (mock) catalog sync.
type SyncedProduct struct {
	Product  map[string]any `json:"product"`
	Synced   bool           `json:"synced"`
	SyncedAt string         `json:"syncedAt"`
}

// SyncResult summarizes a catalog sync run.
type SyncResult struct {
	Synced    int    `json:"synced"`
	Total     int    `json:"total"`
	Timestamp string `json:"timestamp"`
}

// SyncCatalog marks every product as synced. No platform catalog is
// contacted.
func (s *Service) SyncCatalog(ctx context.Context, products []map[string]any) SyncResult {
	s.log.Info("syncing products to catalog", "count", len(products))

	now := time.Now().UTC().Format(time.RFC3339)
	synced := make([]SyncedProduct, 0, len(products))
	for _, product := range products {
		synced = append(synced, SyncedProduct{Product: product, Synced: true, SyncedAt: now})
	}

	return SyncResult{
		Synced:    len(synced),
		Total:     len(products),
		Timestamp: now,
	}
}

// OrderSummary is the acknowledgment returned for an order webhook.
type OrderSummary struct {
	Acknowledged   bool   `json:"acknowledged"`
	OrderID        string `json:"orderId"`
	CustomerEmail  string `json:"customerEmail,omitempty"`
	TotalAmount    string `json:"totalAmount,omitempty"`
	ItemsProcessed int    `json:"itemsProcessed"`
	Timestamp      string `json:"timestamp"`
}

// HandleOrderWebhook normalizes an inbound order payload into a canonical
// summary. Any subset of the accepted field variants may be absent.
func (s *Service) HandleOrderWebhook(ctx context.Context, raw map[string]any) (OrderSummary, error) {
	order := normalizeOrder(raw)

	s.log.Info("order webhook processed",
		"order_id", order.ID,
		"items", len(order.Items),
		"total", order.Total,
	)

	s.bus.Publish(ctx, events.OrderProcessed{
		BaseEvent: events.NewBaseEvent(),
		OrderID:   order.ID,
		ItemCount: len(order.Items),
	})

	return OrderSummary{
		Acknowledged:   true,
		OrderID:        order.ID,
		CustomerEmail:  order.CustomerEmail,
		TotalAmount:    order.Total,
		ItemsProcessed: len(order.Items),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// InventoryStatus is a synthesized stock answer for one product.
type InventoryStatus struct {
	ProductID   string `json:"productId"`
	InStock     bool   `json:"inStock"`
	Quantity    int    `json:"quantity"`
	LastUpdated string `json:"lastUpdated"`
}

// GetInventoryStatus synthesizes stock levels per product. Values are fresh
// on every call; nothing is cached.
func (s *Service) GetInventoryStatus(ctx context.Context, productIDs []string) []InventoryStatus {
	now := time.Now().UTC().Format(time.RFC3339)
	statuses := make([]InventoryStatus, 0, len(productIDs))
	for _, id := range productIDs {
		statuses = append(statuses, InventoryStatus{
			ProductID:   id,
			InStock:     rand.Float64() > 0.3,
			Quantity:    rand.Intn(1000),
			LastUpdated: now,
		})
	}
	return statuses
}

// UpsellRecommendation is a suggested add-on product.
type UpsellRecommendation struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Discount string `json:"discount"`
}

// UpsellResult bundles upsell recommendations for a processed order.
type UpsellResult struct {
	OrderID         string                 `json:"orderId"`
	Recommendations []UpsellRecommendation `json:"recommendations"`
	Timestamp       string                 `json:"timestamp"`
}

// ProcessOrderAndUpsell returns complementary-product recommendations for an
// order. The list is static until a real recommendation source is wired in.
func (s *Service) ProcessOrderAndUpsell(ctx context.Context, raw map[string]any) UpsellResult {
	order := normalizeOrder(raw)

	return UpsellResult{
		OrderID: order.ID,
		Recommendations: []UpsellRecommendation{
			{ID: "prod_001", Name: "Product A", Discount: "10%"},
			{ID: "prod_002", Name: "Product B", Discount: "15%"},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
