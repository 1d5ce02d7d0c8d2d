package ecommerce

import (
	"strconv"
)

// normalizedOrder is the canonical view of an order payload after field-name
// normalization. Shopify and WooCommerce deliver the same information under
// different keys; every field tolerates being absent.
type normalizedOrder struct {
	ID            string
	CustomerEmail string
	Total         string
	Items         []any
}

// normalizeOrder maps the accepted field-name variants onto the canonical
// shape. Fallback order: id → order_id, customer.email → billing.email,
// total_price → total, line_items → items.
func normalizeOrder(raw map[string]any) normalizedOrder {
	order := normalizedOrder{
		ID:    stringField(raw, "id", "order_id"),
		Total: stringField(raw, "total_price", "total"),
	}

	if customer, ok := raw["customer"].(map[string]any); ok {
		order.CustomerEmail = stringField(customer, "email")
	}
	if order.CustomerEmail == "" {
		if billing, ok := raw["billing"].(map[string]any); ok {
			order.CustomerEmail = stringField(billing, "email")
		}
	}

	if items, ok := raw["line_items"].([]any); ok {
		order.Items = items
	} else if items, ok := raw["items"].([]any); ok {
		order.Items = items
	}

	return order
}

// stringField returns the first present key rendered as a string. JSON
// numbers arrive as float64; integral values are rendered without a decimal
// point so numeric order IDs keep their original form.
func stringField(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			if v == float64(int64(v)) {
				return strconv.FormatInt(int64(v), 10)
			}
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
