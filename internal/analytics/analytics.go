// internal/analytics/analytics.go

// Package analytics computes the three read-only marketplace summaries.
// Each one is recomputed from the current collection contents on every call
// and degrades to an empty result when the store is unavailable.
package analytics

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"agribridge-api-server/internal/store"
)

// PricingTrend is the per-category average price.
type PricingTrend struct {
	Category string  `json:"category"`
	AvgPrice float64 `json:"avg_price"`
	Count    int     `json:"count"`
}

// DemandEntry counts how often a product was ordered. Orders counts item
// occurrences, not distinct orders.
type DemandEntry struct {
	ProductID string  `json:"product_id"`
	Orders    int     `json:"orders"`
	Qty       float64 `json:"qty"`
}

// SupplyEntry is the per-category available quantity.
type SupplyEntry struct {
	Category  string  `json:"category"`
	Available float64 `json:"available"`
	Items     int     `json:"items"`
}

// Engine runs the aggregations over the product and order collections.
type Engine struct {
	store store.Lister
	log   *logrus.Logger
}

func NewEngine(s store.Lister, log *logrus.Logger) *Engine {
	return &Engine{store: s, log: log}
}

// PricingTrends averages the product price per category, sorted ascending
// by the average. An optional category restricts the input first. Products
// without a numeric price are excluded from both the sum and the count of
// their group.
func (e *Engine) PricingTrends(ctx context.Context, category string) []PricingTrend {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	docs, err := e.store.List(ctx, store.CollectionProduct, filter)
	if err != nil {
		e.log.WithError(err).Warn("pricing trends: product query failed")
		return []PricingTrend{}
	}

	type group struct {
		sum   float64
		count int
	}
	groups := map[string]*group{}
	var seen []string
	for _, doc := range docs {
		price, ok := numeric(doc["price"])
		if !ok {
			continue
		}
		cat, _ := doc["category"].(string)
		g := groups[cat]
		if g == nil {
			g = &group{}
			groups[cat] = g
			seen = append(seen, cat)
		}
		g.sum += price
		g.count++
	}

	trends := make([]PricingTrend, 0, len(seen))
	for _, cat := range seen {
		g := groups[cat]
		trends = append(trends, PricingTrend{
			Category: cat,
			AvgPrice: g.sum / float64(g.count),
			Count:    g.count,
		})
	}
	sort.SliceStable(trends, func(i, j int) bool { return trends[i].AvgPrice < trends[j].AvgPrice })
	return trends
}

// DemandForecast flattens all order items, groups them by product and
// returns the most-ordered products first, truncated to limit. Ties keep
// the order in which the products were first seen.
func (e *Engine) DemandForecast(ctx context.Context, limit int) []DemandEntry {
	if limit <= 0 {
		return []DemandEntry{}
	}

	docs, err := e.store.List(ctx, store.CollectionOrder, bson.M{})
	if err != nil {
		e.log.WithError(err).Warn("demand forecast: order query failed")
		return []DemandEntry{}
	}

	type group struct {
		orders int
		qty    float64
	}
	groups := map[string]*group{}
	var seen []string
	for _, doc := range docs {
		for _, raw := range asArray(doc["items"]) {
			item := asDocument(raw)
			if item == nil {
				continue
			}
			pid, _ := item["product_id"].(string)
			qty, _ := numeric(item["quantity"])
			g := groups[pid]
			if g == nil {
				g = &group{}
				groups[pid] = g
				seen = append(seen, pid)
			}
			g.orders++
			g.qty += qty
		}
	}

	entries := make([]DemandEntry, 0, len(seen))
	for _, pid := range seen {
		g := groups[pid]
		entries = append(entries, DemandEntry{ProductID: pid, Orders: g.orders, Qty: g.qty})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Orders > entries[j].Orders })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// SupplyOverview sums available_quantity per category across all products,
// sorted descending by the total.
func (e *Engine) SupplyOverview(ctx context.Context) []SupplyEntry {
	docs, err := e.store.List(ctx, store.CollectionProduct, bson.M{})
	if err != nil {
		e.log.WithError(err).Warn("supply overview: product query failed")
		return []SupplyEntry{}
	}

	type group struct {
		available float64
		items     int
	}
	groups := map[string]*group{}
	var seen []string
	for _, doc := range docs {
		cat, _ := doc["category"].(string)
		g := groups[cat]
		if g == nil {
			g = &group{}
			groups[cat] = g
			seen = append(seen, cat)
		}
		if qty, ok := numeric(doc["available_quantity"]); ok {
			g.available += qty
		}
		g.items++
	}

	entries := make([]SupplyEntry, 0, len(seen))
	for _, cat := range seen {
		g := groups[cat]
		entries = append(entries, SupplyEntry{Category: cat, Available: g.available, Items: g.items})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Available > entries[j].Available })
	return entries
}

// numeric widens the number types the bson decoder may produce.
func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asArray(v interface{}) []interface{} {
	switch a := v.(type) {
	case bson.A:
		return a
	case []interface{}:
		return a
	}
	return nil
}

// asDocument accepts the document shapes the driver may hand back for an
// embedded document, including the ordered bson.D form.
func asDocument(v interface{}) bson.M {
	switch d := v.(type) {
	case bson.M:
		return d
	case map[string]interface{}:
		return d
	case bson.D:
		m := make(bson.M, len(d))
		for _, e := range d {
			m[e.Key] = e.Value
		}
		return m
	}
	return nil
}
