// internal/query/filter.go

// Package query translates optional request parameters into document
// filters. Absent parameters contribute no clause at all, which is not the
// same as a clause matching the field's default value.
package query

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"agribridge-api-server/internal/store"
)

// FarmerFilter matches farmers by region when one is given.
func FarmerFilter(region string) bson.M {
	filter := bson.M{}
	if region != "" {
		filter["region"] = region
	}
	return filter
}

// BuyerFilter matches buyers by type when one is given.
func BuyerFilter(buyerType string) bson.M {
	filter := bson.M{}
	if buyerType != "" {
		filter["type"] = buyerType
	}
	return filter
}

// OrderFilter matches orders by buyer and/or status.
func OrderFilter(buyerID, status string) bson.M {
	filter := bson.M{}
	if buyerID != "" {
		filter["buyer_id"] = buyerID
	}
	if status != "" {
		filter["status"] = status
	}
	return filter
}

// RouteFilter matches routes by date and/or cold_chain. A nil coldChain
// means the parameter was not supplied; an explicit false only matches
// routes where the flag is exactly false.
func RouteFilter(date string, coldChain *bool) bson.M {
	filter := bson.M{}
	if date != "" {
		filter["date"] = date
	}
	if coldChain != nil {
		filter["cold_chain"] = *coldChain
	}
	return filter
}

// ProductFilter matches products by farmer, category and/or farmer region.
// A region parameter resolves to the ids of farmers in that region and
// replaces any farmer_id equality clause with a membership clause. When no
// farmer matches the region the filter matches nothing, which is still a
// valid (empty) listing rather than an error.
func ProductFilter(ctx context.Context, farmers store.Lister, farmerID, category, region string) (bson.M, error) {
	filter := bson.M{}
	if farmerID != "" {
		filter["farmer_id"] = farmerID
	}
	if category != "" {
		filter["category"] = category
	}
	if region != "" {
		docs, err := farmers.List(ctx, store.CollectionFarmer, bson.M{"region": region})
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(docs))
		for _, doc := range docs {
			if id, ok := doc["_id"].(string); ok {
				ids = append(ids, id)
			}
		}
		filter["farmer_id"] = bson.M{"$in": ids}
	}
	return filter, nil
}
