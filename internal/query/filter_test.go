// internal/query/filter_test.go
package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"agribridge-api-server/internal/store"
)

type fakeLister struct {
	docs       []bson.M
	err        error
	collection string
	filter     bson.M
}

func (f *fakeLister) List(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	f.collection = collection
	f.filter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}

func TestFarmerFilter(t *testing.T) {
	require.Equal(t, bson.M{}, FarmerFilter(""))
	require.Equal(t, bson.M{"region": "Fergana"}, FarmerFilter("Fergana"))
}

func TestBuyerFilter(t *testing.T) {
	require.Equal(t, bson.M{}, BuyerFilter(""))
	require.Equal(t, bson.M{"type": "restaurant"}, BuyerFilter("restaurant"))
}

func TestOrderFilter(t *testing.T) {
	require.Equal(t, bson.M{}, OrderFilter("", ""))
	require.Equal(t, bson.M{"buyer_id": "b1"}, OrderFilter("b1", ""))
	require.Equal(t, bson.M{"status": "pending"}, OrderFilter("", "pending"))
	require.Equal(t, bson.M{"buyer_id": "b1", "status": "delivered"}, OrderFilter("b1", "delivered"))
}

func TestRouteFilterColdChainUnsetVersusFalse(t *testing.T) {
	// Unset contributes no clause at all.
	require.Equal(t, bson.M{}, RouteFilter("", nil))

	falseVal := false
	require.Equal(t, bson.M{"cold_chain": false}, RouteFilter("", &falseVal))

	trueVal := true
	require.Equal(t, bson.M{"date": "2024-05-01", "cold_chain": true}, RouteFilter("2024-05-01", &trueVal))
}

func TestProductFilterEqualityOnly(t *testing.T) {
	filter, err := ProductFilter(context.Background(), nil, "f1", "Vegetables", "")
	require.NoError(t, err)
	require.Equal(t, bson.M{"farmer_id": "f1", "category": "Vegetables"}, filter)
}

func TestProductFilterRegionReplacesFarmerID(t *testing.T) {
	farmers := &fakeLister{docs: []bson.M{{"_id": "f1"}, {"_id": "f2"}}}

	filter, err := ProductFilter(context.Background(), farmers, "some-other-farmer", "", "Fergana")
	require.NoError(t, err)

	require.Equal(t, store.CollectionFarmer, farmers.collection)
	require.Equal(t, bson.M{"region": "Fergana"}, farmers.filter)
	require.Equal(t, bson.M{"farmer_id": bson.M{"$in": []string{"f1", "f2"}}}, filter)
}

func TestProductFilterRegionWithNoFarmersMatchesNothing(t *testing.T) {
	farmers := &fakeLister{docs: []bson.M{}}

	filter, err := ProductFilter(context.Background(), farmers, "", "", "Atlantis")
	require.NoError(t, err)
	require.Equal(t, bson.M{"farmer_id": bson.M{"$in": []string{}}}, filter)
}

func TestProductFilterRegionLookupError(t *testing.T) {
	farmers := &fakeLister{err: errors.New("connection reset")}

	_, err := ProductFilter(context.Background(), farmers, "", "", "Fergana")
	require.Error(t, err)
}
