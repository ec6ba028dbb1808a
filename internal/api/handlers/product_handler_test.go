// internal/api/handlers/product_handler_test.go
package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"agribridge-api-server/internal/models"
	"agribridge-api-server/internal/store"
)

func TestCreateProductNegativePriceRejected(t *testing.T) {
	fs := newFakeStore()
	h := &ProductHandler{Store: fs}

	w := perform(t, h.CreateProduct, http.MethodPost, "/api/products",
		`{"farmer_id":"f1","title":"Tomatoes","category":"Vegetables","price":-1,"unit":"kg","available_quantity":10}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Price")
	require.Empty(t, fs.created[store.CollectionProduct])
}

func TestCreateProductZeroPriceAccepted(t *testing.T) {
	fs := newFakeStore()
	h := &ProductHandler{Store: fs}

	w := perform(t, h.CreateProduct, http.MethodPost, "/api/products",
		`{"farmer_id":"f1","title":"Giveaway greens","category":"Vegetables","price":0,"unit":"kg","available_quantity":5}`)

	require.Equal(t, http.StatusCreated, w.Code)
	product := fs.created[store.CollectionProduct][0].(models.Product)
	require.Zero(t, product.Price)
}

func TestCreateProductNegativeQuantityRejected(t *testing.T) {
	fs := newFakeStore()
	h := &ProductHandler{Store: fs}

	w := perform(t, h.CreateProduct, http.MethodPost, "/api/products",
		`{"farmer_id":"f1","title":"Tomatoes","category":"Vegetables","price":10,"unit":"kg","available_quantity":-2}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "AvailableQuantity")
}

func TestCreateProductMissingPriceRejected(t *testing.T) {
	fs := newFakeStore()
	h := &ProductHandler{Store: fs}

	w := perform(t, h.CreateProduct, http.MethodPost, "/api/products",
		`{"farmer_id":"f1","title":"Tomatoes","category":"Vegetables","unit":"kg","available_quantity":10}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Price")
}

func TestCreateProductAppliesPhotoDefault(t *testing.T) {
	fs := newFakeStore()
	h := &ProductHandler{Store: fs}

	w := perform(t, h.CreateProduct, http.MethodPost, "/api/products",
		`{"farmer_id":"f1","title":"Tomatoes","category":"Vegetables","price":10,"unit":"kg","available_quantity":10}`)

	require.Equal(t, http.StatusCreated, w.Code)
	product := fs.created[store.CollectionProduct][0].(models.Product)
	require.Equal(t, []string{}, product.Photos)
}

func TestListProductsByFarmerAndCategory(t *testing.T) {
	fs := newFakeStore()
	h := &ProductHandler{Store: fs}

	w := perform(t, h.ListProducts, http.MethodGet, "/api/products?farmer_id=f1&category=Vegetables", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, bson.M{"farmer_id": "f1", "category": "Vegetables"}, fs.filters[store.CollectionProduct])
}

func TestListProductsRegionWithNoFarmersIsEmptyNotError(t *testing.T) {
	fs := newFakeStore()
	h := &ProductHandler{Store: fs}

	w := perform(t, h.ListProducts, http.MethodGet, "/api/products?region=Atlantis", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
	require.Equal(t, bson.M{"farmer_id": bson.M{"$in": []string{}}}, fs.filters[store.CollectionProduct])
}

func TestListProductsRegionResolvesFarmerIDs(t *testing.T) {
	fs := newFakeStore()
	fs.docs[store.CollectionFarmer] = []bson.M{{"_id": "f1", "region": "Fergana"}}
	h := &ProductHandler{Store: fs}

	w := perform(t, h.ListProducts, http.MethodGet, "/api/products?region=Fergana", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, bson.M{"region": "Fergana"}, fs.filters[store.CollectionFarmer])
	require.Equal(t, bson.M{"farmer_id": bson.M{"$in": []string{"f1"}}}, fs.filters[store.CollectionProduct])
}
