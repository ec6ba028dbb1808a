// internal/api/handlers/handlers_test.go
package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStore struct {
	created   map[string][]interface{}
	createErr error
	docs      map[string][]bson.M
	listErr   error
	filters   map[string]bson.M
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		created: map[string][]interface{}{},
		docs:    map[string][]bson.M{},
		filters: map[string]bson.M{},
	}
}

func (f *fakeStore) Create(ctx context.Context, collection string, entity interface{}) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created[collection] = append(f.created[collection], entity)
	return "test-id", nil
}

func (f *fakeStore) List(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.filters[collection] = filter
	docs := f.docs[collection]
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}

// perform invokes a handler directly with a synthetic request.
func perform(t *testing.T, handler gin.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler(c)
	return w
}
