package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopapi/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore is a function-field test double for storage.Store. Unset fields
// fall back to harmless defaults: creates succeed, finds come back empty.
type fakeStore struct {
	createFn     func(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)
	createManyFn func(ctx context.Context, collection string, docs []any) (int, error)
	findFn       func(ctx context.Context, collection string, filter any, sort any, out any) error
	findOneFn    func(ctx context.Context, collection string, filter any, out any) error
	updateOneFn  func(ctx context.Context, collection string, filter any, update any) error
}

func (f *fakeStore) Create(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	if f.createFn != nil {
		return f.createFn(ctx, collection, doc)
	}
	return primitive.NewObjectID(), nil
}

func (f *fakeStore) CreateMany(ctx context.Context, collection string, docs []any) (int, error) {
	if f.createManyFn != nil {
		return f.createManyFn(ctx, collection, docs)
	}
	return len(docs), nil
}

func (f *fakeStore) Find(ctx context.Context, collection string, filter any, sort any, out any) error {
	if f.findFn != nil {
		return f.findFn(ctx, collection, filter, sort, out)
	}
	return nil
}

func (f *fakeStore) FindOne(ctx context.Context, collection string, filter any, out any) error {
	if f.findOneFn != nil {
		return f.findOneFn(ctx, collection, filter, out)
	}
	return storage.ErrNotFound
}

func (f *fakeStore) UpdateOne(ctx context.Context, collection string, filter any, update any) error {
	if f.updateOneFn != nil {
		return f.updateOneFn(ctx, collection, filter, update)
	}
	return nil
}

// performRequest sends a JSON request through the router and records the response.
func performRequest(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body %q: %v", w.Body.String(), err)
	}
	return body
}
