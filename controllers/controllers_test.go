package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory DocumentStore. It round-trips inserted values
// through bson so documents carry the same field names the real store
// would, and normalizes _id to a hex string the same way.
type fakeStore struct {
	mu   sync.Mutex
	data map[string][]map[string]any
	err  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]map[string]any{}}
}

func (f *fakeStore) CreateDocument(_ context.Context, collection string, fields any) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	raw, err := bson.Marshal(fields)
	if err != nil {
		return "", err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return "", err
	}
	id := primitive.NewObjectID().Hex()
	doc["_id"] = id

	f.mu.Lock()
	f.data[collection] = append(f.data[collection], map[string]any(doc))
	f.mu.Unlock()
	return id, nil
}

func (f *fakeStore) GetDocuments(_ context.Context, collection string, filter map[string]any, limit int64) ([]map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	docs := []map[string]any{}
	for _, doc := range f.data[collection] {
		match := true
		for k, v := range filter {
			if doc[k] != v {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		docs = append(docs, doc)
		if int64(len(docs)) == limit {
			break
		}
	}
	return docs, nil
}

func newTestRouter(fs *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	auth := &AuthController{Store: fs}
	content := &ContentController{Store: fs}

	r.POST("/api/auth/register", auth.Register)
	r.POST("/api/auth/login", auth.Login)
	r.GET("/api/projects", content.ListProjects)
	r.POST("/api/projects", content.CreateProject)
	r.GET("/api/plots", content.ListPlots)
	r.POST("/api/plots", content.CreatePlot)
	r.GET("/api/noc", content.NOCInfo)
	r.GET("/api/map", content.MapInfo)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
