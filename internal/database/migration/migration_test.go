package migration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arangodoc/internal/connection"
	"arangodoc/internal/logging"
	"arangodoc/internal/protocol"
)

// fakeCollections answers collection lookups and creations for a fixed set of names.
type fakeCollections struct {
	mu       sync.Mutex
	existing map[string]bool
	created  []string
	failWith int
}

func (f *fakeCollections) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != 0 {
		w.WriteHeader(f.failWith)
		return
	}

	switch r.Method {
	case http.MethodGet:
		name := r.URL.Path[len("/_db/_system/_api/collection/"):]
		if !f.existing[name] {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": true, "code": 404, "errorNum": 1203, "errorMessage": "collection or view not found"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "1", "name": name, "type": 2, "status": 3})
	case http.MethodPost:
		var body struct {
			Name string `json:"name"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.existing[body.Name] = true
		f.created = append(f.created, body.Name)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "2", "name": body.Name, "type": 2, "status": 3, "waitForSync": false})
	}
}

func newTransport(t *testing.T, handler http.Handler) connection.Transport {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	tr, err := connection.NewHTTPTransport(server.URL, "_system", connection.WithLogger(logging.Nop()))
	require.NoError(t, err)
	return tr
}

func TestEnsureCollections(t *testing.T) {
	fake := &fakeCollections{existing: map[string]bool{"customers": true}}
	tr := newTransport(t, fake)

	err := EnsureCollections(context.Background(), tr, []string{"customers", "orders"}, logging.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"orders"}, fake.created)

	// Running again creates nothing.
	err = EnsureCollections(context.Background(), tr, []string{"customers", "orders"}, logging.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"orders"}, fake.created)
}

func TestEnsureCollectionsFailure(t *testing.T) {
	fake := &fakeCollections{existing: map[string]bool{}, failWith: http.StatusServiceUnavailable}
	tr := newTransport(t, fake)

	err := EnsureCollections(context.Background(), tr, []string{"customers"}, logging.Nop())
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, protocol.StatusOf(err))
	assert.Empty(t, fake.created)
}
