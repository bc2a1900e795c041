package collection

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arangodoc/internal/content"
	"arangodoc/internal/method"
	"arangodoc/internal/protocol"
)

func TestCollectionMethods(t *testing.T) {
	tests := []struct {
		name      string
		m         method.Prepare
		operation method.Operation
		path      string
		params    method.Parameters
		body      string
	}{
		{
			name:      "list user collections",
			m:         NewListCollections(),
			operation: method.Read,
			path:      "/_api/collection",
			params:    method.Parameters{"excludeSystem": "true"},
		},
		{
			name:      "list including system",
			m:         NewListCollections().IncludingSystem(),
			operation: method.Read,
			path:      "/_api/collection",
			params:    method.Parameters{},
		},
		{
			name:      "create",
			m:         CreateDocumentCollection("customers"),
			operation: method.Create,
			path:      "/_api/collection",
			params:    method.Parameters{},
			body:      `{"name":"customers","type":2}`,
		},
		{
			name:      "create edges without replication wait",
			m:         CreateEdgeCollection("knows").WithWaitForSyncReplication(false),
			operation: method.Create,
			path:      "/_api/collection",
			params:    method.Parameters{"waitForSyncReplication": "false"},
			body:      `{"name":"knows","type":3}`,
		},
		{
			name:      "drop",
			m:         NewDropCollection("customers"),
			operation: method.Delete,
			path:      "/_api/collection/customers",
			params:    method.Parameters{},
		},
		{
			name:      "drop system",
			m:         NewDropCollection("_jobs"),
			operation: method.Delete,
			path:      "/_api/collection/_jobs",
			params:    method.Parameters{"isSystem": "true"},
		},
		{
			name:      "properties",
			m:         NewGetCollectionProperties("customers"),
			operation: method.Read,
			path:      "/_api/collection/customers/properties",
		},
		{
			name:      "change properties",
			m:         NewChangeCollectionProperties("customers", PropertiesUpdate{WaitForSync: content.Set(true)}),
			operation: method.Replace,
			path:      "/_api/collection/customers/properties",
			body:      `{"waitForSync":true}`,
		},
		{
			name:      "rename",
			m:         Rename("customers").To("clients"),
			operation: method.Replace,
			path:      "/_api/collection/customers/rename",
			body:      `{"name":"clients"}`,
		},
		{
			name:      "checksum keys only",
			m:         NewGetCollectionChecksum("customers"),
			operation: method.Read,
			path:      "/_api/collection/customers/checksum",
			params:    method.Parameters{},
		},
		{
			name:      "checksum with revisions and data",
			m:         NewGetCollectionChecksum("customers").WithRevisions(true).WithData(true),
			operation: method.Read,
			path:      "/_api/collection/customers/checksum",
			params:    method.Parameters{"withRevisions": "true", "withData": "true"},
		},
		{
			name:      "count",
			m:         NewGetCollectionDocumentCount("customers"),
			operation: method.Read,
			path:      "/_api/collection/customers/count",
		},
		{
			name:      "revision",
			m:         NewGetCollectionRevision("customers"),
			operation: method.Read,
			path:      "/_api/collection/customers/revision",
		},
		{
			name:      "get",
			m:         NewGetCollection("customers"),
			operation: method.Read,
			path:      "/_api/collection/customers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.operation, tt.m.Operation())
			assert.Equal(t, tt.path, tt.m.Path())
			assert.Equal(t, tt.params, tt.m.Parameters())
			assert.Empty(t, tt.m.Header())
			if tt.body == "" {
				assert.Nil(t, tt.m.Content())
				return
			}
			data, err := json.Marshal(tt.m.Content())
			require.NoError(t, err)
			assert.JSONEq(t, tt.body, string(data))
		})
	}
}

func TestListCollectionsResult(t *testing.T) {
	m := NewListCollections()
	assert.Equal(t, protocol.Field("result"), m.ReturnType())

	raw := []byte(`[{"id":"9","name":"customers","type":2,"status":3,"isSystem":false}]`)
	collections, err := m.DecodeResult(&protocol.Response{StatusCode: http.StatusOK}, raw)
	require.NoError(t, err)
	require.Len(t, collections, 1)
	assert.Equal(t, Collection{ID: "9", Name: "customers", Type: Documents, Status: Loaded}, collections[0])
}

func TestDropCollectionResult(t *testing.T) {
	m := NewDropCollection("customers")
	assert.Equal(t, protocol.Field("id"), m.ReturnType())

	id, err := m.DecodeResult(&protocol.Response{StatusCode: http.StatusOK}, []byte(`"12345"`))
	require.NoError(t, err)
	assert.Equal(t, "12345", id)

	assert.Equal(t, method.Parameters{}, NewDropCollection("_apps").WithSystem(false).Parameters())
}

func TestDocumentCountResult(t *testing.T) {
	m := NewGetCollectionDocumentCount("customers")
	count, err := m.DecodeResult(&protocol.Response{StatusCode: http.StatusOK},
		[]byte(`{"id":"9","name":"customers","type":2,"status":3,"isSystem":false,"waitForSync":true,"count":42}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), count.Count)
	assert.True(t, count.WaitForSync)
	assert.Equal(t, "customers", count.Name)
}

func TestPropertiesUpdateOmitsUnset(t *testing.T) {
	data, err := json.Marshal(PropertiesUpdate{JournalSize: content.Set(int64(1048576))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"journalSize":1048576}`, string(data))
}

func TestTypeAndStatus(t *testing.T) {
	typ, err := ParseType("edges")
	require.NoError(t, err)
	assert.Equal(t, Edges, typ)
	assert.Equal(t, "documents", Documents.String())

	_, err = ParseType("graph")
	assert.Error(t, err)

	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "Status(9)", Status(9).String())
}
