package document

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arangodoc/internal/content"
	"arangodoc/internal/method"
	"arangodoc/internal/protocol"
)

type customer struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type customerPatch struct {
	Name  content.Field[string] `json:"name,omitzero"`
	Email content.Field[string] `json:"email,omitzero"`
}

func encodeBody(t *testing.T, m method.Prepare) string {
	t.Helper()
	data, err := content.Encode(m.Content())
	require.NoError(t, err)
	return string(data)
}

func okResponse() *protocol.Response {
	return &protocol.Response{StatusCode: http.StatusOK, Header: http.Header{}}
}

func TestInsertDocument(t *testing.T) {
	doc := NewDocumentFrom(customer{Name: "Jane Doe", Age: 42}).WithKey("94711")
	m := NewInsertDocument("customers", doc)

	assert.Equal(t, method.Create, m.Operation())
	assert.Equal(t, "/_api/document/customers", m.Path())
	assert.Empty(t, m.Parameters())
	assert.Empty(t, m.Header())
	assert.JSONEq(t, `{"_key":"94711","name":"Jane Doe","age":42}`, encodeBody(t, m))

	header, err := m.DecodeResult(okResponse(), []byte(`{"_id":"customers/94711","_key":"94711","_rev":"_r1"}`))
	require.NoError(t, err)
	assert.Equal(t, NewID("customers", "94711"), header.ID)
	assert.Equal(t, Revision("_r1"), header.Revision)

	t.Run("flags", func(t *testing.T) {
		flagged := m.WithForceWaitForSync(true).WithWaitForSyncReplication(false)
		assert.Equal(t, method.Parameters{"waitForSync": "true", "waitForSyncReplication": "false"}, flagged.Parameters())
		assert.Empty(t, m.Parameters(), "builders must not modify the receiver")
	})

	t.Run("without key", func(t *testing.T) {
		plain := NewInsertDocument("customers", NewDocumentFrom(customer{Name: "Jane Doe"}))
		assert.JSONEq(t, `{"name":"Jane Doe","age":0}`, encodeBody(t, plain))
	})

	t.Run("return new", func(t *testing.T) {
		rn := m.ReturnNew()
		assert.Equal(t, method.Parameters{"returnNew": "true"}, rn.Parameters())
		assert.Equal(t, protocol.Field("new"), rn.ReturnType())

		doc, err := rn.DecodeResult(okResponse(), []byte(`{"_id":"customers/94711","_key":"94711","_rev":"_r1","name":"Jane Doe","age":42}`))
		require.NoError(t, err)
		assert.Equal(t, customer{Name: "Jane Doe", Age: 42}, doc.Content)
		assert.Equal(t, Key("94711"), doc.Key)

		_, err = rn.DecodeResult(okResponse(), []byte(`{"name":"Jane Doe","age":42}`))
		assert.ErrorIs(t, err, protocol.ErrProtocolViolation)
	})

	t.Run("incomplete header", func(t *testing.T) {
		for _, raw := range []string{`{}`, `null`, `{"foo":1}`, `{"_id":"customers/94711","_key":"94711"}`} {
			_, err := m.DecodeResult(okResponse(), []byte(raw))
			assert.ErrorIs(t, err, protocol.ErrProtocolViolation, raw)
		}
	})
}

func TestContentModesProduceEquivalentBodies(t *testing.T) {
	typed := NewInsertDocument("customers", NewDocumentFrom(customer{Name: "Jane Doe", Age: 42}).WithKey("k1"))
	opaque := NewInsertDocument("customers", NewDocumentFrom(content.FromStr(`{"name":"Jane Doe","age":42}`)).WithKey("k1"))
	assert.JSONEq(t, encodeBody(t, typed), encodeBody(t, opaque))

	typedUpdate := NewReplaceDocument[customer, customer]("customers", NewUpdate("k1", customer{Name: "John"}))
	opaqueUpdate := NewReplaceDocument[content.JSONString, content.JSONString]("customers", NewUpdate("k1", content.FromStr(`{"name":"John","age":0}`)))
	assert.JSONEq(t, encodeBody(t, typedUpdate), encodeBody(t, opaqueUpdate))
}

func TestOpaqueContentPassesThrough(t *testing.T) {
	raw := `{"name": "Jane Doe",  "tags": [ "a" ]}`
	m := NewInsertDocument("customers", NewDocumentFrom(content.FromStr(raw)))
	assert.Equal(t, raw, encodeBody(t, m))

	get := NewGetDocument[content.JSONString](NewID("customers", "k1"))
	body := `{"_id":"customers/k1","_key":"k1","_rev":"_r1","name":"Jane Doe"}`
	doc, err := get.DecodeResult(okResponse(), []byte(body))
	require.NoError(t, err)
	assert.Equal(t, body, doc.Content.String())
	assert.Equal(t, Revision("_r1"), doc.Revision)
}

func TestGetDocument(t *testing.T) {
	id := NewID("customers", "k1")
	m := NewGetDocument[customer](id)

	assert.Equal(t, method.Read, m.Operation())
	assert.Equal(t, "/_api/document/customers/k1", m.Path())
	assert.Nil(t, m.Content())
	assert.Empty(t, m.Header())

	conditional := m.WithIfMatch("_r1").WithIfNoneMatch("_r0")
	assert.Equal(t, method.Parameters{"If-Match": `"_r1"`, "If-None-Match": `"_r0"`}, conditional.Header())
	assert.Empty(t, m.Header())

	doc, err := m.DecodeResult(okResponse(), []byte(`{"_id":"customers/k1","_key":"k1","_rev":"_r1","name":"Jane","age":3,"error":true}`))
	require.NoError(t, err)
	assert.Equal(t, customer{Name: "Jane", Age: 3}, doc.Content)

	_, err = m.DecodeResult(okResponse(), []byte(`{"_id":"broken"}`))
	assert.ErrorIs(t, err, protocol.ErrProtocolViolation)

	_, err = m.DecodeResult(okResponse(), []byte(`{"_id":"customers/k1","_key":"k1","name":"Jane"}`))
	assert.ErrorIs(t, err, protocol.ErrProtocolViolation)
}

func TestGetDocumentHeader(t *testing.T) {
	id := NewID("customers", "k1")
	m := NewGetDocumentHeader(id).WithIfNoneMatch("_r0")

	assert.Equal(t, method.ReadHeader, m.Operation())
	assert.Equal(t, "/_api/document/customers/k1", m.Path())
	assert.Equal(t, method.Parameters{"If-None-Match": `"_r0"`}, m.Header())

	res := okResponse()
	res.Header.Set("Etag", `"_r1"`)
	header, err := m.DecodeResult(res, nil)
	require.NoError(t, err)
	assert.Equal(t, Header{ID: id, Key: "k1", Revision: "_r1"}, header)

	_, err = m.DecodeResult(okResponse(), nil)
	assert.ErrorIs(t, err, protocol.ErrProtocolViolation)
}

func TestReplaceDocumentConditionalPolicy(t *testing.T) {
	update := NewUpdate("k1", customer{Name: "John"}).WithRevision("_r1")
	base := NewReplaceDocument[customer, customer]("customers", update)

	tests := []struct {
		name       string
		m          ReplaceDocument[customer, customer]
		wantParams method.Parameters
		wantHeader method.Parameters
		wantBody   string
	}{
		{
			name:       "revisions ignored by default",
			m:          base,
			wantParams: method.Parameters{},
			wantHeader: method.Parameters{},
			wantBody:   `{"_key":"k1","name":"John","age":0}`,
		},
		{
			name:       "body revision checked",
			m:          base.WithIgnoreRevisions(false),
			wantParams: method.Parameters{"ignoreRevs": "false"},
			wantHeader: method.Parameters{},
			wantBody:   `{"_key":"k1","_rev":"_r1","name":"John","age":0}`,
		},
		{
			name:       "header and body checks combined",
			m:          base.WithIgnoreRevisions(false).WithIfMatch("_r1"),
			wantParams: method.Parameters{"ignoreRevs": "false"},
			wantHeader: method.Parameters{"If-Match": `"_r1"`},
			wantBody:   `{"_key":"k1","_rev":"_r1","name":"John","age":0}`,
		},
		{
			name:       "return flags",
			m:          base.WithReturnOld(true).WithReturnNew(true),
			wantParams: method.Parameters{"returnOld": "true", "returnNew": "true"},
			wantHeader: method.Parameters{},
			wantBody:   `{"_key":"k1","name":"John","age":0}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, method.Replace, tt.m.Operation())
			assert.Equal(t, "/_api/document/customers/k1", tt.m.Path())
			assert.Equal(t, tt.wantParams, tt.m.Parameters())
			assert.Equal(t, tt.wantHeader, tt.m.Header())
			assert.JSONEq(t, tt.wantBody, encodeBody(t, tt.m))
		})
	}
}

func TestReplaceDocumentReturnFlagGating(t *testing.T) {
	raw := []byte(`{"_id":"customers/k1","_key":"k1","_rev":"_r2","_oldRev":"_r1",` +
		`"old":{"name":"Jane","age":1},"new":{"name":"John","age":2}}`)

	t.Run("flags off", func(t *testing.T) {
		m := NewReplaceDocument[customer, customer]("customers", NewUpdate("k1", customer{Name: "John"}))
		updated, err := m.DecodeResult(okResponse(), raw)
		require.NoError(t, err)
		assert.Equal(t, Revision("_r2"), updated.Revision)
		assert.Equal(t, Revision("_r1"), updated.OldRevision)
		assert.NotEqual(t, updated.OldRevision, updated.Revision)
		assert.Nil(t, updated.OldContent)
		assert.Nil(t, updated.NewContent)
	})

	t.Run("return old only", func(t *testing.T) {
		m := NewReplaceDocument[customer, customer]("customers", NewUpdate("k1", customer{})).WithReturnOld(true)
		updated, err := m.DecodeResult(okResponse(), raw)
		require.NoError(t, err)
		require.NotNil(t, updated.OldContent)
		assert.Equal(t, customer{Name: "Jane", Age: 1}, *updated.OldContent)
		assert.Nil(t, updated.NewContent)
	})

	t.Run("requested echo missing", func(t *testing.T) {
		m := NewReplaceDocument[customer, customer]("customers", NewUpdate("k1", customer{})).WithReturnNew(true)
		_, err := m.DecodeResult(okResponse(), []byte(`{"_id":"customers/k1","_key":"k1","_rev":"_r2","_oldRev":"_r1"}`))
		assert.ErrorIs(t, err, protocol.ErrProtocolViolation)
	})

	t.Run("old revision missing", func(t *testing.T) {
		m := NewReplaceDocument[customer, customer]("customers", NewUpdate("k1", customer{}))
		_, err := m.DecodeResult(okResponse(), []byte(`{"_id":"customers/k1","_key":"k1","_rev":"_r2"}`))
		assert.ErrorIs(t, err, protocol.ErrProtocolViolation)
	})

	t.Run("header missing", func(t *testing.T) {
		m := NewReplaceDocument[customer, customer]("customers", NewUpdate("k1", customer{}))
		for _, raw := range []string{`{"_oldRev":"x"}`, `{"_id":"customers/k1","_key":"k1","_oldRev":"_r1"}`} {
			_, err := m.DecodeResult(okResponse(), []byte(raw))
			assert.ErrorIs(t, err, protocol.ErrProtocolViolation, raw)
		}
	})
}

func TestUpdateDocument(t *testing.T) {
	patch := customerPatch{Name: content.Set("John"), Email: content.Null[string]()}
	m := NewUpdateDocument[customerPatch, customer, customer]("customers", NewUpdate("k1", patch))

	assert.Equal(t, method.Modify, m.Operation())
	assert.Equal(t, "/_api/document/customers/k1", m.Path())
	assert.Empty(t, m.Parameters())
	assert.JSONEq(t, `{"_key":"k1","name":"John","email":null}`, encodeBody(t, m))

	flagged := m.WithKeepNull(false).WithMergeObjects(false).WithIfMatch("_r1").WithReturnNew(true)
	assert.Equal(t, method.Parameters{"keepNull": "false", "mergeObjects": "false", "returnNew": "true"}, flagged.Parameters())
	assert.Equal(t, method.Parameters{"If-Match": `"_r1"`}, flagged.Header())

	updated, err := flagged.DecodeResult(okResponse(), []byte(`{"_id":"customers/k1","_key":"k1","_rev":"_r2","_oldRev":"_r1","new":{"name":"John","age":5}}`))
	require.NoError(t, err)
	require.NotNil(t, updated.NewContent)
	assert.Equal(t, 5, updated.NewContent.Age)
	assert.Nil(t, updated.OldContent)

	// Keep the defaults when set explicitly.
	assert.Empty(t, m.WithKeepNull(true).WithMergeObjects(true).Parameters())
}

func TestDeleteDocument(t *testing.T) {
	id := NewID("customers", "k1")
	m := NewDeleteDocument[customer](id).WithIfMatch("_r1")

	assert.Equal(t, method.Delete, m.Operation())
	assert.Equal(t, "/_api/document/customers/k1", m.Path())
	assert.Equal(t, method.Parameters{"If-Match": `"_r1"`}, m.Header())
	assert.Nil(t, m.Content())

	raw := []byte(`{"_id":"customers/k1","_key":"k1","_rev":"_r1","old":{"name":"Jane","age":1}}`)
	removed, err := m.DecodeResult(okResponse(), raw)
	require.NoError(t, err)
	assert.Equal(t, id, removed.ID)
	assert.Nil(t, removed.OldContent)

	withOld := m.WithReturnOld(true)
	assert.Equal(t, method.Parameters{"returnOld": "true"}, withOld.Parameters())
	removed, err = withOld.DecodeResult(okResponse(), raw)
	require.NoError(t, err)
	require.NotNil(t, removed.OldContent)
	assert.Equal(t, "Jane", removed.OldContent.Name)

	_, err = m.DecodeResult(okResponse(), []byte(`{"_key":"k1"}`))
	assert.ErrorIs(t, err, protocol.ErrProtocolViolation)
}
