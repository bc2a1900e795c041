package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		collection string
		key        Key
		wantErr    bool
	}{
		{name: "valid", input: "customers/94711", collection: "customers", key: "94711"},
		{name: "key with punctuation", input: "orders/a:b@c-1", collection: "orders", key: "a:b@c-1"},
		{name: "missing separator", input: "customers", wantErr: true},
		{name: "empty collection", input: "/94711", wantErr: true},
		{name: "empty key", input: "customers/", wantErr: true},
		{name: "too many parts", input: "a/b/c", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedIdentifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.collection, id.CollectionName())
			assert.Equal(t, tt.key, id.DocumentKey())
			assert.Equal(t, tt.input, id.String())
		})
	}
}

func TestIDRoundTrip(t *testing.T) {
	for _, id := range []ID{
		NewID("customers", "1"),
		NewID("_users", "root"),
		NewID("c", "with.dots_and-dashes"),
	} {
		parsed, err := ParseID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}

func TestIDJSON(t *testing.T) {
	data, err := json.Marshal(NewID("customers", "42"))
	require.NoError(t, err)
	assert.Equal(t, `"customers/42"`, string(data))

	var h Header
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"customers/42","_key":"42","_rev":"_fX1"}`), &h))
	assert.Equal(t, Header{ID: NewID("customers", "42"), Key: "42", Revision: "_fX1"}, h)

	assert.Error(t, json.Unmarshal([]byte(`{"_id":"nokey"}`), &h))
	assert.True(t, ID{}.IsZero())
}
