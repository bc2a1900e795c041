package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customer struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestInjectFields(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		attrs   []Attribute
		want    string
		wantErr error
	}{
		{
			name:  "prepends attribute",
			raw:   `{"name":"alice"}`,
			attrs: []Attribute{{Name: "_key", Value: "a1"}},
			want:  `{"_key":"a1","name":"alice"}`,
		},
		{
			name:  "empty object",
			raw:   `{}`,
			attrs: []Attribute{{Name: "_key", Value: "a1"}, {Name: "_rev", Value: "_r1"}},
			want:  `{"_key":"a1","_rev":"_r1"}`,
		},
		{
			name:  "keeps remaining bytes untouched",
			raw:   "  { \"b\" : 1,\n \"a\": 2 }  ",
			attrs: []Attribute{{Name: "_key", Value: "k"}},
			want:  "{\"_key\":\"k\",\"b\" : 1,\n \"a\": 2 }",
		},
		{
			name:  "same value already present",
			raw:   `{"_key":"a1","name":"alice"}`,
			attrs: []Attribute{{Name: "_key", Value: "a1"}},
			want:  `{"_key":"a1","name":"alice"}`,
		},
		{
			name: "no attributes",
			raw:  `{"name":"alice"}`,
			want: `{"name":"alice"}`,
		},
		{
			name:    "conflicting value",
			raw:     `{"_key":"other"}`,
			attrs:   []Attribute{{Name: "_key", Value: "a1"}},
			wantErr: ErrConflictingField,
		},
		{
			name:    "array content",
			raw:     `[1,2]`,
			attrs:   []Attribute{{Name: "_key", Value: "a1"}},
			wantErr: ErrNotAnObject,
		},
		{
			name:    "scalar content",
			raw:     `"text"`,
			wantErr: ErrNotAnObject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InjectFields([]byte(tt.raw), tt.attrs...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
			assert.True(t, json.Valid(got))
		})
	}
}

func TestEncodeObjectModesAreEquivalent(t *testing.T) {
	attrs := []Attribute{{Name: "_key", Value: "c1"}}

	typed, err := EncodeObject(customer{Name: "alice", Age: 30}, attrs...)
	require.NoError(t, err)

	opaque, err := EncodeObject(FromStr(`{"name":"alice","age":30}`), attrs...)
	require.NoError(t, err)

	assert.JSONEq(t, string(typed), string(opaque))
	assert.JSONEq(t, `{"_key":"c1","name":"alice","age":30}`, string(opaque))
}

func TestEncode(t *testing.T) {
	t.Run("opaque bytes pass through", func(t *testing.T) {
		raw := `{ "z": 1,  "a": [ true ] }`
		got, err := Encode(FromStr(raw))
		require.NoError(t, err)
		assert.Equal(t, raw, string(got))
	})

	t.Run("invalid opaque JSON", func(t *testing.T) {
		_, err := Encode(FromStr(`{"broken"`))
		assert.Error(t, err)
	})

	t.Run("typed value", func(t *testing.T) {
		got, err := Encode(customer{Name: "bob"})
		require.NoError(t, err)
		assert.Equal(t, `{"name":"bob","age":0}`, string(got))
	})
}

func TestJSONString(t *testing.T) {
	var decoded struct {
		Doc JSONString `json:"doc"`
	}
	err := json.Unmarshal([]byte(`{"doc": {"_key":"k", "n" : 1}}`), &decoded)
	require.NoError(t, err)
	assert.Equal(t, `{"_key":"k", "n" : 1}`, decoded.Doc.String())
	assert.True(t, decoded.Doc.Valid())

	var c customer
	require.NoError(t, FromStr(`{"name":"carol","age":7}`).Decode(&c))
	assert.Equal(t, customer{Name: "carol", Age: 7}, c)

	empty, err := json.Marshal(JSONString(""))
	require.NoError(t, err)
	assert.Equal(t, "null", string(empty))
}

type customerUpdate struct {
	Name  Field[string] `json:"name,omitzero"`
	Age   Field[int]    `json:"age,omitzero"`
	Email Field[string] `json:"email,omitzero"`
}

func TestFieldMarshal(t *testing.T) {
	update := customerUpdate{
		Name:  Set("alice"),
		Email: Null[string](),
	}
	data, err := json.Marshal(update)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"alice","email":null}`, string(data))

	data, err = json.Marshal(customerUpdate{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestFieldUnmarshal(t *testing.T) {
	var update customerUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"age":41,"email":null}`), &update))

	assert.True(t, update.Name.IsZero())
	assert.False(t, update.Name.IsSet())

	age, ok := update.Age.Get()
	assert.True(t, ok)
	assert.Equal(t, 41, age)

	assert.True(t, update.Email.IsNull())
	_, ok = update.Email.Get()
	assert.False(t, ok)
}

func TestObjectInArray(t *testing.T) {
	batch := []Object{
		WithAttributes(customer{Name: "alice"}, Attribute{Name: "_key", Value: "a"}),
		WithAttributes(FromStr(`{"name":"bob"}`), Attribute{Name: "_key", Value: "b"}),
	}
	data, err := json.Marshal(batch)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"_key":"a","name":"alice","age":0},{"_key":"b","name":"bob"}]`, string(data))

	_, err = json.Marshal([]Object{WithAttributes(FromStr(`{"_key":"x"}`), Attribute{Name: "_key", Value: "y"})})
	assert.ErrorIs(t, err, ErrConflictingField)
}
