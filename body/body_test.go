package body

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/andy-shea/ftchr/dto"
)

func TestSerialize_Golden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		params      any
		want        any
	}{
		{
			name:        "nil params yield nil body",
			contentType: "application/json",
			params:      nil,
			want:        nil,
		},
		{
			name:        "json keeps param order",
			contentType: "application/json",
			params:      dto.NewParams("bar", "baz", "hello", "world"),
			want:        []byte(`{"bar":"baz","hello":"world"}`),
		},
		{
			name:        "json map is key sorted",
			contentType: "application/json",
			params:      map[string]any{"hello": "world", "bar": "baz"},
			want:        []byte(`{"bar":"baz","hello":"world"}`),
		},
		{
			name:        "json does not escape html",
			contentType: "application/json",
			params:      dto.NewParams("html", "<b>&</b>"),
			want:        []byte(`{"html":"<b>&</b>"}`),
		},
		{
			name:        "content type parameters and case are ignored",
			contentType: "Application/JSON; charset=utf-8",
			params:      dto.NewParams("a", 1),
			want:        []byte(`{"a":1}`),
		},
		{
			name:        "form encodes key value pairs",
			contentType: "application/x-www-form-urlencoded",
			params:      dto.NewParams("bar", "baz", "hello", "world"),
			want:        []byte("bar=baz&hello=world"),
		},
		{
			name:        "form encodes nested values",
			contentType: "application/x-www-form-urlencoded",
			params:      dto.NewParams("a", []string{"x y"}),
			want:        []byte("a%5B0%5D=x%20y"),
		},
		{
			name:        "yaml keeps param order",
			contentType: "application/x-yaml",
			params:      dto.NewParams("z", 1, "a", "x"),
			want:        []byte("z: 1\na: x\n"),
		},
		{
			name:        "unknown content type passes through",
			contentType: "text/html",
			params:      "<div/>",
			want:        "<div/>",
		},
		{
			name:        "absent content type passes through",
			contentType: "",
			params:      dto.NewParams("a", "b"),
			want:        dto.NewParams("a", "b"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Serialize(tt.contentType, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerialize_BSON(t *testing.T) {
	got, err := Serialize("application/bson", dto.NewParams("z", "1", "a", dto.NewParams("b", "x")))
	require.NoError(t, err)

	raw, ok := got.([]byte)
	require.True(t, ok, "bson body should be bytes, got %T", got)

	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, bson.D{
		{Key: "z", Value: "1"},
		{Key: "a", Value: bson.D{{Key: "b", Value: "x"}}},
	}, doc)
}

func TestSerialize_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		params      any
		wantSubstr  string
	}{
		{
			name:        "form rejects a scalar",
			contentType: "application/x-www-form-urlencoded",
			params:      "<div/>",
			wantSubstr:  "serialize application/x-www-form-urlencoded body",
		},
		{
			name:        "bson rejects a scalar",
			contentType: "application/bson",
			params:      "<div/>",
			wantSubstr:  "bson body needs a document",
		},
		{
			name:        "json reports unsupported values",
			contentType: "application/json",
			params:      dto.NewParams("ch", make(chan int)),
			wantSubstr:  "serialize application/json body",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Serialize(tt.contentType, tt.params)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantSubstr)
		})
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	got, err := r.Serialize("application/json", dto.NewParams("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, dto.NewParams("a", "b"), got, "empty registry passes through")

	csv := MimeType("text/csv")
	r.Register(csv, StrategyFunc(func(params any) (any, error) {
		return "a,b", nil
	}))
	got, err = r.Serialize("text/csv; header=present", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a,b", got)
}

func TestRegistry_RecoversPanics(t *testing.T) {
	r := NewRegistry()
	r.Register(JSON, StrategyFunc(func(params any) (any, error) {
		panic("boom")
	}))

	got, err := r.Serialize("application/json", dto.NewParams("a", "b"))
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "boom")
}

func TestSerialize_DoesNotMutateParams(t *testing.T) {
	params := dto.NewParams("a", dto.NewParams("b", "c"))
	_, err := Serialize("application/yaml", params)
	require.NoError(t, err)
	_, err = Serialize("application/bson", params)
	require.NoError(t, err)
	assert.Equal(t, dto.NewParams("a", dto.NewParams("b", "c")), params)
}
