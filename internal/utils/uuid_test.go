package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()
	id := g.Generate()

	u, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), u.Version())
	assert.NotEqual(t, id, g.Generate())
}

func TestUUIDGenerator_NewGUID(t *testing.T) {
	g := NewUUIDGenerator()
	guid := g.NewGUID()
	assert.True(t, IsValidGUID(guid))
	assert.NotEqual(t, guid, g.NewGUID())
}

func TestInferGUID(t *testing.T) {
	a := InferGUID("cache", "item-1")
	assert.True(t, IsValidGUID(a))
	assert.Equal(t, a, InferGUID("cache", "item-1"))
	assert.NotEqual(t, a, InferGUID("cache", "item-2"))
}

func TestIsValidGUID(t *testing.T) {
	valid := uuid.NewString()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "canonical", input: valid, want: true},
		{name: "empty", input: "", want: false},
		{name: "garbage", input: "not-a-guid", want: false},
		{name: "upper case", input: strings.ToUpper(valid), want: false},
		{name: "braced", input: "{" + valid + "}", want: false},
		{name: "urn", input: "urn:uuid:" + valid, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidGUID(tt.input))
		})
	}
}
