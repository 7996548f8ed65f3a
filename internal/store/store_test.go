package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argmapio/argmap/internal/argmap"
)

func TestPutGetRoundtrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	g := &argmap.ArgumentGraph{
		Version:    "1.0",
		SourceText: "A therefore B.",
		Nodes:      []argmap.Node{{ID: "n1", Content: "A", Type: "premise"}},
		Edges:      []argmap.Edge{{Source: "n1", Target: "n2", Type: "supports"}},
		Summary:    "A supports B",
	}

	key, err := s.Put(g)
	require.NoError(t, err)
	assert.Equal(t, argmap.ContentHash("A therefore B."), key)

	got, ok, err := s.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, g, got)

	got, ok, err = s.GetByText("A therefore B.")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, g, got)
}

func TestGetMissingKey(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, ok, err := s.Get("0000000000000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	keys, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, keys)

	k1, err := s.Put(&argmap.ArgumentGraph{SourceText: "first"})
	require.NoError(t, err)
	k2, err := s.Put(&argmap.ArgumentGraph{SourceText: "second"})
	require.NoError(t, err)

	keys, err = s.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{k1, k2}, keys)
}

func TestPutIsIdempotentPerText(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	k1, err := s.Put(&argmap.ArgumentGraph{SourceText: "same text"})
	require.NoError(t, err)
	k2, err := s.Put(&argmap.ArgumentGraph{SourceText: "same text", Summary: "updated"})
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	keys, err := s.List()
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}
