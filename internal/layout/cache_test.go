package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/argmapio/argmap/internal/argmap"
)

// countingEngine records how many times Layout actually runs.
type countingEngine struct {
	calls int
}

func (c *countingEngine) Layout(g *argmap.ArgumentGraph) map[string]Position {
	c.calls++
	out := make(map[string]Position, len(g.Nodes))
	for i, n := range g.Nodes {
		out[n.ID] = Position{X: float64(i), Y: float64(i)}
	}
	return out
}

func TestCacheRecomputesOnlyOnGraphChange(t *testing.T) {
	engine := &countingEngine{}
	cache := NewCache(engine)

	g := &argmap.ArgumentGraph{
		Nodes: []argmap.Node{{ID: "a", Type: "claim"}},
	}

	first := cache.Layout(g)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, cache.Layout(g))
	}
	assert.Equal(t, 1, engine.calls, "re-renders of an unchanged graph must not re-layout")

	g2 := &argmap.ArgumentGraph{
		Nodes: []argmap.Node{{ID: "a", Type: "claim"}, {ID: "b", Type: "claim"}},
	}
	cache.Layout(g2)
	assert.Equal(t, 2, engine.calls)
}

func TestCacheHandlesEmptyGraph(t *testing.T) {
	engine := &countingEngine{}
	cache := NewCache(engine)

	pos := cache.Layout(&argmap.ArgumentGraph{})
	assert.Empty(t, pos)
	cache.Layout(&argmap.ArgumentGraph{})
	assert.Equal(t, 1, engine.calls)
}
