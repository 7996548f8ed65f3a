package layout

import "github.com/argmapio/argmap/internal/argmap"

// Cache memoizes an Engine on the graph's fingerprint, so positions are
// recomputed only when the node/edge set changes. Dragging and re-rendering
// hit the cached map, keeping per-pointer-move cost independent of graph
// size. Not safe for concurrent use; layout runs on the event thread.
type Cache struct {
	engine Engine
	key    uint64
	cached map[string]Position
}

func NewCache(engine Engine) *Cache {
	return &Cache{engine: engine}
}

// Layout returns the memoized position map for g, computing it only when g's
// fingerprint differs from the last call. Callers must treat the returned map
// as read-only.
func (c *Cache) Layout(g *argmap.ArgumentGraph) map[string]Position {
	key := g.Fingerprint()
	if c.cached == nil || key != c.key {
		c.cached = c.engine.Layout(g)
		c.key = key
	}
	return c.cached
}
