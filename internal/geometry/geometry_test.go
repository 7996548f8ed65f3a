package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/argmapio/argmap/internal/layout"
)

func TestTrimHorizontal(t *testing.T) {
	seg := Trim(layout.Position{X: 0, Y: 0}, layout.Position{X: 100, Y: 0}, 10, 4)

	assert.InDelta(t, 10, seg.Start.X, 1e-9)
	assert.InDelta(t, 0, seg.Start.Y, 1e-9)
	assert.InDelta(t, 86, seg.End.X, 1e-9) // 100 - (10 + 4)
	assert.InDelta(t, 0, seg.End.Y, 1e-9)

	// Label sits at the midpoint, lifted off the line.
	assert.InDelta(t, 48, seg.LabelAnchor.X, 1e-9)
	assert.Less(t, seg.LabelAnchor.Y, 0.0)
}

func TestTrimPreservesDirection(t *testing.T) {
	p1 := layout.Position{X: 50, Y: 200}
	p2 := layout.Position{X: 350, Y: 80}
	seg := Trim(p1, p2, 24, 6)

	// Start and end both lie on the p1→p2 line, start nearer p1.
	d1 := math.Hypot(seg.Start.X-p1.X, seg.Start.Y-p1.Y)
	d2 := math.Hypot(seg.End.X-p2.X, seg.End.Y-p2.Y)
	assert.InDelta(t, 24, d1, 1e-9)
	assert.InDelta(t, 30, d2, 1e-9)
}

func TestTrimCoincidentPointsNoNaN(t *testing.T) {
	p := layout.Position{X: 42, Y: 42}
	seg := Trim(p, p, 24, 6)

	for _, v := range []float64{
		seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y,
		seg.LabelAnchor.X, seg.LabelAnchor.Y,
	} {
		assert.False(t, math.IsNaN(v))
		assert.False(t, math.IsInf(v, 0))
	}
}

func TestDistanceToSegment(t *testing.T) {
	a := layout.Position{X: 0, Y: 0}
	b := layout.Position{X: 100, Y: 0}

	assert.InDelta(t, 5, DistanceToSegment(layout.Position{X: 50, Y: 5}, a, b), 1e-9)
	// Beyond the endpoints the distance is to the nearest endpoint.
	assert.InDelta(t, 10, DistanceToSegment(layout.Position{X: 110, Y: 0}, a, b), 1e-9)
	// Degenerate segment.
	assert.InDelta(t, 7, DistanceToSegment(layout.Position{X: 7, Y: 0}, a, a), 1e-9)
}
