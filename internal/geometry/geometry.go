// Package geometry trims edge lines back to node boundaries so arrowheads
// have room, and picks a label anchor off the line.
package geometry

import (
	"math"

	"github.com/argmapio/argmap/internal/layout"
)

// labelLift nudges the label anchor up off the line in canvas space.
const labelLift = 6

// Segment is a trimmed edge line: Start sits on the source node's boundary,
// End is pulled back from the target's boundary to leave room for an
// arrowhead glyph, and LabelAnchor is where the edge label is drawn.
type Segment struct {
	Start       layout.Position `json:"start"`
	End         layout.Position `json:"end"`
	LabelAnchor layout.Position `json:"labelAnchor"`
}

// Trim shortens the line from p1 to p2 by nodeRadius at the start and by
// nodeRadius+arrowOffset at the end. Coincident endpoints are handled with an
// epsilon distance; the result is then visually meaningless but well defined,
// never NaN.
func Trim(p1, p2 layout.Position, nodeRadius, arrowOffset float64) Segment {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1e-6
	}
	ux := dx / dist
	uy := dy / dist

	start := layout.Position{X: p1.X + ux*nodeRadius, Y: p1.Y + uy*nodeRadius}
	end := layout.Position{X: p2.X - ux*(nodeRadius+arrowOffset), Y: p2.Y - uy*(nodeRadius+arrowOffset)}

	return Segment{
		Start: start,
		End:   end,
		LabelAnchor: layout.Position{
			X: (start.X + end.X) / 2,
			Y: (start.Y+end.Y)/2 - labelLift,
		},
	}
}

// DistanceToSegment returns the shortest distance from p to the segment ab.
// Used by interaction hit-testing for edge hover.
func DistanceToSegment(p, a, b layout.Position) float64 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*abx), p.Y-(a.Y+t*aby))
}
