package layout

import (
	"math"

	"github.com/argmapio/argmap/internal/argmap"
)

// ForceDirected runs a fixed-iteration spring simulation: pairwise repulsion,
// attraction along edges, and a weak pull toward the canvas center. It works
// for any graph, cycles and disconnected nodes included. Cost is
// O(N² × iterations), so it runs once per graph snapshot, never per frame.
//
// Given the same node ordering the result is deterministic; a different
// insertion order of the same logical graph lands elsewhere, which is
// accepted.
type ForceDirected struct {
	Cfg Config
}

const centerPull = 0.01

func (f ForceDirected) Layout(g *argmap.ArgumentGraph) map[string]Position {
	positions := make(map[string]Position, len(g.Nodes))
	if len(g.Nodes) == 0 {
		return positions
	}

	cx := f.Cfg.Width / 2
	cy := f.Cfg.Height / 2

	// Seed evenly on a circle around the center. A lone node sits at the
	// center itself.
	radius := 0.35 * math.Min(f.Cfg.Width, f.Cfg.Height)
	if len(g.Nodes) == 1 {
		radius = 0
	}
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		angle := 2 * math.Pi * float64(i) / float64(len(g.Nodes))
		ids[i] = n.ID
		positions[n.ID] = Position{
			X: clamp(cx+radius*math.Cos(angle), f.Cfg.Margin, f.Cfg.Width-f.Cfg.Margin),
			Y: clamp(cy+radius*math.Sin(angle), f.Cfg.Margin, f.Cfg.Height-f.Cfg.Margin),
		}
	}

	valid := g.ValidEdges()
	fx := make(map[string]float64, len(ids))
	fy := make(map[string]float64, len(ids))

	for iter := 0; iter < f.Cfg.Iterations; iter++ {
		for _, id := range ids {
			fx[id] = 0
			fy[id] = 0
		}

		// Repulsion between every unordered pair.
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				a, b := positions[ids[i]], positions[ids[j]]
				dx, dy, dist := separation(a, b)
				push := f.Cfg.RepulsionConstant / (dist * dist)
				fx[ids[i]] -= push * dx / dist
				fy[ids[i]] -= push * dy / dist
				fx[ids[j]] += push * dx / dist
				fy[ids[j]] += push * dy / dist
			}
		}

		// Attraction along edges, independent of edge type.
		for _, ei := range valid {
			e := g.Edges[ei]
			a, b := positions[e.Source], positions[e.Target]
			dx, dy, dist := separation(a, b)
			pull := dist * f.Cfg.AttractionConstant
			fx[e.Source] += pull * dx / dist
			fy[e.Source] += pull * dy / dist
			fx[e.Target] -= pull * dx / dist
			fy[e.Target] -= pull * dy / dist
		}

		// Gravity toward the center keeps disconnected pieces from drifting.
		for _, id := range ids {
			p := positions[id]
			fx[id] += (cx - p.X) * centerPull
			fy[id] += (cy - p.Y) * centerPull
		}

		for _, id := range ids {
			p := positions[id]
			p.X = clamp(p.X+fx[id]*f.Cfg.Damping, f.Cfg.Margin, f.Cfg.Width-f.Cfg.Margin)
			p.Y = clamp(p.Y+fy[id]*f.Cfg.Damping, f.Cfg.Margin, f.Cfg.Height-f.Cfg.Margin)
			positions[id] = p
		}
	}

	return positions
}

// separation returns the vector from a to b and its length, substituting a
// distance of 1 when the points coincide so force math never divides by zero.
func separation(a, b Position) (dx, dy, dist float64) {
	dx = b.X - a.X
	dy = b.Y - a.Y
	dist = math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	return dx, dy, dist
}
