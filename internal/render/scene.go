// Package render turns a graph snapshot plus a position map into a drawable
// scene, and provides interchangeable renderers for it: an echarts HTML file,
// a raw JSON file, and (in the liveview subpackage) a websocket stream.
package render

import (
	"github.com/argmapio/argmap/internal/argmap"
	"github.com/argmapio/argmap/internal/color"
	"github.com/argmapio/argmap/internal/geometry"
	"github.com/argmapio/argmap/internal/layout"
)

const (
	// DefaultNodeRadius is the glyph radius in canvas pixels.
	DefaultNodeRadius = 24.0
	// DefaultArrowOffset reserves room between the trimmed line end and the
	// target node boundary for the arrowhead glyph.
	DefaultArrowOffset = 6.0
)

// NodeGlyph is one drawable node circle.
type NodeGlyph struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Content string  `json:"content"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Radius  float64 `json:"radius"`
	Color   string  `json:"color"`
}

// EdgeLine is one drawable edge: a trimmed segment with an arrowhead at the
// end and a label anchored off the midpoint. Index refers back into the
// graph's edge sequence.
type EdgeLine struct {
	Index   int              `json:"index"`
	Source  string           `json:"source"`
	Target  string           `json:"target"`
	Label   string           `json:"label"`
	Segment geometry.Segment `json:"segment"`
	Color   string           `json:"color"`
}

// LegendEntry pairs a type label with its swatch color.
type LegendEntry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Scene is everything a renderer needs to draw one frame.
type Scene struct {
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Nodes  []NodeGlyph   `json:"nodes"`
	Edges  []EdgeLine    `json:"edges"`
	Legend []LegendEntry `json:"legend"`
}

// BuildScene assembles the drawable set. Edges whose endpoints are missing
// from the node set (or from the position map) are excluded; everything else
// gets a color from the same deterministic label mapping, so node fills,
// edge strokes, and legend swatches agree.
func BuildScene(g *argmap.ArgumentGraph, positions map[string]layout.Position, cfg layout.Config, nodeRadius, arrowOffset float64) *Scene {
	scene := &Scene{Width: cfg.Width, Height: cfg.Height}

	seen := make(map[string]struct{})
	addLegend := func(label string) {
		if _, ok := seen[label]; ok {
			return
		}
		seen[label] = struct{}{}
		scene.Legend = append(scene.Legend, LegendEntry{Label: label, Color: color.HSL(label)})
	}

	for _, n := range g.Nodes {
		p, ok := positions[n.ID]
		if !ok {
			continue
		}
		scene.Nodes = append(scene.Nodes, NodeGlyph{
			ID:      n.ID,
			Label:   n.Type,
			Content: n.Content,
			X:       p.X,
			Y:       p.Y,
			Radius:  nodeRadius,
			Color:   color.HSL(n.Type),
		})
		addLegend(n.Type)
	}

	for _, i := range g.ValidEdges() {
		e := g.Edges[i]
		a, aok := positions[e.Source]
		b, bok := positions[e.Target]
		if !aok || !bok {
			continue
		}
		scene.Edges = append(scene.Edges, EdgeLine{
			Index:   i,
			Source:  e.Source,
			Target:  e.Target,
			Label:   e.Type,
			Segment: geometry.Trim(a, b, nodeRadius, arrowOffset),
			Color:   color.HSL(e.Type),
		})
		addLegend(e.Type)
	}

	return scene
}
