// Package layout places argument-graph nodes in 2D canvas space. Two
// interchangeable strategies are provided: a rank-based hierarchical layout
// for mostly-acyclic graphs, and a force-directed simulation that handles
// arbitrary graphs. The strategy is a static configuration choice.
package layout

import (
	"fmt"

	"github.com/argmapio/argmap/internal/argmap"
)

// Position is a point in canvas pixel space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Config carries the canvas extent and the tunables for both strategies.
type Config struct {
	Strategy string  `json:"strategy"` // "hierarchical" or "force"
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Margin   float64 `json:"margin"`

	// Hierarchical.
	NodeSeparation float64 `json:"nodeSeparation"`
	RankSeparation float64 `json:"rankSeparation"`

	// Force-directed.
	Iterations         int     `json:"iterations"`
	RepulsionConstant  float64 `json:"repulsionConstant"`
	AttractionConstant float64 `json:"attractionConstant"`
	Damping            float64 `json:"damping"`
}

const (
	StrategyHierarchical = "hierarchical"
	StrategyForce        = "force"
)

// DefaultConfig returns the reference tuning for a given canvas extent.
func DefaultConfig(width, height float64) Config {
	return Config{
		Strategy:           StrategyHierarchical,
		Width:              width,
		Height:             height,
		Margin:             40,
		NodeSeparation:     140,
		RankSeparation:     110,
		Iterations:         100,
		RepulsionConstant:  8000,
		AttractionConstant: 0.02,
		Damping:            0.85,
	}
}

// Engine computes a base position for every node in the graph. The returned
// map always has exactly one entry per node ID; edges referencing missing
// nodes are ignored rather than rejected.
type Engine interface {
	Layout(g *argmap.ArgumentGraph) map[string]Position
}

// New selects a strategy from cfg.Strategy.
func New(cfg Config) (Engine, error) {
	switch cfg.Strategy {
	case StrategyHierarchical:
		return Hierarchical{cfg}, nil
	case StrategyForce:
		return ForceDirected{cfg}, nil
	default:
		return nil, fmt.Errorf("unknown layout strategy: %q", cfg.Strategy)
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		// Degenerate canvas smaller than twice the margin; collapse to lo.
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
