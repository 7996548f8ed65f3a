package layout

import (
	"sort"

	"github.com/argmapio/argmap/internal/argmap"
)

// Hierarchical lays the graph out top-to-bottom by rank, where a node's rank
// is its longest-path distance from any source node. Cyclic graphs are not
// broken apart: relaxation is bounded at N rounds, so a back-edge may end up
// pointing at an equal or lower rank and simply draws upward. This is
// accepted behavior, not an error.
type Hierarchical struct {
	Cfg Config
}

func (h Hierarchical) Layout(g *argmap.ArgumentGraph) map[string]Position {
	positions := make(map[string]Position, len(g.Nodes))
	if len(g.Nodes) == 0 {
		return positions
	}

	ranks := h.assignRanks(g)

	// Group nodes by rank, preserving input order within a rank.
	maxRank := 0
	rows := make(map[int][]string)
	for _, n := range g.Nodes {
		r := ranks[n.ID]
		rows[r] = append(rows[r], n.ID)
		if r > maxRank {
			maxRank = r
		}
	}

	h.orderRows(g, rows, ranks, maxRank)

	// Place on a regular grid.
	cols := make(map[string]int, len(g.Nodes))
	widest := 0
	for r := 0; r <= maxRank; r++ {
		for i, id := range rows[r] {
			cols[id] = i
		}
		if len(rows[r]) > widest {
			widest = len(rows[r])
		}
	}

	boxW := float64(widest-1) * h.Cfg.NodeSeparation
	boxH := float64(maxRank) * h.Cfg.RankSeparation

	// Scale down when the grid overflows the canvas; never scale up.
	availW := h.Cfg.Width - 2*h.Cfg.Margin
	availH := h.Cfg.Height - 2*h.Cfg.Margin
	scale := 1.0
	if boxW > 0 && availW/boxW < scale {
		scale = availW / boxW
	}
	if boxH > 0 && availH/boxH < scale {
		scale = availH / boxH
	}
	if scale < 0 {
		scale = 0
	}

	// Center the scaled grid in the canvas. Each row is additionally
	// centered within the widest row.
	offsetX := (h.Cfg.Width - boxW*scale) / 2
	offsetY := (h.Cfg.Height - boxH*scale) / 2

	for r := 0; r <= maxRank; r++ {
		row := rows[r]
		rowW := float64(len(row)-1) * h.Cfg.NodeSeparation
		rowOffset := (boxW - rowW) / 2
		for _, id := range row {
			x := offsetX + (rowOffset+float64(cols[id])*h.Cfg.NodeSeparation)*scale
			y := offsetY + float64(r)*h.Cfg.RankSeparation*scale
			positions[id] = Position{X: x, Y: y}
		}
	}

	return positions
}

// assignRanks computes longest-path ranks by relaxation over the edges that
// reference existing nodes. At most N rounds run, which terminates even when
// the graph contains cycles.
func (h Hierarchical) assignRanks(g *argmap.ArgumentGraph) map[string]int {
	ranks := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		ranks[n.ID] = 0
	}

	valid := g.ValidEdges()
	for round := 0; round < len(g.Nodes); round++ {
		changed := false
		for _, i := range valid {
			e := g.Edges[i]
			if ranks[e.Target] <= ranks[e.Source] {
				ranks[e.Target] = ranks[e.Source] + 1
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return ranks
}

// orderRows does one downward barycenter sweep: each node is keyed by the
// mean column of its predecessors in the rank above, which is a cheap
// crossing-reduction heuristic. Ties keep input order.
func (h Hierarchical) orderRows(g *argmap.ArgumentGraph, rows map[int][]string, ranks map[string]int, maxRank int) {
	valid := g.ValidEdges()
	preds := make(map[string][]string)
	for _, i := range valid {
		e := g.Edges[i]
		if ranks[e.Source] < ranks[e.Target] {
			preds[e.Target] = append(preds[e.Target], e.Source)
		}
	}

	col := make(map[string]float64)
	for i, id := range rows[0] {
		col[id] = float64(i)
	}

	for r := 1; r <= maxRank; r++ {
		row := rows[r]
		bary := make(map[string]float64, len(row))
		for i, id := range row {
			ps := preds[id]
			if len(ps) == 0 {
				bary[id] = float64(i)
				continue
			}
			sum := 0.0
			for _, p := range ps {
				sum += col[p]
			}
			bary[id] = sum / float64(len(ps))
		}
		sort.SliceStable(row, func(a, b int) bool {
			return bary[row[a]] < bary[row[b]]
		})
		for i, id := range row {
			col[id] = float64(i)
		}
	}
}
