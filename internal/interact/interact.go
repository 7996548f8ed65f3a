// Package interact turns raw pointer events into drag, hover, and selection
// state. Pointer events arrive as plain coordinates plus a phase, so the
// state machine is testable without a display surface; the renderer is only
// responsible for forwarding events and drawing the result.
package interact

import (
	"github.com/argmapio/argmap/internal/argmap"
	"github.com/argmapio/argmap/internal/geometry"
	"github.com/argmapio/argmap/internal/layout"
)

// Phase is the stage of a pointer event. Leave is treated like Up so a drag
// is never left dangling when the pointer exits the drawable surface.
type Phase string

const (
	PhaseDown  Phase = "down"
	PhaseMove  Phase = "move"
	PhaseUp    Phase = "up"
	PhaseLeave Phase = "leave"
)

// PointerEvent is the abstract input port: canvas-local coordinates plus a
// phase.
type PointerEvent struct {
	Phase Phase   `json:"phase"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// HoverKind tags the hover variant. Node and edge hover are mutually
// exclusive; both are independent of drag state.
type HoverKind int

const (
	HoverNone HoverKind = iota
	HoverNode
	HoverEdge
)

// Hover is the currently hovered element, if any.
type Hover struct {
	Kind      HoverKind
	NodeID    string
	EdgeIndex int
}

// drag is the tagged drag variant: Idle when active is false, otherwise
// Dragging(nodeID). moved records whether any pointer-move happened while
// dragging, which is what distinguishes a drag from a click.
type drag struct {
	active bool
	nodeID string
	moved  bool
}

// Controller owns the live position map for one rendered graph. It is
// re-created (via Reset) whenever a new graph snapshot arrives; it is not
// safe for concurrent use and is meant to run on the event thread.
type Controller struct {
	graph      *argmap.ArgumentGraph
	base       map[string]layout.Position
	overrides  map[string]layout.Position
	validEdges []int

	width, height, margin float64
	nodeRadius            float64
	edgeSlop              float64

	drag    drag
	hover   Hover
	selNode string
	selEdge int
	hasNode bool
	hasEdge bool

	// Fire-and-forget notifications; any may be nil.
	OnNodeSelected func(argmap.Node)
	OnEdgeSelected func(argmap.Edge)
	OnNodeMoved    func(id string, pos layout.Position)
	OnHoverChanged func(Hover)
}

// NewController builds a controller over a layout snapshot. nodeRadius is the
// hit radius for node glyphs; edges respond within edgeSlop of the line.
func NewController(g *argmap.ArgumentGraph, base map[string]layout.Position, cfg layout.Config, nodeRadius, edgeSlop float64) *Controller {
	c := &Controller{
		width:      cfg.Width,
		height:     cfg.Height,
		margin:     cfg.Margin,
		nodeRadius: nodeRadius,
		edgeSlop:   edgeSlop,
	}
	c.Reset(g, base)
	return c
}

// Reset discards all drag, hover, selection, and override state and starts
// over from a fresh graph snapshot and base layout.
func (c *Controller) Reset(g *argmap.ArgumentGraph, base map[string]layout.Position) {
	c.graph = g
	c.base = base
	c.overrides = make(map[string]layout.Position)
	c.validEdges = g.ValidEdges()
	c.drag = drag{}
	c.hover = Hover{}
	c.hasNode = false
	c.hasEdge = false
}

// Position returns the effective position for a node: the live drag override
// when present, otherwise the base layout position.
func (c *Controller) Position(id string) (layout.Position, bool) {
	if p, ok := c.overrides[id]; ok {
		return p, true
	}
	p, ok := c.base[id]
	return p, ok
}

// Positions returns a copy of the effective position map.
func (c *Controller) Positions() map[string]layout.Position {
	out := make(map[string]layout.Position, len(c.base))
	for id, p := range c.base {
		out[id] = p
	}
	for id, p := range c.overrides {
		out[id] = p
	}
	return out
}

// Dragging reports the node being dragged, if any.
func (c *Controller) Dragging() (string, bool) {
	return c.drag.nodeID, c.drag.active
}

// Hovered returns the current hover state.
func (c *Controller) Hovered() Hover {
	return c.hover
}

// SelectedNode returns the selected node ID, if a node is selected.
func (c *Controller) SelectedNode() (string, bool) {
	return c.selNode, c.hasNode
}

// SelectedEdge returns the selected edge index, if an edge is selected.
func (c *Controller) SelectedEdge() (int, bool) {
	return c.selEdge, c.hasEdge
}

// HandlePointer advances the state machine by one pointer event.
func (c *Controller) HandlePointer(ev PointerEvent) {
	switch ev.Phase {
	case PhaseDown:
		if id, ok := c.hitNode(ev.X, ev.Y); ok {
			c.drag = drag{active: true, nodeID: id}
		}
	case PhaseMove:
		c.updateHover(ev.X, ev.Y)
		if c.drag.active {
			c.drag.moved = true
			p := layout.Position{
				X: clamp(ev.X, c.margin, c.width-c.margin),
				Y: clamp(ev.Y, c.margin, c.height-c.margin),
			}
			c.overrides[c.drag.nodeID] = p
			if c.OnNodeMoved != nil {
				c.OnNodeMoved(c.drag.nodeID, p)
			}
		}
	case PhaseUp:
		c.endDrag(ev, true)
	case PhaseLeave:
		c.endDrag(ev, false)
		c.setHover(Hover{})
	}
}

// endDrag returns the machine to Idle. A pointer-up that never moved counts
// as a click; one that moved is just the end of a drag and must not select.
func (c *Controller) endDrag(ev PointerEvent, allowClick bool) {
	wasDrag := c.drag.active && c.drag.moved
	c.drag = drag{}

	if !allowClick || wasDrag {
		return
	}
	if id, ok := c.hitNode(ev.X, ev.Y); ok {
		c.selectNode(id)
		return
	}
	if idx, ok := c.hitEdge(ev.X, ev.Y); ok {
		c.selectEdge(idx)
	}
}

// selectNode selects a node and clears any edge selection; the two detail
// views are mutually exclusive.
func (c *Controller) selectNode(id string) {
	c.selNode = id
	c.hasNode = true
	c.hasEdge = false
	if c.OnNodeSelected != nil {
		for _, n := range c.graph.Nodes {
			if n.ID == id {
				c.OnNodeSelected(n)
				break
			}
		}
	}
}

func (c *Controller) selectEdge(idx int) {
	c.selEdge = idx
	c.hasEdge = true
	c.hasNode = false
	if c.OnEdgeSelected != nil {
		c.OnEdgeSelected(c.graph.Edges[idx])
	}
}

func (c *Controller) updateHover(x, y float64) {
	next := Hover{}
	if id, ok := c.hitNode(x, y); ok {
		next = Hover{Kind: HoverNode, NodeID: id}
	} else if idx, ok := c.hitEdge(x, y); ok {
		next = Hover{Kind: HoverEdge, EdgeIndex: idx}
	}
	c.setHover(next)
}

func (c *Controller) setHover(next Hover) {
	if next == c.hover {
		return
	}
	c.hover = next
	if c.OnHoverChanged != nil {
		c.OnHoverChanged(next)
	}
}

// hitNode tests nodes in reverse order so the last-drawn glyph wins when
// glyphs overlap.
func (c *Controller) hitNode(x, y float64) (string, bool) {
	for i := len(c.graph.Nodes) - 1; i >= 0; i-- {
		id := c.graph.Nodes[i].ID
		p, ok := c.Position(id)
		if !ok {
			continue
		}
		dx := x - p.X
		dy := y - p.Y
		if dx*dx+dy*dy <= c.nodeRadius*c.nodeRadius {
			return id, true
		}
	}
	return "", false
}

// hitEdge tests only edges whose endpoints both exist; dangling edges are
// not drawable and therefore not hoverable.
func (c *Controller) hitEdge(x, y float64) (int, bool) {
	pt := layout.Position{X: x, Y: y}
	for _, idx := range c.validEdges {
		e := c.graph.Edges[idx]
		a, aok := c.Position(e.Source)
		b, bok := c.Position(e.Target)
		if !aok || !bok {
			continue
		}
		if geometry.DistanceToSegment(pt, a, b) <= c.edgeSlop {
			return idx, true
		}
	}
	return -1, false
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
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
