// Package argmap defines the argument-graph data model shared by the layout,
// interaction, and rendering packages. An ArgumentGraph arrives as a complete
// snapshot from the extraction service and is never patched in place.
package argmap

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// TextSpan is a half-open [Start, End) character range into the source text.
type TextSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Node is a single claim, concept, or inference in the argument map. Type and
// RhetoricalForce are open vocabularies chosen by the extractor, not enums.
type Node struct {
	ID              string    `json:"id"`
	Content         string    `json:"content"`
	Type            string    `json:"type"`
	RhetoricalForce string    `json:"rhetorical_force,omitempty"`
	Span            *TextSpan `json:"span,omitempty"`
}

// Edge is a directed relationship between two nodes. Source and Target are
// node IDs and are not guaranteed to reference nodes that actually exist.
type Edge struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	Type        string `json:"type"`
	Explanation string `json:"explanation,omitempty"`
}

// ArgumentGraph is a complete extracted argument map.
type ArgumentGraph struct {
	Version     string   `json:"version"`
	SourceText  string   `json:"source_text"`
	Nodes       []Node   `json:"nodes"`
	Edges       []Edge   `json:"edges"`
	Summary     string   `json:"summary,omitempty"`
	KeyTensions []string `json:"key_tensions,omitempty"`
}

// NodeSet returns the IDs present in the node sequence.
func (g *ArgumentGraph) NodeSet() map[string]struct{} {
	ids := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		ids[n.ID] = struct{}{}
	}
	return ids
}

// ValidEdges returns the indices of edges whose source and target both
// reference existing nodes. Dangling edges are inert: excluded from layout
// and from the drawable set, never an error.
func (g *ArgumentGraph) ValidEdges() []int {
	ids := g.NodeSet()
	valid := make([]int, 0, len(g.Edges))
	for i, e := range g.Edges {
		if _, ok := ids[e.Source]; !ok {
			continue
		}
		if _, ok := ids[e.Target]; !ok {
			continue
		}
		valid = append(valid, i)
	}
	return valid
}

// Fingerprint hashes the node/edge identity of the graph. The layout cache is
// keyed on this, so a new extraction snapshot forces a fresh layout while
// drag ticks and re-renders do not.
func (g *ArgumentGraph) Fingerprint() uint64 {
	h := xxhash.New()
	var lenBuf [8]byte
	write := func(s string) {
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(s)))
		_, _ = h.Write(lenBuf[:])
		_, _ = h.WriteString(s)
	}
	for _, n := range g.Nodes {
		write(n.ID)
		write(n.Type)
	}
	for _, e := range g.Edges {
		write(e.Source)
		write(e.Target)
		write(e.Type)
	}
	return h.Sum64()
}

// ContentHash is the persistence key for an analysis: a hash of the source
// text the graph was extracted from.
func ContentHash(sourceText string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(sourceText))
}
