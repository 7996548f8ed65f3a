package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argmapio/argmap/internal/argmap"
	"github.com/argmapio/argmap/internal/color"
	"github.com/argmapio/argmap/internal/layout"
)

func sceneFixture() (*argmap.ArgumentGraph, map[string]layout.Position, layout.Config) {
	g := &argmap.ArgumentGraph{
		Nodes: []argmap.Node{
			{ID: "n1", Content: "first premise", Type: "premise"},
			{ID: "n2", Content: "second premise", Type: "premise"},
			{ID: "n3", Content: "the conclusion", Type: "conclusion"},
		},
		Edges: []argmap.Edge{
			{Source: "n1", Target: "n3", Type: "supports"},
			{Source: "n1", Target: "n9", Type: "supports"}, // dangling
		},
	}
	pos := map[string]layout.Position{
		"n1": {X: 100, Y: 100},
		"n2": {X: 300, Y: 100},
		"n3": {X: 200, Y: 300},
	}
	return g, pos, layout.Config{Width: 800, Height: 600, Margin: 40}
}

func TestBuildSceneExcludesDanglingEdges(t *testing.T) {
	g, pos, cfg := sceneFixture()

	scene := BuildScene(g, pos, cfg, DefaultNodeRadius, DefaultArrowOffset)

	assert.Len(t, scene.Nodes, 3)
	require.Len(t, scene.Edges, 1)
	assert.Equal(t, "n3", scene.Edges[0].Target)
	assert.Equal(t, 0, scene.Edges[0].Index)
}

func TestBuildSceneColorsAreConsistent(t *testing.T) {
	g, pos, cfg := sceneFixture()

	scene := BuildScene(g, pos, cfg, DefaultNodeRadius, DefaultArrowOffset)

	// Node fill, edge stroke, and legend swatch all come from the same label
	// mapping.
	assert.Equal(t, color.HSL("premise"), scene.Nodes[0].Color)
	assert.Equal(t, scene.Nodes[0].Color, scene.Nodes[1].Color)
	assert.Equal(t, color.HSL("supports"), scene.Edges[0].Color)

	swatches := map[string]string{}
	for _, entry := range scene.Legend {
		swatches[entry.Label] = entry.Color
	}
	assert.Equal(t, scene.Nodes[0].Color, swatches["premise"])
	assert.Equal(t, scene.Edges[0].Color, swatches["supports"])
}

func TestBuildSceneLegendFirstAppearanceOrder(t *testing.T) {
	g, pos, cfg := sceneFixture()

	scene := BuildScene(g, pos, cfg, DefaultNodeRadius, DefaultArrowOffset)

	labels := make([]string, len(scene.Legend))
	for i, entry := range scene.Legend {
		labels[i] = entry.Label
	}
	assert.Equal(t, []string{"premise", "conclusion", "supports"}, labels)
}

func TestBuildSceneTrimsEdges(t *testing.T) {
	g, pos, cfg := sceneFixture()

	scene := BuildScene(g, pos, cfg, DefaultNodeRadius, DefaultArrowOffset)

	seg := scene.Edges[0].Segment
	// The segment is strictly inside the endpoints: trimmed by the node
	// radius at the start and radius+arrow at the end.
	assert.Greater(t, seg.Start.Y, pos["n1"].Y)
	assert.Less(t, seg.End.Y, pos["n3"].Y)
}

func TestBuildSceneEmptyGraph(t *testing.T) {
	_, _, cfg := sceneFixture()
	scene := BuildScene(&argmap.ArgumentGraph{}, map[string]layout.Position{}, cfg, DefaultNodeRadius, DefaultArrowOffset)

	assert.Empty(t, scene.Nodes)
	assert.Empty(t, scene.Edges)
	assert.Empty(t, scene.Legend)
}
