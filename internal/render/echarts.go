package render

import (
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/argmapio/argmap/internal/color"
)

// ECharts renders the scene as a self-contained go-echarts HTML file. Node
// positions come from our layout (echarts' own layout is disabled) and the
// per-type colors reuse the same assigner as every other renderer.
type ECharts struct{}

var _ FileRenderer = ECharts{}

func (e ECharts) RenderToFile(scene *Scene, filename string) error {
	filename = filename + ".html"

	page := components.NewPage()
	page.AddCharts(graphBase(scene))

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return page.Render(io.MultiWriter(f))
}

func graphBase(scene *Scene) *charts.Graph {
	nodes := make([]opts.GraphNode, 0, len(scene.Nodes))
	for _, n := range scene.Nodes {
		nodes = append(nodes, opts.GraphNode{
			Name:       n.ID,
			X:          float32(n.X),
			Y:          float32(n.Y),
			SymbolSize: n.Radius * 2,
			ItemStyle:  &opts.ItemStyle{Color: color.Hex(n.Label)},
		})
	}

	links := make([]opts.GraphLink, 0, len(scene.Edges))
	for _, e := range scene.Edges {
		links = append(links, opts.GraphLink{
			Source: e.Source,
			Target: e.Target,
		})
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "argmap",
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	graph.AddSeries(
		"argmap",
		nodes,
		links,
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Layout:    "none",
				Draggable: opts.Bool(true),
				Roam:      opts.Bool(true),
			},
		),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    "black",
			Position: "top",
		}),
	)
	return graph
}
