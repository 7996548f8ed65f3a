// argmap is the one-shot CLI: take text (file, stdin, or a fetched web
// page), run it through the extraction service, lay the resulting argument
// graph out, and render it to a file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/argmapio/argmap/internal/argmap"
	"github.com/argmapio/argmap/internal/extract"
	"github.com/argmapio/argmap/internal/fetch"
	"github.com/argmapio/argmap/internal/layout"
	"github.com/argmapio/argmap/internal/render"
	"github.com/argmapio/argmap/internal/store"
)

func main() {
	inFile := flag.String("in", "", "text file to analyze, '-' for stdin")
	inURL := flag.String("url", "", "web page to fetch and analyze instead of -in")
	extractorURL := flag.String("extractor", "http://127.0.0.1:8000", "base URL of the extraction service")
	apiKey := flag.String("apikey", os.Getenv("ARGMAP_API_KEY"), "extraction service API key")
	storeDir := flag.String("store", "argmapdata", "directory for persisted analyses")
	renderer := flag.String("renderer", "echarts", "output renderer: echarts or json")
	outFile := flag.String("o", "argmap", "output file name, without extension")
	strategy := flag.String("strategy", layout.StrategyHierarchical, "layout strategy: hierarchical or force")
	width := flag.Float64("width", 800, "canvas width in pixels")
	height := flag.Float64("height", 600, "canvas height in pixels")
	timeout := flag.Duration("timeout", time.Minute, "extraction/fetch timeout")

	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	text, err := readText(ctx, *inFile, *inURL)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	db, err := store.New(*storeDir)
	if err != nil {
		log.Fatalf("opening store: %v", err)
	}

	g, err := analyze(ctx, db, *extractorURL, *apiKey, text)
	if err != nil {
		log.Fatalf("analyzing: %v", err)
	}
	log.Printf("Graph: %d nodes, %d edges (%d drawable)", len(g.Nodes), len(g.Edges), len(g.ValidEdges()))

	cfg := layout.Config{Strategy: *strategy, Width: *width, Height: *height}.WithDefaults()
	engine, err := layout.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	scene := render.BuildScene(g, engine.Layout(g), cfg, render.DefaultNodeRadius, render.DefaultArrowOffset)

	var chosen render.FileRenderer
	switch *renderer {
	case "echarts":
		chosen = render.ECharts{}
	case "json":
		chosen = render.SceneJSON{}
	default:
		log.Fatalf("unknown renderer: %s", *renderer)
	}

	if err := chosen.RenderToFile(scene, *outFile); err != nil {
		log.Fatalf("rendering: %v", err)
	}
}

func readText(ctx context.Context, inFile, inURL string) (string, error) {
	switch {
	case inURL != "":
		return fetch.Text(ctx, &http.Client{Timeout: 30 * time.Second}, inURL)
	case inFile == "-":
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	case inFile != "":
		data, err := os.ReadFile(inFile)
		return string(data), err
	default:
		return "", fmt.Errorf("one of -in or -url is required")
	}
}

// analyze returns the stored analysis for this text if one exists, otherwise
// extracts a fresh one and stores it.
func analyze(ctx context.Context, db *store.Store, extractorURL, apiKey, text string) (*argmap.ArgumentGraph, error) {
	if g, ok, err := db.GetByText(text); err != nil {
		return nil, err
	} else if ok {
		log.Printf("Using stored analysis %s", argmap.ContentHash(text))
		return g, nil
	}

	client := extract.NewClient(extractorURL, apiKey, &http.Client{Timeout: time.Minute})
	g, err := client.Extract(ctx, text)
	if err != nil {
		return nil, err
	}

	key, err := db.Put(g)
	if err != nil {
		return nil, err
	}
	log.Printf("Stored analysis %s", key)
	return g, nil
}
