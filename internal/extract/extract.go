// Package extract is the client for the argument-extraction service. The
// service turns raw text into an ArgumentGraph; this package only shuttles
// requests and responses, all the intelligence lives on the other side.
package extract

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/argmapio/argmap/internal/argmap"
)

// Request is the body for POST /api/extract. Temperature 0 asks for
// deterministic output.
type Request struct {
	Text        string  `json:"text"`
	APIKey      string  `json:"api_key,omitempty"`
	Temperature float64 `json:"temperature"`
	Model       string  `json:"model,omitempty"`
}

// Response is the extraction envelope: either Result or Error is set.
type Response struct {
	Success bool                  `json:"success"`
	Result  *argmap.ArgumentGraph `json:"result,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// Event is one message of the chunked extraction stream. Data depends on
// Type: "node" carries a node, "edge" an edge, "meta" the graph-level fields,
// "done" ends the stream, "error" aborts it.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type streamMeta struct {
	Version     string   `json:"version"`
	Summary     string   `json:"summary"`
	KeyTensions []string `json:"key_tensions"`
}

// Client talks to one extraction service instance.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a client for the service at baseURL. apiKey may be empty,
// in which case the service falls back to its own configured key.
func NewClient(baseURL, apiKey string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, client: hc}
}

// Extract runs a whole-document extraction and returns the complete graph
// snapshot.
func (c *Client) Extract(ctx context.Context, text string) (*argmap.ArgumentGraph, error) {
	resp, err := c.post(ctx, "/api/extract", text)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extraction service returned status %d", resp.StatusCode)
	}

	var envelope Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding extraction response: %w", err)
	}
	if !envelope.Success || envelope.Result == nil {
		return nil, fmt.Errorf("extraction failed: %s", envelope.Error)
	}

	g := envelope.Result
	if g.SourceText == "" {
		g.SourceText = text
	}
	return g, nil
}

// ExtractStream runs the chunked-event variant of extraction. onEvent, if
// non-nil, is called for every event as it arrives (for progress display);
// the assembled graph is returned once the "done" event is read.
func (c *Client) ExtractStream(ctx context.Context, text string, onEvent func(Event)) (*argmap.ArgumentGraph, error) {
	resp, err := c.post(ctx, "/api/extract/stream", text)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extraction service returned status %d", resp.StatusCode)
	}

	g := &argmap.ArgumentGraph{Version: "1.0", SourceText: text}
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			return nil, fmt.Errorf("bad stream event: %w", err)
		}
		if onEvent != nil {
			onEvent(ev)
		}

		switch ev.Type {
		case "node":
			var n argmap.Node
			if err := json.Unmarshal(ev.Data, &n); err != nil {
				return nil, fmt.Errorf("bad node event: %w", err)
			}
			g.Nodes = append(g.Nodes, n)
		case "edge":
			var e argmap.Edge
			if err := json.Unmarshal(ev.Data, &e); err != nil {
				return nil, fmt.Errorf("bad edge event: %w", err)
			}
			g.Edges = append(g.Edges, e)
		case "meta":
			var m streamMeta
			if err := json.Unmarshal(ev.Data, &m); err != nil {
				return nil, fmt.Errorf("bad meta event: %w", err)
			}
			if m.Version != "" {
				g.Version = m.Version
			}
			g.Summary = m.Summary
			g.KeyTensions = m.KeyTensions
		case "done":
			return g, nil
		case "error":
			var msg string
			_ = json.Unmarshal(ev.Data, &msg)
			return nil, fmt.Errorf("extraction failed: %s", msg)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("extraction stream ended without done event")
}

func (c *Client) post(ctx context.Context, path, text string) (*http.Response, error) {
	body, err := json.Marshal(Request{Text: text, APIKey: c.apiKey})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	return c.client.Do(req)
}
