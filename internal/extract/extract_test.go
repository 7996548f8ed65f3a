package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argmapio/argmap/internal/argmap"
)

func TestExtractSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/extract", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "All swans are white.", req.Text)
		assert.Equal(t, "secret", req.APIKey)

		json.NewEncoder(w).Encode(Response{
			Success: true,
			Result: &argmap.ArgumentGraph{
				Version:    "1.0",
				SourceText: req.Text,
				Nodes:      []argmap.Node{{ID: "n1", Content: "All swans are white", Type: "empirical_claim"}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", srv.Client())
	g, err := client.Extract(context.Background(), "All swans are white.")
	require.NoError(t, err)
	require.Len(t, g.Nodes, 1)
	assert.Equal(t, "empirical_claim", g.Nodes[0].Type)
	assert.Equal(t, "All swans are white.", g.SourceText)
}

func TestExtractServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{Success: false, Error: "LLM not configured: missing key"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", srv.Client())
	_, err := client.Extract(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM not configured")
}

func TestExtractNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", srv.Client())
	_, err := client.Extract(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestExtractStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/extract/stream", r.URL.Path)
		fmt.Fprintln(w, `{"type":"node","data":{"id":"n1","content":"p","type":"premise"}}`)
		fmt.Fprintln(w, `{"type":"node","data":{"id":"n2","content":"c","type":"conclusion","span":{"start":3,"end":10}}}`)
		fmt.Fprintln(w, `{"type":"edge","data":{"source":"n1","target":"n2","type":"supports"}}`)
		fmt.Fprintln(w, `{"type":"meta","data":{"summary":"p supports c","key_tensions":["none"]}}`)
		fmt.Fprintln(w, `{"type":"done","data":{}}`)
	}))
	defer srv.Close()

	var seen []string
	client := NewClient(srv.URL, "", srv.Client())
	g, err := client.ExtractStream(context.Background(), "some text", func(ev Event) {
		seen = append(seen, ev.Type)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"node", "node", "edge", "meta", "done"}, seen)
	require.Len(t, g.Nodes, 2)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "some text", g.SourceText)
	assert.Equal(t, "p supports c", g.Summary)
	require.NotNil(t, g.Nodes[1].Span)
	assert.Equal(t, argmap.TextSpan{Start: 3, End: 10}, *g.Nodes[1].Span)
}

func TestExtractStreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"type":"node","data":{"id":"n1","content":"p","type":"premise"}}`)
		fmt.Fprintln(w, `{"type":"error","data":"model overloaded"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", srv.Client())
	_, err := client.ExtractStream(context.Background(), "some text", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestExtractStreamTruncated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"type":"node","data":{"id":"n1","content":"p","type":"premise"}}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", srv.Client())
	_, err := client.ExtractStream(context.Background(), "some text", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without done")
}
