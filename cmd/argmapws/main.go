// argmapws serves the live argument-map view: a static frontend plus a /ws
// endpoint. Each websocket session starts with a JSON config message naming
// the text (or URL) to analyze; the server extracts, lays out, streams the
// scene, and then exchanges pointer events and interaction notifications
// until the client disconnects.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"github.com/argmapio/argmap/internal/argmap"
	"github.com/argmapio/argmap/internal/extract"
	"github.com/argmapio/argmap/internal/fetch"
	"github.com/argmapio/argmap/internal/interact"
	"github.com/argmapio/argmap/internal/layout"
	"github.com/argmapio/argmap/internal/lib"
	"github.com/argmapio/argmap/internal/render"
	"github.com/argmapio/argmap/internal/render/liveview"
	"github.com/argmapio/argmap/internal/store"
)

var upgrader = websocket.Upgrader{}

// sessionConfig is the first message a client sends on /ws.
type sessionConfig struct {
	Text           string        `json:"text"`
	URL            string        `json:"url"`
	ExtractorURL   string        `json:"extractorUrl"`
	APIKey         string        `json:"apiKey"`
	ExtractTimeout lib.Duration  `json:"extractTimeout"`
	Layout         layout.Config `json:"layout"`
}

type server struct {
	logger *slog.Logger
	db     *store.Store
}

func main() {
	upgrader.CheckOrigin = func(r *http.Request) bool { return true }

	staticDir := flag.String("d", "public", "the directory to serve static files from")
	address := flag.String("b", "127.0.0.1:8080", "the ip:port to bind the webserver to")
	storeDir := flag.String("store", "argmapdata", "directory for persisted analyses")
	level := flag.String("level", "info", "log level")

	flag.Parse()

	slogLevel, err := lib.ParseSLogLevel(*level)
	if err != nil {
		log.Fatal(err)
	}

	db, err := store.New(*storeDir)
	if err != nil {
		log.Fatal(err)
	}

	s := &server{
		logger: lib.NiceLogger(os.Stderr, slogLevel),
		db:     db,
	}

	http.Handle("/", http.FileServer(http.Dir(*staticDir)))
	http.HandleFunc("/ws", s.session)

	log.Fatal(http.ListenAndServe(*address, nil))
}

func (s *server) session(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("ws upgrade err:", err)
		return
	}
	defer c.Close()

	ws := lib.NewThreadSafeWebSocket(c)

	_, msg, err := ws.ReadMessage()
	if err != nil {
		log.Println("ws cfg read err:", err)
		return
	}

	cfg := &sessionConfig{}
	if err = json.Unmarshal(msg, cfg); err != nil {
		log.Println("ws cfg unmarshal err:", err)
		return
	}
	if cfg.ExtractTimeout.Duration == 0 {
		cfg.ExtractTimeout = lib.DurationFrom(time.Minute)
	}

	ctx, cancel := context.WithTimeout(r.Context(), cfg.ExtractTimeout.Duration)
	defer cancel()

	g, err := s.resolveGraph(ctx, cfg, ws)
	if err != nil {
		s.logger.Error("Session setup failed", "error", err)
		return
	}
	s.logger.Info("Session graph ready",
		"nodes", len(g.Nodes), "edges", len(g.Edges), "key", argmap.ContentHash(g.SourceText))

	layoutCfg := cfg.Layout.WithDefaults()
	engine, err := layout.New(layoutCfg)
	if err != nil {
		s.logger.Error("Bad layout config", "error", err)
		return
	}
	cache := layout.NewCache(engine)

	ctrl := interact.NewController(g, cache.Layout(g), layoutCfg,
		render.DefaultNodeRadius, render.DefaultNodeRadius/2)
	view := liveview.NewView(ws, ctrl)

	scene := render.BuildScene(g, ctrl.Positions(), layoutCfg,
		render.DefaultNodeRadius, render.DefaultArrowOffset)
	if err := view.SendScene(scene); err != nil {
		s.logger.Error("Failed to send scene", "error", err)
		return
	}

	// Blocks until the client disconnects; pointer events drive the
	// controller and its callbacks write back through the view.
	if err := view.Run(); err != nil {
		s.logger.Debug("Session ended", "error", err)
	}
}

// resolveGraph produces the session's graph snapshot: stored analysis if the
// text was seen before, otherwise a fresh streamed extraction whose events
// are relayed to the client as progress.
func (s *server) resolveGraph(ctx context.Context, cfg *sessionConfig, ws lib.ThreadSafeWebSocket) (*argmap.ArgumentGraph, error) {
	text := cfg.Text
	if cfg.URL != "" {
		fetched, err := fetch.Text(ctx, &http.Client{Timeout: 30 * time.Second}, cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", cfg.URL, err)
		}
		text = fetched
	}
	if text == "" {
		return nil, fmt.Errorf("session config has neither text nor url")
	}

	if g, ok, err := s.db.GetByText(text); err != nil {
		return nil, err
	} else if ok {
		return g, nil
	}

	client := extract.NewClient(cfg.ExtractorURL, cfg.APIKey, &http.Client{Timeout: cfg.ExtractTimeout.Duration})
	g, err := client.ExtractStream(ctx, text, func(ev extract.Event) {
		relay, err := json.Marshal(map[string]interface{}{"type": "extract", "data": ev})
		if err != nil {
			return
		}
		if err := ws.WriteMessage(websocket.TextMessage, relay); err != nil {
			log.Print("extract relay ws write err: ", err)
		}
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.db.Put(g); err != nil {
		s.logger.Error("Failed to store analysis", "error", err)
	}
	return g, nil
}
