// Package liveview streams a scene to a browser over a websocket and feeds
// the browser's pointer events back into the interaction controller. All
// messages, both directions, share one envelope shape:
//
//	{"type": "...", "data": {...}}
package liveview

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gorilla/websocket"

	"github.com/argmapio/argmap/internal/argmap"
	"github.com/argmapio/argmap/internal/interact"
	"github.com/argmapio/argmap/internal/layout"
	"github.com/argmapio/argmap/internal/lib"
	"github.com/argmapio/argmap/internal/render"
)

// All of the websocket messages sent by View will be text.
var t = websocket.TextMessage

type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type positionMsg struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type hoverMsg struct {
	Kind  string `json:"kind"`
	ID    string `json:"id,omitempty"`
	Index int    `json:"index,omitempty"`
}

// View couples one websocket client to one interaction controller.
type View struct {
	ws   lib.ThreadSafeWebSocket
	ctrl *interact.Controller
}

func NewView(ws lib.ThreadSafeWebSocket, ctrl *interact.Controller) *View {
	v := &View{ws: ws, ctrl: ctrl}
	ctrl.OnNodeMoved = v.notifyPosition
	ctrl.OnHoverChanged = v.notifyHover
	ctrl.OnNodeSelected = v.notifyNodeSelected
	ctrl.OnEdgeSelected = v.notifyEdgeSelected
	return v
}

// SendScene pushes a full drawable scene to the client. Called once per
// graph snapshot; interaction afterwards flows as deltas.
func (v *View) SendScene(scene *render.Scene) error {
	return v.send("scene", scene)
}

// Run reads client messages until the connection drops. Pointer events are
// forwarded into the controller on this goroutine, which keeps all
// interaction state transitions single-threaded.
func (v *View) Run() error {
	for {
		_, msg, err := v.ws.ReadMessage()
		if err != nil {
			return err
		}
		if err := v.HandleMessage(msg); err != nil {
			log.Print("liveview message err: ", err)
		}
	}
}

// HandleMessage dispatches one inbound envelope.
func (v *View) HandleMessage(raw []byte) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("bad envelope: %w", err)
	}

	switch env.Type {
	case "pointer":
		var ev interact.PointerEvent
		if err := json.Unmarshal(env.Data, &ev); err != nil {
			return fmt.Errorf("bad pointer event: %w", err)
		}
		v.ctrl.HandlePointer(ev)
		return nil
	default:
		return fmt.Errorf("unknown message type: %q", env.Type)
	}
}

func (v *View) notifyPosition(id string, pos layout.Position) {
	if err := v.send("position", positionMsg{ID: id, X: pos.X, Y: pos.Y}); err != nil {
		log.Print("notifyPosition ws write err: ", err)
	}
}

func (v *View) notifyHover(h interact.Hover) {
	msg := hoverMsg{Kind: "none"}
	switch h.Kind {
	case interact.HoverNode:
		msg = hoverMsg{Kind: "node", ID: h.NodeID}
	case interact.HoverEdge:
		msg = hoverMsg{Kind: "edge", Index: h.EdgeIndex}
	}
	if err := v.send("hover", msg); err != nil {
		log.Print("notifyHover ws write err: ", err)
	}
}

func (v *View) notifyNodeSelected(n argmap.Node) {
	if err := v.send("nodeselect", n); err != nil {
		log.Print("notifyNodeSelected ws write err: ", err)
	}
}

func (v *View) notifyEdgeSelected(e argmap.Edge) {
	if err := v.send("edgeselect", e); err != nil {
		log.Print("notifyEdgeSelected ws write err: ", err)
	}
}

func (v *View) send(msgType string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	msg, err := json.Marshal(envelope{Type: msgType, Data: payload})
	if err != nil {
		return err
	}
	return v.ws.WriteMessage(t, msg)
}
