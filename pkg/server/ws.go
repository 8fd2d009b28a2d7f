package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/abpatra/agentbridge/pkg/events"
	"github.com/abpatra/agentbridge/pkg/logger"
)

// wsFrame mirrors the SSE framing as one JSON text message per event.
type wsFrame struct {
	Event string                 `json:"event"`
	Data  map[string]interface{} `json:"data"`
}

// handleChatWS serves the same outward event stream over a websocket, for
// clients that cannot consume SSE. One query per connection; the connection
// closes after the terminal done frame.
func (s *Server) handleChatWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || s.originAllowed(origin)
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WarnCF("server", "Websocket upgrade failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	defer conn.Close()

	var req chatRequest
	if err := conn.ReadJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		conn.WriteJSON(wsFrame{Event: events.Error, Data: map[string]interface{}{
			"message": "query is required",
		}})
		conn.WriteJSON(wsFrame{Event: "done", Data: map[string]interface{}{}})
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The read pump only watches for the peer going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	stream := s.orch.Open(ctx, req.Query)
	defer stream.Close()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case ev, ok := <-stream.Events():
			if !ok {
				break loop
			}
			if err := conn.WriteJSON(wsFrame{Event: ev.Name, Data: ev.Data}); err != nil {
				break loop
			}
		}
	}

	conn.WriteJSON(wsFrame{Event: "done", Data: map[string]interface{}{}})
}
