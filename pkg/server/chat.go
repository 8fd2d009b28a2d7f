package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/abpatra/agentbridge/pkg/events"
	"github.com/abpatra/agentbridge/pkg/logger"
)

// handleChat serves one query as a server-sent event stream. Every request
// ends with exactly one terminal "done" frame, whatever happened before it;
// consumers rely on that frame, not on error events, to detect completion.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	requestID := uuid.NewString()
	logger.InfoCF("server", "Chat stream opened", map[string]interface{}{
		"request_id":   requestID,
		"query_length": len(req.Query),
	})

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	ctx := r.Context()
	stream := s.orch.Open(ctx, req.Query)
	defer stream.Close()

	delivered := 0
loop:
	for {
		select {
		case <-ctx.Done():
			// Client disconnected; stream.Close via defer stops the worker.
			break loop
		case ev, ok := <-stream.Events():
			if !ok {
				break loop
			}
			writeFrame(w, ev)
			flusher.Flush()
			delivered++
		}
	}

	fmt.Fprint(w, "event: done\ndata: {}\n\n")
	flusher.Flush()

	logger.InfoCF("server", "Chat stream closed", map[string]interface{}{
		"request_id": requestID,
		"events":     delivered,
		"cancelled":  ctx.Err() != nil,
	})
}

// writeFrame emits one SSE frame. A payload that cannot be serialized
// becomes an error frame instead of tearing the stream down.
func writeFrame(w io.Writer, ev events.Event) {
	payload, err := json.Marshal(ev.Data)
	if err != nil {
		logger.ErrorCF("server", "Event serialization failed", map[string]interface{}{
			"event": ev.Name,
			"error": err.Error(),
		})
		fmt.Fprintf(w, "event: %s\ndata: {\"message\":\"event serialization failed\"}\n\n", events.Error)
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, payload)
}
