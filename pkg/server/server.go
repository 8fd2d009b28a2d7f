// AgentBridge - Streaming web backend for Azure AI agent workflows
// License: MIT
//
// Copyright (c) 2026 AgentBridge contributors

// Package server exposes the chat relay over HTTP: an SSE stream at
// /api/chat, a websocket variant at /api/chat/ws, and a health probe.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/abpatra/agentbridge/pkg/config"
	"github.com/abpatra/agentbridge/pkg/logger"
	"github.com/abpatra/agentbridge/pkg/relay"
)

type Server struct {
	cfg        config.ServerConfig
	orch       *relay.Orchestrator
	httpServer *http.Server
}

type chatRequest struct {
	Query string `json:"query"`
}

func New(cfg config.ServerConfig, orch *relay.Orchestrator) *Server {
	return &Server{cfg: cfg, orch: orch}
}

// Start binds the HTTP listener and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	logger.InfoCF("server", "HTTP server started", map[string]interface{}{
		"address": addr,
		"origins": s.cfg.AllowedOrigins,
	})

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorCF("server", "HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	return nil
}

// Stop gracefully shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

// Handler returns the configured mux without binding a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", s.withCORS(s.handleChat))
	mux.HandleFunc("/api/chat/ws", s.handleChatWS)
	mux.HandleFunc("/api/health", s.withCORS(s.handleHealth))
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) originAllowed(origin string) bool {
	for _, allowed := range s.cfg.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// withCORS applies the fixed origin allow-list. Credentialed requests mean
// the origin is echoed back, never wildcarded.
func (s *Server) withCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
				h.Set("Access-Control-Allow-Headers", requested)
			}
			h.Set("Vary", "Origin")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}
