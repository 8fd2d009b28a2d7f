// AgentBridge - Streaming web backend for Azure AI agent workflows
// License: MIT
//
// Copyright (c) 2026 AgentBridge contributors

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abpatra/agentbridge/pkg/azure"
	"github.com/abpatra/agentbridge/pkg/logger"
	"github.com/abpatra/agentbridge/pkg/relay"
	"github.com/abpatra/agentbridge/pkg/server"
)

func serveCmd() {
	for _, arg := range os.Args[2:] {
		switch arg {
		case "--debug", "-d":
			logger.SetLevel(logger.DEBUG)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	client := azure.NewClient(cfg.Azure)
	orch := relay.NewOrchestrator(client, cfg.Server.StreamBuffer)
	srv := server.New(cfg.Server, orch)

	ctx := context.Background()
	if err := srv.Start(ctx); err != nil {
		fmt.Printf("Error starting server: %v\n", err)
		os.Exit(1)
	}

	logger.InfoCF("main", "AgentBridge running", map[string]interface{}{
		"workflow": cfg.Azure.WorkflowName,
		"version":  cfg.Azure.WorkflowVersion,
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.InfoC("main", "Shutting down...")
	if err := srv.Stop(ctx); err != nil {
		logger.WarnCF("main", "Shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
