// AgentBridge - Streaming web backend for Azure AI agent workflows
// License: MIT
//
// Copyright (c) 2026 AgentBridge contributors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// AzureConfig identifies the remote Azure AI Foundry project and the fixed
// agent workflow every chat request is served by.
type AzureConfig struct {
	Endpoint        string `env:"AZURE_PROJECT_ENDPOINT"`
	APIKey          string `env:"AZURE_API_KEY"`
	WorkflowName    string `env:"AGENT_WORKFLOW_NAME" envDefault:"SelfCorrecting-Workflow"`
	WorkflowVersion string `env:"AGENT_WORKFLOW_VERSION" envDefault:"10"`
	DebugMode       bool   `env:"AGENT_DEBUG_MODE" envDefault:"true"`
}

type ServerConfig struct {
	Host           string   `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port           int      `env:"SERVER_PORT" envDefault:"8000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000,http://localhost:5173,http://127.0.0.1:5173"`
	// StreamBuffer bounds the number of outward events buffered between the
	// producing worker and the HTTP response; the worker blocks when full.
	StreamBuffer int `env:"STREAM_BUFFER" envDefault:"16"`
}

type Config struct {
	Azure  AzureConfig
	Server ServerConfig
}

// Load reads configuration from the environment. It is called once at
// process start; the result is read-only afterwards.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.Azure.Endpoint == "" {
		return nil, fmt.Errorf("AZURE_PROJECT_ENDPOINT is required")
	}
	if cfg.Server.StreamBuffer < 1 {
		cfg.Server.StreamBuffer = 1
	}
	return cfg, nil
}
