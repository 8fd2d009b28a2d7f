// AgentBridge - Streaming web backend for Azure AI agent workflows
// License: MIT
//
// Copyright (c) 2026 AgentBridge contributors

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/abpatra/agentbridge/pkg/config"
)

var (
	version   = "dev"
	gitCommit string
	buildTime string
)

func formatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

func printVersion() {
	fmt.Printf("agentbridge %s\n", formatVersion())
	if buildTime != "" {
		fmt.Printf("  Build: %s\n", buildTime)
	}
	fmt.Printf("  Go: %s\n", runtime.Version())
}

func printHelp() {
	fmt.Println(`agentbridge - streaming web backend for Azure AI agent workflows

Usage:
  agentbridge serve              Start the HTTP server
  agentbridge chat [-m message]  Stream a query in the terminal (interactive without -m)
  agentbridge ask -m message     One-shot non-streaming query
  agentbridge version            Print version
  agentbridge help               Show this help

Common flags:
  --debug, -d                    Enable debug logging

Configuration is read from the environment: AZURE_PROJECT_ENDPOINT,
AZURE_API_KEY, AGENT_WORKFLOW_NAME, AGENT_WORKFLOW_VERSION, SERVER_HOST,
SERVER_PORT, ALLOWED_ORIGINS.`)
}

func loadConfig() (*config.Config, error) {
	return config.Load()
}

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		serveCmd()
	case "chat":
		chatCmd()
	case "ask":
		askCmd()
	case "version", "--version", "-v":
		printVersion()
	case "help", "--help", "-h":
		printHelp()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}
