// AgentBridge - Streaming web backend for Azure AI agent workflows
// License: MIT
//
// Copyright (c) 2026 AgentBridge contributors

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/abpatra/agentbridge/pkg/azure"
	"github.com/abpatra/agentbridge/pkg/events"
	"github.com/abpatra/agentbridge/pkg/logger"
	"github.com/abpatra/agentbridge/pkg/relay"
)

// chatCmd streams queries to the terminal, either one-shot (-m) or as an
// interactive session.
func chatCmd() {
	message := ""

	args := os.Args[2:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--debug", "-d":
			logger.SetLevel(logger.DEBUG)
		case "-m", "--message":
			if i+1 < len(args) {
				message = args[i+1]
				i++
			}
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	client := azure.NewClient(cfg.Azure)
	orch := relay.NewOrchestrator(client, cfg.Server.StreamBuffer)

	if message != "" {
		streamQuery(orch, message)
		return
	}

	fmt.Println("Interactive mode (Ctrl+C to exit)")
	rl, err := readline.New("you> ")
	if err != nil {
		fmt.Printf("Error initializing readline: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error reading input: %v\n", err)
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		streamQuery(orch, line)
	}
}

func streamQuery(orch *relay.Orchestrator, query string) {
	stream := orch.Open(context.Background(), query)
	defer stream.Close()

	for ev := range stream.Events() {
		renderEvent(ev)
	}
	fmt.Println()
}

// renderEvent prints one outward event: deltas inline, everything else on
// its own line.
func renderEvent(ev events.Event) {
	switch ev.Name {
	case events.TextDelta:
		fmt.Print(ev.Data["delta"])
	case events.TextDone:
		fmt.Println()
	case events.ActionStarted:
		fmt.Printf("\n%s\n>> STARTED: %v (status: %v)\n%s\n",
			strings.Repeat("=", 50), ev.Data["action_id"], ev.Data["status"], strings.Repeat("=", 50))
	case events.ActionCompleted:
		fmt.Printf("\n%s\n<< COMPLETED: %v (status: %v)\n%s\n",
			strings.Repeat("=", 50), ev.Data["action_id"], ev.Data["status"], strings.Repeat("=", 50))
	case events.MessageStarted:
		fmt.Printf("\n[message started: role=%v id=%v]\n", ev.Data["role"], ev.Data["id"])
	case events.MessageDone:
		fmt.Printf("\n[message done: role=%v id=%v]\n", ev.Data["role"], ev.Data["id"])
	case events.ResponseStatus:
		fmt.Printf("\n[response: %v]\n", ev.Data["status"])
	case events.ConversationCreated:
		fmt.Printf("[conversation %v created]\n", ev.Data["conversation_id"])
	case events.ConversationDeleted:
		fmt.Printf("\n[conversation %v deleted]\n", ev.Data["conversation_id"])
	case events.Error:
		fmt.Printf("\n[error: %v]\n", ev.Data["message"])
	case events.ContentPartAdded, events.ContentPartDone:
		// Quiet; TextDone already carries the payload that matters.
	default:
		fmt.Printf("\n[%s: %v]\n", ev.Name, ev.Data)
	}
}
