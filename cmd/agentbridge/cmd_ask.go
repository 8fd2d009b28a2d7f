// AgentBridge - Streaming web backend for Azure AI agent workflows
// License: MIT
//
// Copyright (c) 2026 AgentBridge contributors

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abpatra/agentbridge/pkg/azure"
	"github.com/abpatra/agentbridge/pkg/events"
	"github.com/abpatra/agentbridge/pkg/logger"
)

// askCmd runs one non-streaming request and prints the finished response:
// status, usage counters, and the output items.
func askCmd() {
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

	if message == "" {
		fmt.Println("Usage: agentbridge ask -m <message>")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	client := azure.NewClient(cfg.Azure)
	ctx := context.Background()

	conversationID, err := client.CreateConversation(ctx)
	if err != nil {
		fmt.Printf("Error creating conversation: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created conversation (id: %s)\n", conversationID)

	defer func() {
		if err := client.DeleteConversation(context.WithoutCancel(ctx), conversationID); err != nil {
			logger.WarnCF("ask", "Conversation delete failed", map[string]interface{}{
				"conversation_id": conversationID,
				"error":           err.Error(),
			})
			return
		}
		fmt.Println("\nConversation deleted")
	}()

	resp, err := client.Respond(ctx, conversationID, message)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("\nResponse ID: %s\nStatus: %s\n", resp.ID, resp.Status)

	if resp.Usage.TotalTokens > 0 {
		fmt.Printf("\nToken usage:\n  Input: %d\n  Output: %d\n  Total: %d\n",
			resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens)
	}

	fmt.Printf("\nOutput items (%d total):\n", len(resp.Output))
	for i, item := range resp.Output {
		fmt.Printf("\n--- Item %d: type=%s ---\n", i+1, item.Type)
		switch item.Type {
		case "message":
			for _, c := range item.Content {
				if c.Type == "output_text" {
					fmt.Printf("%s\n", c.Text)
				} else {
					fmt.Printf("  content part: type=%s\n", c.Type)
				}
			}
		case "workflow_action":
			// Azure-specific item shape; re-decode from raw JSON.
			var action events.OutputItem
			if err := json.Unmarshal([]byte(item.RawJSON()), &action); err == nil {
				fmt.Printf("  Action ID: %s\n  Status: %s\n", action.ActionID, action.Status)
				if action.PreviousActionID != "" {
					fmt.Printf("  Previous action: %s\n", action.PreviousActionID)
				}
			}
		default:
			fmt.Printf("  %s\n", item.RawJSON())
		}
	}
}
