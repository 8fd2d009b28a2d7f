// AgentBridge - Streaming web backend for Azure AI agent workflows
// License: MIT
//
// Copyright (c) 2026 AgentBridge contributors

// Package azure wraps the OpenAI-compatible Conversations and Responses
// APIs exposed by an Azure AI Foundry project endpoint. It owns conversation
// lifecycle and the raw event stream; it contains no normalization logic.
package azure

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/conversations"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"

	"github.com/abpatra/agentbridge/pkg/config"
	"github.com/abpatra/agentbridge/pkg/events"
)

const debugMetadataKey = "x-ms-debug-mode-enabled"

type Client struct {
	oai             *openai.Client
	workflowName    string
	workflowVersion string
	debugMode       bool
}

func NewClient(cfg config.AzureConfig) *Client {
	client := openai.NewClient(
		option.WithBaseURL(cfg.Endpoint),
		option.WithAPIKey(cfg.APIKey),
	)
	return &Client{
		oai:             &client,
		workflowName:    cfg.WorkflowName,
		workflowVersion: cfg.WorkflowVersion,
		debugMode:       cfg.DebugMode,
	}
}

// CreateConversation creates a fresh remote conversation and returns its id.
func (c *Client) CreateConversation(ctx context.Context) (string, error) {
	conv, err := c.oai.Conversations.New(ctx, conversations.ConversationNewParams{})
	if err != nil {
		return "", fmt.Errorf("creating conversation: %w", err)
	}
	return conv.ID, nil
}

// DeleteConversation removes a remote conversation.
func (c *Client) DeleteConversation(ctx context.Context, conversationID string) error {
	_, err := c.oai.Conversations.Delete(ctx, conversationID)
	if err != nil {
		return fmt.Errorf("deleting conversation %s: %w", conversationID, err)
	}
	return nil
}

// StreamResponse opens the raw event stream for one query against the fixed
// agent workflow. Transport errors surface through the stream's Err method.
func (c *Client) StreamResponse(ctx context.Context, conversationID, query string) events.RawStream {
	stream := c.oai.Responses.NewStreaming(ctx,
		c.responseParams(conversationID, query),
		c.agentReferenceOption())
	return &responseStream{stream: stream}
}

// Respond runs one non-streaming request against the fixed agent workflow.
func (c *Client) Respond(ctx context.Context, conversationID, query string) (*responses.Response, error) {
	resp, err := c.oai.Responses.New(ctx,
		c.responseParams(conversationID, query),
		c.agentReferenceOption())
	if err != nil {
		return nil, fmt.Errorf("agent response: %w", err)
	}
	return resp, nil
}

func (c *Client) responseParams(conversationID, query string) responses.ResponseNewParams {
	params := responses.ResponseNewParams{
		Conversation: responses.ResponseNewParamsConversationUnion{
			OfString: openai.Opt(conversationID),
		},
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.Opt(query),
		},
	}
	if c.debugMode {
		params.Metadata = shared.Metadata{debugMetadataKey: "1"}
	}
	return params
}

// agentReferenceOption injects the agent-reference extra body the backend
// uses to route the request to the named workflow.
func (c *Client) agentReferenceOption() option.RequestOption {
	return option.WithJSONSet("agent", map[string]string{
		"name":    c.workflowName,
		"version": c.workflowVersion,
		"type":    "agent_reference",
	})
}
