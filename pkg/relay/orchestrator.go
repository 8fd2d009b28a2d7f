// AgentBridge - Streaming web backend for Azure AI agent workflows
// License: MIT
//
// Copyright (c) 2026 AgentBridge contributors

// Package relay drives one remote conversation per request and bridges its
// blocking event production onto a channel the transport can consume without
// stalling its own scheduling.
package relay

import (
	"context"

	"github.com/abpatra/agentbridge/pkg/events"
	"github.com/abpatra/agentbridge/pkg/logger"
)

// ConversationClient is the remote capability the orchestrator runs against:
// create a conversation, stream a response into it, delete it.
type ConversationClient interface {
	CreateConversation(ctx context.Context) (string, error)
	StreamResponse(ctx context.Context, conversationID, query string) events.RawStream
	DeleteConversation(ctx context.Context, conversationID string) error
}

type Orchestrator struct {
	client ConversationClient
	buffer int
}

func NewOrchestrator(client ConversationClient, buffer int) *Orchestrator {
	if buffer < 1 {
		buffer = 1
	}
	return &Orchestrator{client: client, buffer: buffer}
}

// Run executes one conversation end to end: create, stream normalized
// events through emit, delete. emit returns false once the consumer is gone;
// production stops but cleanup still runs. If creation fails no deletion is
// attempted. Deletion happens exactly once on every other exit path,
// including consumer abandonment, and its failure is never emitted.
func (o *Orchestrator) Run(ctx context.Context, query string, emit func(events.Event) bool) {
	conversationID, err := o.client.CreateConversation(ctx)
	if err != nil {
		logger.ErrorCF("relay", "Conversation create failed", map[string]interface{}{
			"error": err.Error(),
		})
		emit(events.ErrorEvent(err.Error()))
		return
	}
	emit(events.Event{Name: events.ConversationCreated, Data: map[string]interface{}{
		"conversation_id": conversationID,
	}})

	defer func() {
		// Fire-and-forget cleanup. Runs even when the consumer disconnected,
		// so the delete call must not inherit the request's cancellation.
		// A failed delete leaks the remote conversation; it never reaches
		// the client and never fails the request.
		if err := o.client.DeleteConversation(context.WithoutCancel(ctx), conversationID); err != nil {
			logger.WarnCF("relay", "Conversation delete failed", map[string]interface{}{
				"conversation_id": conversationID,
				"error":           err.Error(),
			})
			return
		}
		emit(events.Event{Name: events.ConversationDeleted, Data: map[string]interface{}{
			"conversation_id": conversationID,
		}})
	}()

	stream := o.client.StreamResponse(ctx, conversationID, query)
	defer stream.Close()

	for stream.Next() {
		outward := events.Normalize(stream.Current())
		if outward == nil {
			continue
		}
		if !emit(*outward) {
			logger.DebugCF("relay", "Consumer gone, stopping stream", map[string]interface{}{
				"conversation_id": conversationID,
			})
			return
		}
	}

	if err := stream.Err(); err != nil {
		logger.ErrorCF("relay", "Response stream failed", map[string]interface{}{
			"conversation_id": conversationID,
			"error":           err.Error(),
		})
		emit(events.ErrorEvent(err.Error()))
	}
}
