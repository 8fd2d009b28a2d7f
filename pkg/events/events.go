// AgentBridge - Streaming web backend for Azure AI agent workflows
// License: MIT
//
// Copyright (c) 2026 AgentBridge contributors

// Package events defines the outward event vocabulary delivered to clients
// and the normalization from raw Responses stream events onto it.
package events

// Outward event names. The vocabulary is closed for consumers: new upstream
// kinds are absorbed by adding a mapping case, never by changing the shape.
const (
	ConversationCreated = "conversation_created"
	ConversationDeleted = "conversation_deleted"
	TextDelta           = "text_delta"
	TextDone            = "text_done"
	ActionStarted       = "action_started"
	ActionCompleted     = "action_completed"
	MessageStarted      = "message_started"
	MessageDone         = "message_done"
	ItemAdded           = "item_added"
	ItemDone            = "item_done"
	ResponseStatus      = "response_status"
	ContentPartAdded    = "content_part_added"
	ContentPartDone     = "content_part_done"
	Error               = "error"
	Unknown             = "unknown"
)

// Event is one outward event: a stable name plus a JSON-serializable payload.
type Event struct {
	Name string
	Data map[string]interface{}
}

// ErrorEvent builds the outward representation of a failure.
func ErrorEvent(message string) Event {
	return Event{Name: Error, Data: map[string]interface{}{"message": message}}
}
