package azure

import (
	"encoding/json"

	"github.com/openai/openai-go/v3/packages/ssestream"
	"github.com/openai/openai-go/v3/responses"

	"github.com/abpatra/agentbridge/pkg/events"
)

// responseStream adapts the SDK's typed event stream to the loosely-typed
// events.RawEvent the normalizer consumes. Each event is re-decoded from its
// raw JSON so fields outside the stock OpenAI schema (workflow_action item
// attributes) survive the trip.
type responseStream struct {
	stream  *ssestream.Stream[responses.ResponseStreamEventUnion]
	current events.RawEvent
}

func (s *responseStream) Next() bool {
	if !s.stream.Next() {
		return false
	}
	evt := s.stream.Current()

	var raw events.RawEvent
	if err := json.Unmarshal([]byte(evt.RawJSON()), &raw); err != nil {
		// Keep the discriminator so the normalizer can still classify it.
		raw = events.RawEvent{Type: evt.Type}
	}
	if raw.Type == "" {
		raw.Type = evt.Type
	}
	s.current = raw
	return true
}

func (s *responseStream) Current() events.RawEvent {
	return s.current
}

func (s *responseStream) Err() error {
	return s.stream.Err()
}

func (s *responseStream) Close() error {
	return s.stream.Close()
}
