package relay

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abpatra/agentbridge/pkg/events"
)

type fakeStream struct {
	raw     []events.RawEvent
	idx     int
	current events.RawEvent
	err     error
	closed  bool
}

func (s *fakeStream) Next() bool {
	if s.idx >= len(s.raw) {
		return false
	}
	s.current = s.raw[s.idx]
	s.idx++
	return true
}

func (s *fakeStream) Current() events.RawEvent { return s.current }
func (s *fakeStream) Err() error               { return s.err }
func (s *fakeStream) Close() error             { s.closed = true; return nil }

type fakeClient struct {
	conversationID string
	createErr      error
	deleteErr      error
	stream         *fakeStream

	mu          sync.Mutex
	createCalls int
	deleteCalls int
	deletedID   string
	queries     []string
}

func (c *fakeClient) CreateConversation(ctx context.Context) (string, error) {
	c.createCalls++
	if c.createErr != nil {
		return "", c.createErr
	}
	return c.conversationID, nil
}

func (c *fakeClient) StreamResponse(ctx context.Context, conversationID, query string) events.RawStream {
	c.queries = append(c.queries, query)
	return c.stream
}

func (c *fakeClient) DeleteConversation(ctx context.Context, conversationID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleteCalls++
	c.deletedID = conversationID
	return c.deleteErr
}

func (c *fakeClient) deleteCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleteCalls
}

func collectRun(t *testing.T, client ConversationClient, query string) []events.Event {
	t.Helper()
	var got []events.Event
	NewOrchestrator(client, 4).Run(context.Background(), query, func(ev events.Event) bool {
		got = append(got, ev)
		return true
	})
	return got
}

func eventNames(evs []events.Event) []string {
	names := make([]string, len(evs))
	for i, ev := range evs {
		names[i] = ev.Name
	}
	return names
}

func TestRunHappyPath(t *testing.T) {
	client := &fakeClient{
		conversationID: "conv_1",
		stream: &fakeStream{raw: []events.RawEvent{
			{Type: "response.created", Response: &events.ResponseInfo{ID: "resp_1"}},
			{Type: "response.output_text.delta", Delta: "pong"},
			{Type: "response.output_text.done", Text: "pong"},
			{Type: "response.completed", Response: &events.ResponseInfo{
				Usage: &events.Usage{InputTokens: 1, OutputTokens: 1},
			}},
		}},
	}

	got := collectRun(t, client, "ping")

	assert.Equal(t, []string{
		events.ConversationCreated,
		events.ResponseStatus,
		events.TextDelta,
		events.TextDone,
		events.ResponseStatus,
		events.ConversationDeleted,
	}, eventNames(got))

	assert.Equal(t, "conv_1", got[0].Data["conversation_id"])
	assert.Equal(t, "conv_1", got[len(got)-1].Data["conversation_id"])
	assert.Equal(t, []string{"ping"}, client.queries)
	assert.Equal(t, 1, client.deleteCalls)
	assert.Equal(t, "conv_1", client.deletedID)
	assert.True(t, client.stream.closed)
}

func TestRunCreateFailureSkipsDeletion(t *testing.T) {
	client := &fakeClient{createErr: errors.New("no quota")}

	got := collectRun(t, client, "ping")

	require.Len(t, got, 1)
	assert.Equal(t, events.Error, got[0].Name)
	assert.Contains(t, got[0].Data["message"], "no quota")
	assert.Zero(t, client.deleteCalls)
}

func TestRunStreamFailureStillDeletes(t *testing.T) {
	client := &fakeClient{
		conversationID: "conv_2",
		stream: &fakeStream{
			raw: []events.RawEvent{
				{Type: "response.created", Response: &events.ResponseInfo{ID: "resp_2"}},
				{Type: "response.output_text.delta", Delta: "par"},
			},
			err: errors.New("connection reset"),
		},
	}

	got := collectRun(t, client, "ping")

	assert.Equal(t, []string{
		events.ConversationCreated,
		events.ResponseStatus,
		events.TextDelta,
		events.Error,
		events.ConversationDeleted,
	}, eventNames(got))
	assert.Contains(t, got[3].Data["message"], "connection reset")
	assert.Equal(t, 1, client.deleteCalls)
}

func TestRunDeleteFailureIsSwallowed(t *testing.T) {
	client := &fakeClient{
		conversationID: "conv_3",
		deleteErr:      errors.New("gone already"),
		stream: &fakeStream{raw: []events.RawEvent{
			{Type: "response.output_text.done", Text: "hi"},
		}},
	}

	got := collectRun(t, client, "ping")

	// No error event and no conversation_deleted: the failure stays internal.
	assert.Equal(t, []string{
		events.ConversationCreated,
		events.TextDone,
	}, eventNames(got))
	assert.Equal(t, 1, client.deleteCalls)
}

func TestRunSwallowedEventsAreNotEmitted(t *testing.T) {
	client := &fakeClient{
		conversationID: "conv_4",
		stream: &fakeStream{raw: []events.RawEvent{
			{Type: "response.output_item.added"}, // no item: swallowed
			{Type: "response.output_text.done", Text: "hi"},
		}},
	}

	got := collectRun(t, client, "ping")

	assert.Equal(t, []string{
		events.ConversationCreated,
		events.TextDone,
		events.ConversationDeleted,
	}, eventNames(got))
}

func TestRunWorkflowActionScenario(t *testing.T) {
	client := &fakeClient{
		conversationID: "conv_5",
		stream: &fakeStream{raw: []events.RawEvent{
			{Type: "response.output_item.added", Item: &events.OutputItem{
				Type: "workflow_action", ActionID: "a1", Status: "running",
			}},
			{Type: "response.output_item.done", Item: &events.OutputItem{
				Type: "workflow_action", ActionID: "a1", Status: "complete",
			}},
		}},
	}

	got := collectRun(t, client, "ping")

	require.Len(t, got, 4)
	assert.Equal(t, events.ActionStarted, got[1].Name)
	assert.Equal(t, "a1", got[1].Data["action_id"])
	assert.Equal(t, "running", got[1].Data["status"])
	assert.Nil(t, got[1].Data["previous_action_id"])
	assert.Equal(t, events.ActionCompleted, got[2].Name)
	assert.Equal(t, "complete", got[2].Data["status"])
}
