package events

import "encoding/json"

// RawEvent mirrors one event from the Responses streaming API as loosely as
// the wire does. The upstream vocabulary is externally versioned: any field
// may be absent on any given event, and absence is never an error. Consumers
// apply the documented defaults instead.
type RawEvent struct {
	Type         string        `json:"type"`
	Delta        string        `json:"delta"`
	Text         string        `json:"text"`
	Item         *OutputItem   `json:"item"`
	Part         *ContentPart  `json:"part"`
	ContentIndex int           `json:"content_index"`
	Response     *ResponseInfo `json:"response"`
	Code         string        `json:"code"`
	Message      string        `json:"message"`
}

// OutputItem is the item sub-record on output_item events. ActionID and
// PreviousActionID only appear on Azure workflow_action items and are not
// part of the stock OpenAI schema.
type OutputItem struct {
	Type             string `json:"type"`
	ID               string `json:"id"`
	Role             string `json:"role"`
	Status           string `json:"status"`
	ActionID         string `json:"action_id"`
	PreviousActionID string `json:"previous_action_id"`
}

type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type ResponseInfo struct {
	ID     string       `json:"id"`
	Status string       `json:"status"`
	Usage  *Usage       `json:"usage"`
	Error  *ErrorDetail `json:"error"`
}

type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorDetail) String() string {
	if e == nil {
		return ""
	}
	if e.Code != "" && e.Message != "" {
		return e.Code + ": " + e.Message
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// RawStream is the pull side of one raw upstream event sequence: a finite,
// single-pass iteration in arrival order. Transport failures surface through
// Err after Next returns false.
type RawStream interface {
	Next() bool
	Current() RawEvent
	Err() error
	Close() error
}

// String renders the event for error reporting. Explicit error events carry
// code/message; anything else falls back to its JSON form.
func (e RawEvent) String() string {
	if e.Message != "" {
		if e.Code != "" {
			return e.Code + ": " + e.Message
		}
		return e.Message
	}
	b, err := json.Marshal(e)
	if err != nil {
		return e.Type
	}
	return string(b)
}
