package events

// Raw event types we recognize. The set is open upstream; anything not
// listed here degrades to the Unknown outward event.
const (
	rawTextDone         = "response.output_text.done"
	rawTextDelta        = "response.output_text.delta"
	rawOutputItemAdded  = "response.output_item.added"
	rawOutputItemDone   = "response.output_item.done"
	rawResponseCreated  = "response.created"
	rawResponseProgress = "response.in_progress"
	rawResponseComplete = "response.completed"
	rawResponseFailed   = "response.failed"
	rawContentPartAdded = "response.content_part.added"
	rawContentPartDone  = "response.content_part.done"
	rawError            = "error"
)

// Item types carried on output_item events.
const (
	itemWorkflowAction = "workflow_action"
	itemMessage        = "message"
)

// Normalize maps one raw upstream event to its outward form. A nil return
// means the event is swallowed: currently only output_item events that carry
// no item sub-record at all. Normalize never fails on unrecognized input.
func Normalize(raw RawEvent) *Event {
	switch raw.Type {
	case rawTextDone:
		return &Event{Name: TextDone, Data: map[string]interface{}{
			"text": raw.Text,
		}}

	case rawTextDelta:
		return &Event{Name: TextDelta, Data: map[string]interface{}{
			"delta": raw.Delta,
		}}

	case rawOutputItemAdded:
		return normalizeItem(raw.Item, ActionStarted, MessageStarted, ItemAdded)

	case rawOutputItemDone:
		return normalizeItem(raw.Item, ActionCompleted, MessageDone, ItemDone)

	case rawResponseCreated:
		responseID := "N/A"
		if raw.Response != nil && raw.Response.ID != "" {
			responseID = raw.Response.ID
		}
		return &Event{Name: ResponseStatus, Data: map[string]interface{}{
			"status":      "created",
			"response_id": responseID,
		}}

	case rawResponseProgress:
		return &Event{Name: ResponseStatus, Data: map[string]interface{}{
			"status": "in_progress",
		}}

	case rawResponseComplete:
		usage := map[string]interface{}{}
		if raw.Response != nil && raw.Response.Usage != nil {
			usage["input_tokens"] = raw.Response.Usage.InputTokens
			usage["output_tokens"] = raw.Response.Usage.OutputTokens
		}
		return &Event{Name: ResponseStatus, Data: map[string]interface{}{
			"status": "completed",
			"usage":  usage,
		}}

	case rawResponseFailed:
		errMsg := ""
		if raw.Response != nil && raw.Response.Error != nil {
			errMsg = raw.Response.Error.String()
		} else if raw.Message != "" {
			errMsg = raw.Message
		}
		return &Event{Name: ResponseStatus, Data: map[string]interface{}{
			"status": "failed",
			"error":  errMsg,
		}}

	case rawContentPartAdded:
		return contentPartEvent(ContentPartAdded, raw)

	case rawContentPartDone:
		return contentPartEvent(ContentPartDone, raw)

	case rawError:
		e := ErrorEvent(raw.String())
		return &e

	default:
		return &Event{Name: Unknown, Data: map[string]interface{}{
			"type": raw.Type,
		}}
	}
}

// normalizeItem dispatches an output_item event on its item type. An event
// with no item sub-record at all is a non-event, distinct from an item of
// unrecognized type.
func normalizeItem(item *OutputItem, actionName, messageName, otherName string) *Event {
	if item == nil {
		return nil
	}

	switch item.Type {
	case itemWorkflowAction:
		var previous interface{}
		if item.PreviousActionID != "" {
			previous = item.PreviousActionID
		}
		return &Event{Name: actionName, Data: map[string]interface{}{
			"action_id":          orDefault(item.ActionID, "unknown"),
			"status":             orDefault(item.Status, "unknown"),
			"previous_action_id": previous,
		}}

	case itemMessage:
		return &Event{Name: messageName, Data: map[string]interface{}{
			"role": orDefault(item.Role, "unknown"),
			"id":   orDefault(item.ID, "N/A"),
		}}

	default:
		return &Event{Name: otherName, Data: map[string]interface{}{
			"type": orDefault(item.Type, "unknown"),
		}}
	}
}

func contentPartEvent(name string, raw RawEvent) *Event {
	partType := "unknown"
	if raw.Part != nil && raw.Part.Type != "" {
		partType = raw.Part.Type
	}
	return &Event{Name: name, Data: map[string]interface{}{
		"type":          partType,
		"content_index": raw.ContentIndex,
	}}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
