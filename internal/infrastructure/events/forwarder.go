package events

import (
	"context"

	"github.com/alexisbeaulieu97/formfield/internal/formfield"
	"github.com/alexisbeaulieu97/formfield/internal/ports"
)

// Event is a generic domain event with a map payload.
type Event struct {
	Type   string
	Fields map[string]interface{}
}

// NewEvent creates an Event of the given type.
func NewEvent(eventType string, fields map[string]interface{}) Event {
	return Event{Type: eventType, Fields: fields}
}

func (e Event) EventType() string { return e.Type }

func (e Event) Payload() interface{} { return e.Fields }

// FieldChanged is published whenever a form field recomputes a derived output.
type FieldChanged struct {
	FieldID string
	Change  formfield.Change
}

func (e FieldChanged) EventType() string { return ports.EventFieldChanged }

// Payload flattens the snapshot into loggable values.
func (e FieldChanged) Payload() interface{} {
	snap := e.Change.Snapshot
	payload := map[string]interface{}{
		"field_id":       e.FieldID,
		"field":          e.Change.Field.String(),
		"feedback_state": snap.FeedbackState.String(),
		"required":       snap.IsRequired,
	}
	switch e.Change.Field {
	case formfield.FieldTitle:
		payload["title"] = snap.Title.String()
	case formfield.FieldAccessibilityLabel:
		payload["accessibility_label"] = deref(snap.AccessibilityLabel)
	case formfield.FieldHelper:
		payload["helper"] = deref(snap.Helper)
	case formfield.FieldSecondaryHelper:
		payload["secondary_helper"] = deref(snap.SecondaryHelper)
	case formfield.FieldSpacing:
		payload["spacing"] = snap.Spacing
	}
	return payload
}

// Forward republishes every change of state on the publisher until the
// returned subscription is cancelled.
func Forward(ctx context.Context, fieldID string, state *formfield.State, publisher ports.EventPublisher) ports.Subscription {
	if state == nil || publisher == nil {
		return noopSubscription{}
	}

	fields := formfield.AllFields()
	subs := make(multiSubscription, 0, len(fields))
	for _, field := range fields {
		subs = append(subs, state.Subscribe(field, func(change formfield.Change) {
			_ = publisher.Publish(ctx, FieldChanged{FieldID: fieldID, Change: change})
		}))
	}
	return subs
}

type multiSubscription []ports.Subscription

func (m multiSubscription) Unsubscribe() {
	for _, sub := range m {
		sub.Unsubscribe()
	}
}

func deref(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
