package event

import "time"

// EventCreated event
type EventCreated struct {
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *EventCreated) EventType() string     { return "EventCreated" }
func (e *EventCreated) AggregateID() string   { return e.EventID }
func (e *EventCreated) OccurredAt() time.Time { return e.Timestamp }

// EventEdited event. An edit invalidates and replaces the full booking set.
type EventEdited struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *EventEdited) EventType() string     { return "EventEdited" }
func (e *EventEdited) AggregateID() string   { return e.EventID }
func (e *EventEdited) OccurredAt() time.Time { return e.Timestamp }

// EventPublished event
type EventPublished struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *EventPublished) EventType() string     { return "EventPublished" }
func (e *EventPublished) AggregateID() string   { return e.EventID }
func (e *EventPublished) OccurredAt() time.Time { return e.Timestamp }

// EventCanceled event
type EventCanceled struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *EventCanceled) EventType() string     { return "EventCanceled" }
func (e *EventCanceled) AggregateID() string   { return e.EventID }
func (e *EventCanceled) OccurredAt() time.Time { return e.Timestamp }
