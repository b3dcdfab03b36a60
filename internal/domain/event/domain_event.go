package event

import "time"

// DomainEvent is implemented by everything published on the event bus
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}
