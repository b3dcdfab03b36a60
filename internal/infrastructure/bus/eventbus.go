package bus

import (
	"context"

	"planora/internal/domain/event"
)

// EventHandler processes a single domain event
type EventHandler interface {
	Handle(ctx context.Context, evt event.DomainEvent) error
}

// EventHandlerFunc adapts a function to the EventHandler interface
type EventHandlerFunc func(ctx context.Context, evt event.DomainEvent) error

func (f EventHandlerFunc) Handle(ctx context.Context, evt event.DomainEvent) error {
	return f(ctx, evt)
}

// EventBus routes domain events to their subscribers
type EventBus interface {
	Subscribe(eventType string, handler EventHandler) error
	Publish(ctx context.Context, evt event.DomainEvent) error
	PublishBatch(ctx context.Context, events []event.DomainEvent) error
	Start(ctx context.Context) error
	Stop() error
}
