package command

import "sync"

// EventLocks serializes status recomputation per event id. Concurrent
// confirm/reject/cancel/edit on bookings of the same event would otherwise
// race on the "all confirmed" check and lose updates.
type EventLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewEventLocks creates a new keyed lock set
func NewEventLocks() *EventLocks {
	return &EventLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for the event id, creating it on first use.
// Locks are never evicted; the id space is bounded by live events.
func (l *EventLocks) Lock(eventID string) {
	l.mutexFor(eventID).Lock()
}

// Unlock releases the mutex for the event id
func (l *EventLocks) Unlock(eventID string) {
	l.mutexFor(eventID).Unlock()
}

func (l *EventLocks) mutexFor(eventID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[eventID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[eventID] = m
	}
	return m
}
