package event

import "time"

// BookingRequested asks the booking writer to persist one booking for a
// service selection that carried both an item and a client. Published during
// event creation so the caller never waits on the secondary writes.
type BookingRequested struct {
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	ClientID  string    `json:"client_id"`
	ItemID    string    `json:"item_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *BookingRequested) EventType() string     { return "BookingRequested" }
func (e *BookingRequested) AggregateID() string   { return e.EventID }
func (e *BookingRequested) OccurredAt() time.Time { return e.Timestamp }

// BookingConfirmed event
type BookingConfirmed struct {
	BookingID string    `json:"booking_id"`
	EventID   string    `json:"event_id"`
	ClientID  string    `json:"client_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *BookingConfirmed) EventType() string     { return "BookingConfirmed" }
func (e *BookingConfirmed) AggregateID() string   { return e.BookingID }
func (e *BookingConfirmed) OccurredAt() time.Time { return e.Timestamp }

// BookingRejected event
type BookingRejected struct {
	BookingID string    `json:"booking_id"`
	EventID   string    `json:"event_id"`
	ClientID  string    `json:"client_id"`
	ItemID    string    `json:"item_id"`
	ItemType  string    `json:"item_type"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *BookingRejected) EventType() string     { return "BookingRejected" }
func (e *BookingRejected) AggregateID() string   { return e.BookingID }
func (e *BookingRejected) OccurredAt() time.Time { return e.Timestamp }
