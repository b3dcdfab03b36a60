package model

import "time"

// EventStatus is the lifecycle state of an event, derived from its bookings
type EventStatus string

const (
	EventStatusBooked    EventStatus = "Booked"
	EventStatusConfirmed EventStatus = "Confirmed"
	EventStatusRejected  EventStatus = "Rejected"
	EventStatusCanceled  EventStatus = "Canceled"
)

// Rejection records a provider declining one of the event's service requests
type Rejection struct {
	ItemID   string `bson:"item_id" json:"item_id"`
	ItemType string `bson:"item_type" json:"item_type"`
}

// Event is a hosted occasion requesting up to four categorized services.
// Status is a cached projection of the event's booking states; it is
// recomputed after every booking mutation, never written independently.
type Event struct {
	ID           string      `bson:"_id" json:"id"`
	UserID       string      `bson:"user_id" json:"user_id"`
	Name         string      `bson:"name" json:"name"`
	Description  string      `bson:"description,omitempty" json:"description,omitempty"`
	Images       []string    `bson:"images,omitempty" json:"images,omitempty"`
	TicketPrice  float64     `bson:"ticket_price" json:"ticket_price"`
	VenueID      string      `bson:"venue_id,omitempty" json:"venue_id,omitempty"`
	CateringID   string      `bson:"catering_id,omitempty" json:"catering_id,omitempty"`
	PhotographID string      `bson:"photograph_id,omitempty" json:"photograph_id,omitempty"`
	DecorationID string      `bson:"decoration_id,omitempty" json:"decoration_id,omitempty"`
	Status       EventStatus `bson:"status" json:"status"`
	RejectedBy   []Rejection `bson:"rejected_by,omitempty" json:"rejected_by,omitempty"`
	Dates        []time.Time `bson:"dates,omitempty" json:"dates,omitempty"`
	IsPublished  bool        `bson:"is_published" json:"is_published"`
	Version      int         `bson:"version" json:"-"`
	CreatedAt    time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `bson:"updated_at" json:"updated_at"`
}

// Entity interface implementation
func (e *Event) GetID() string    { return e.ID }
func (e *Event) SetID(id string)  { e.ID = id }
func (e *Event) GetVersion() int  { return e.Version }
func (e *Event) SetVersion(v int) { e.Version = v }

// AddRejection appends a rejection record with set semantics: a record equal
// by value to an existing one is not re-added. Reports whether it was added.
func (e *Event) AddRejection(itemID, itemType string) bool {
	for _, r := range e.RejectedBy {
		if r.ItemID == itemID && r.ItemType == itemType {
			return false
		}
	}
	e.RejectedBy = append(e.RejectedBy, Rejection{ItemID: itemID, ItemType: itemType})
	return true
}

// LatestDate returns the maximum of the dates list. The stored list is
// chronologically unordered, so the last element means nothing.
func LatestDate(dates []time.Time) (time.Time, bool) {
	if len(dates) == 0 {
		return time.Time{}, false
	}
	latest := dates[0]
	for _, d := range dates[1:] {
		if d.After(latest) {
			latest = d
		}
	}
	return latest, true
}

// IsUpcoming reports whether the event's latest scheduled date is after now.
// An event with no dates is never upcoming.
func (e *Event) IsUpcoming(now time.Time) bool {
	latest, ok := LatestDate(e.Dates)
	return ok && latest.After(now)
}

// DeriveEventStatus computes the event status projected from its current
// booking set. A single rejection wins over everything else; confirmation
// requires every booking confirmed and at least one booking present.
func DeriveEventStatus(bookings []*Booking) EventStatus {
	if len(bookings) == 0 {
		return EventStatusBooked
	}

	allConfirmed := true
	allCanceled := true
	for _, b := range bookings {
		switch b.Status {
		case BookingStatusRejected:
			return EventStatusRejected
		case BookingStatusConfirmed:
			allCanceled = false
		case BookingStatusCanceled:
			allConfirmed = false
		default:
			allConfirmed = false
			allCanceled = false
		}
	}

	if allConfirmed {
		return EventStatusConfirmed
	}
	if allCanceled {
		return EventStatusCanceled
	}
	return EventStatusBooked
}

// AllConfirmed reports whether at least one booking exists and every one of
// them is confirmed. Any pending booking blocks auto-confirmation.
func AllConfirmed(bookings []*Booking) bool {
	return DeriveEventStatus(bookings) == EventStatusConfirmed
}

// EventView is the aggregation projection: a fixed field set with the four
// service references joined in as full item documents.
type EventView struct {
	ID          string      `bson:"_id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	Images      []string    `bson:"images,omitempty" json:"images,omitempty"`
	TicketPrice float64     `bson:"ticket_price" json:"ticket_price"`
	Venue       *Item       `bson:"venue,omitempty" json:"venue,omitempty"`
	Catering    *Item       `bson:"catering,omitempty" json:"catering,omitempty"`
	Decoration  *Item       `bson:"decoration,omitempty" json:"decoration,omitempty"`
	Photograph  *Item       `bson:"photograph,omitempty" json:"photograph,omitempty"`
	Status      EventStatus `bson:"status" json:"status"`
	RejectedBy  []Rejection `bson:"rejected_by,omitempty" json:"rejected_by,omitempty"`
	Dates       []time.Time `bson:"dates,omitempty" json:"dates,omitempty"`
	IsPublished bool        `bson:"is_published" json:"is_published"`
	LastDate    *time.Time  `bson:"last_date,omitempty" json:"last_date,omitempty"`
}

// Upcoming reports whether the view's latest scheduled date is after now.
func (v *EventView) Upcoming(now time.Time) bool {
	return v.LastDate != nil && v.LastDate.After(now)
}

// PartitionEvents splits views into upcoming and past buckets by latest
// scheduled date. The partition is computed at query time, never stored.
func PartitionEvents(views []*EventView, now time.Time) (upcoming, past []*EventView) {
	for _, v := range views {
		if v.Upcoming(now) {
			upcoming = append(upcoming, v)
		} else {
			past = append(past, v)
		}
	}
	return upcoming, past
}
