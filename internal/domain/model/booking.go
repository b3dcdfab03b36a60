package model

import "time"

// BookingStatus is the provider-side confirmation state of one service request
type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "Booked"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusRejected  BookingStatus = "Rejected"
	BookingStatusCanceled  BookingStatus = "Canceled"
)

// Booking is the join record binding one requested service on one event to
// the client who owns that service's item.
type Booking struct {
	ID        string        `bson:"_id" json:"id"`
	UserID    string        `bson:"user_id" json:"user_id"`
	ClientID  string        `bson:"client_id" json:"client_id"`
	ItemID    string        `bson:"item_id" json:"item_id"`
	EventID   string        `bson:"event_id" json:"event_id"`
	Status    BookingStatus `bson:"status" json:"status"`
	Version   int           `bson:"version" json:"-"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

// Entity interface implementation
func (b *Booking) GetID() string    { return b.ID }
func (b *Booking) SetID(id string)  { b.ID = id }
func (b *Booking) GetVersion() int  { return b.Version }
func (b *Booking) SetVersion(v int) { b.Version = v }

// BookingView is a booking with its event joined in, the shape a provider's
// dashboard works with.
type BookingView struct {
	Booking `bson:",inline"`
	Event   *Event `bson:"event,omitempty" json:"event,omitempty"`
}
