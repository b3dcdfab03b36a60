package command

import "time"

// ServiceSelection is one optional service pick: an item, optionally bound to
// a concrete provider. Parsed and validated once at the boundary, never
// re-parsed downstream.
type ServiceSelection struct {
	ItemID   string `json:"id"`
	ClientID string `json:"client_id"`
}

// Bookable reports whether the selection carries both the item and a concrete
// provider; only such selections spawn bookings.
func (s *ServiceSelection) Bookable() bool {
	return s != nil && s.ItemID != "" && s.ClientID != ""
}

// ServiceSelections carries the up-to-four slot picks of an event
type ServiceSelections struct {
	Venue      *ServiceSelection `json:"venue,omitempty"`
	Catering   *ServiceSelection `json:"catering,omitempty"`
	Photograph *ServiceSelection `json:"photograph,omitempty"`
	Decoration *ServiceSelection `json:"decoration,omitempty"`
}

// SlotSelection pairs a slot name with its selection for iteration
type SlotSelection struct {
	Slot      string
	Selection *ServiceSelection
}

// Slots returns the four slots in a fixed order, nil selections included
func (s ServiceSelections) Slots() []SlotSelection {
	return []SlotSelection{
		{Slot: "venue", Selection: s.Venue},
		{Slot: "catering", Selection: s.Catering},
		{Slot: "photograph", Selection: s.Photograph},
		{Slot: "decoration", Selection: s.Decoration},
	}
}

// CreateEvent command
type CreateEvent struct {
	UserID      string            `json:"user_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Images      []string          `json:"images"`
	TicketPrice float64           `json:"ticket_price"`
	Dates       []time.Time       `json:"dates"`
	Services    ServiceSelections `json:"services"`
}

// EditEvent command. Replaces mutable fields and re-derives the booking set.
type EditEvent struct {
	EventID     string            `json:"-"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Images      []string          `json:"images"`
	TicketPrice float64           `json:"ticket_price"`
	Dates       []time.Time       `json:"dates"`
	Services    ServiceSelections `json:"services"`
}

// PublishEvent command
type PublishEvent struct {
	EventID string `json:"-"`
}

// CancelEvent command
type CancelEvent struct {
	EventID string `json:"-"`
}

// DeleteEventField command. Administrative escape hatch.
type DeleteEventField struct {
	EventID string `json:"-"`
	Field   string `json:"field"`
}

// ConfirmBooking command
type ConfirmBooking struct {
	BookingID string `json:"-"`
}

// RejectBooking command
type RejectBooking struct {
	BookingID string `json:"-"`
}

// CreateItem command
type CreateItem struct {
	TypeID           string    `json:"type_id"`
	ClientID         string    `json:"client_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Price            float64   `json:"price"`
	Images           []string  `json:"images"`
	DecorationImages []string  `json:"decoration_images"`
	VegMenu          []string  `json:"veg_menu"`
	NonVegMenu       []string  `json:"non_veg_menu"`
	CatererPrice     *float64  `json:"caterer_price"`
}

// DeleteItem command
type DeleteItem struct {
	ItemID string `json:"-"`
}

// EditItem command
type EditItem struct {
	ItemID           string   `json:"-"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	Images           []string `json:"images"`
	DecorationImages []string `json:"decoration_images"`
}

// CreateClient command
type CreateClient struct {
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	Email          string      `json:"email"`
	UserID         string      `json:"user_id"`
	RoleID         string      `json:"role_id"`
	WorkExperience int         `json:"work_experience"`
	Location       string      `json:"location"`
	Contact        string      `json:"contact"`
	QID            string      `json:"q_id"`
	CRNo           string      `json:"cr_no"`
	BestWork       []string    `json:"best_work"`
	Description    string      `json:"description"`
	Availability   []time.Time `json:"availability"`
}

// UpdateClient command
type UpdateClient struct {
	ClientID       string      `json:"-"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	WorkExperience int         `json:"work_experience"`
	Location       string      `json:"location"`
	Contact        string      `json:"contact"`
	BestWork       []string    `json:"best_work"`
	Description    string      `json:"description"`
	Availability   []time.Time `json:"availability"`
}

// DeleteClient command
type DeleteClient struct {
	ClientID string `json:"-"`
}

// UpdateClientPhotos command
type UpdateClientPhotos struct {
	ClientID string   `json:"-"`
	BestWork []string `json:"best_work"`
}

// RegisterUser command
type RegisterUser struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
}

// LoginUser command
type LoginUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
