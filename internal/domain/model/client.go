package model

import (
	"fmt"
	"time"
)

// Client is a service provider account offering items.
type Client struct {
	ID             string          `bson:"_id" json:"id"`
	FirstName      string          `bson:"first_name" json:"first_name"`
	LastName       string          `bson:"last_name" json:"last_name"`
	Email          string          `bson:"email" json:"email"`
	UserID         string          `bson:"user_id" json:"user_id"`
	RoleID         string          `bson:"role_id" json:"role_id"`
	WorkExperience int             `bson:"work_experience" json:"work_experience"`
	Location       string          `bson:"location,omitempty" json:"location,omitempty"`
	Contact        string          `bson:"contact" json:"contact"`
	QID            string          `bson:"q_id" json:"q_id"`
	CRNo           string          `bson:"cr_no" json:"cr_no"`
	BestWork       []string        `bson:"best_work,omitempty" json:"best_work,omitempty"`
	Description    string          `bson:"description" json:"description"`
	Availability   []time.Time     `bson:"availability,omitempty" json:"availability,omitempty"`
	CatererDetails *CatererDetails `bson:"caterer_details,omitempty" json:"caterer_details,omitempty"`
	Version        int             `bson:"version" json:"-"`
	CreatedAt      time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `bson:"updated_at" json:"updated_at"`
}

// Entity interface implementation
func (c *Client) GetID() string    { return c.ID }
func (c *Client) SetID(id string)  { c.ID = id }
func (c *Client) GetVersion() int  { return c.Version }
func (c *Client) SetVersion(v int) { c.Version = v }

// NormalizeDate truncates a timestamp to UTC midnight. Availability matching
// is exact calendar-day equality, so the time-of-day component must never
// influence comparisons.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeAvailability rewrites every availability date to UTC midnight.
// Called on every write path that touches availability.
func (c *Client) NormalizeAvailability() {
	for i, d := range c.Availability {
		c.Availability[i] = NormalizeDate(d)
	}
}

// DayRange expands [start, end] into one normalized date per calendar day.
func DayRange(start, end time.Time) ([]time.Time, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("both start and end dates are required")
	}
	from := NormalizeDate(start)
	to := NormalizeDate(end)
	if from.After(to) {
		return nil, fmt.Errorf("start date %s is after end date %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days, nil
}
