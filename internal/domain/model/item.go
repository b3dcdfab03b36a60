package model

import "time"

// CatererDetails carries the menu and pricing sub-fields of catering offerings
type CatererDetails struct {
	VegMenu    []string `bson:"veg_menu,omitempty" json:"veg_menu,omitempty"`
	NonVegMenu []string `bson:"non_veg_menu,omitempty" json:"non_veg_menu,omitempty"`
	Price      float64  `bson:"price" json:"price"`
}

// Item is a concrete service offering (venue, catering, photograph or
// decoration) owned by a client. Its type classification lives in a separate
// service-type document referenced by TypeID and is never changed by core
// logic once the item exists.
type Item struct {
	ID               string          `bson:"_id" json:"id"`
	TypeID           string          `bson:"type_id" json:"type_id"`
	ClientID         string          `bson:"client_id" json:"client_id"`
	Name             string          `bson:"name" json:"name"`
	Description      string          `bson:"description,omitempty" json:"description,omitempty"`
	Price            float64         `bson:"price" json:"price"`
	Images           []string        `bson:"images,omitempty" json:"images,omitempty"`
	DecorationImages []string        `bson:"decoration_images,omitempty" json:"decoration_images,omitempty"`
	CatererDetails   *CatererDetails `bson:"caterer_details,omitempty" json:"caterer_details,omitempty"`
	Version          int             `bson:"version" json:"-"`
	CreatedAt        time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `bson:"updated_at" json:"updated_at"`
}

// Entity interface implementation
func (i *Item) GetID() string    { return i.ID }
func (i *Item) SetID(id string)  { i.ID = id }
func (i *Item) GetVersion() int  { return i.Version }
func (i *Item) SetVersion(v int) { i.Version = v }
