package model

// Service type names
const (
	TypeVenue      = "venue"
	TypeCatering   = "catering"
	TypePhotograph = "photograph"
	TypeDecoration = "decoration"
)

// ServiceType classifies items and client roles into the four service
// categories. Items reference it by id; rejection records carry its name.
type ServiceType struct {
	ID      string `bson:"_id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Version int    `bson:"version" json:"-"`
}

// Entity interface implementation
func (t *ServiceType) GetID() string    { return t.ID }
func (t *ServiceType) SetID(id string)  { t.ID = id }
func (t *ServiceType) GetVersion() int  { return t.Version }
func (t *ServiceType) SetVersion(v int) { t.Version = v }
