package model

import "time"

// User roles
const (
	RoleUser   = "user"
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// User is a platform account. Creating a client profile promotes the owning
// user's role to "client".
type User struct {
	ID           string    `bson:"_id" json:"id"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	PhoneNumber  string    `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	Version      int       `bson:"version" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Entity interface implementation
func (u *User) GetID() string    { return u.ID }
func (u *User) SetID(id string)  { u.ID = id }
func (u *User) GetVersion() int  { return u.Version }
func (u *User) SetVersion(v int) { u.Version = v }
