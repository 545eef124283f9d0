package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	Student Role = "student"
	Teacher Role = "teacher"
	Parent  Role = "parent"
	Admin   Role = "admin"
)

// User is an identity record in the users collection. Contact is the unique
// login key (email or phone); Phone is an optional secondary key checked when
// the contact lookup finds nothing. Payments holds paid month keys ("2024-09");
// membership matters, order does not.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Contact   string             `bson:"contact" json:"contact"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Role      Role               `bson:"role" json:"role"`
	Payments  []string           `bson:"payments" json:"payments"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`

	// Extra keeps registration fields we do not model explicitly
	// (grade, parent contact, etc.) so they round-trip untouched.
	Extra map[string]any `bson:",inline" json:"extra,omitempty"`
}
