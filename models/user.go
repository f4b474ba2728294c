package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the stored profile. UserID matches the subject claim of the
// access token; Password holds the bcrypt hash and never serializes to
// JSON.
type User struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    string        `json:"user_id" bson:"user_id"`
	Name      string        `json:"name" bson:"name"`
	Email     string        `json:"email" bson:"email"`
	Phone     string        `json:"phone" bson:"phone"`
	Country   string        `json:"country" bson:"country"`
	State     string        `json:"state" bson:"state"`
	DOB       string        `json:"dob" bson:"dob"`
	Password  string        `json:"-" bson:"password"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// UserUpdate carries the mutable profile fields for a profile update.
// Empty fields are left untouched.
type UserUpdate struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	State    string `json:"state"`
	DOB      string `json:"dob"`
	Password string `json:"password"`
}
