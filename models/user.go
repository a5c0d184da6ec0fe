package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents user data in the system. Two creation paths exist: Google
// sign-in (upsert by email) and manual signup. Credential and reset fields are
// never serialized to JSON.
type User struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GoogleID             string             `bson:"googleId,omitempty" json:"google_id,omitempty"`
	Username             string             `bson:"username,omitempty" json:"username,omitempty"`
	Name                 string             `bson:"name,omitempty" json:"name,omitempty"`
	Email                string             `bson:"email" json:"email"`
	Picture              string             `bson:"picture,omitempty" json:"picture,omitempty"`
	Password             string             `bson:"password,omitempty" json:"-"` // bcrypt hash
	Role                 string             `bson:"role,omitempty" json:"role,omitempty"`
	ResetPasswordToken   string             `bson:"resetPasswordToken,omitempty" json:"-"`
	ResetPasswordExpires *time.Time         `bson:"resetPasswordExpires,omitempty" json:"-"`
}

// GoogleAuthInput holds the profile fields sent after a Google sign-in.
type GoogleAuthInput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// UserSignup holds data needed for manual registration. Role is deliberately
// absent: accounts always start as "user", admins are provisioned out of band.
type UserSignup struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserLogin holds data needed for login
type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
