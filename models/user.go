package models

import "time"

// User represents an account record used for authentication and note
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on creation.
	UserID int64 `json:"id"`

	// FullName is the display name of the user. Non-empty.
	FullName string `json:"fullName"`

	// Email is the unique login key of the account.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized into responses.
	PasswordHash string `json:"-"`

	// CreatedOn is the timestamp when the account was created.
	// Immutable after creation.
	CreatedOn time.Time `json:"createdOn"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
