package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Password is the plain-text password received on registration or login.
	// It is cleared by the service layer before the user leaves it and is
	// never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile change.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitized returns a copy of u without any credential material.
func (u User) Sanitized() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// Fields exposes the user attributes checked by input validators.
func (u User) Fields() map[string]string {
	return map[string]string{
		"login":    u.Login,
		"name":     u.Name,
		"password": u.Password,
	}
}

// UserUpdate is a partial update of a user profile.
// Only non-nil fields are applied.
type UserUpdate struct {
	// Name is the new display name.
	Name *string `json:"name,omitempty"`

	// Password is the new plain-text password. The service layer converts it
	// into PasswordHash and clears it.
	Password *string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash written to storage.
	PasswordHash *string `json:"-"`
}

// IsEmpty reports whether the update carries no changes.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Password == nil && u.PasswordHash == nil
}

// Fields exposes the non-nil update attributes checked by input validators.
func (u UserUpdate) Fields() map[string]string {
	fields := make(map[string]string, 2)
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Password != nil {
		fields["password"] = *u.Password
	}
	return fields
}
