package model

import "time"

const (
	AuthProviderEmail = "email"
	AuthProviderPhone = "phone"
)

// User represents an account in the system. Exactly one of Email or
// PhoneNumber is set, depending on AuthProvider. PasswordHash exists only
// for email accounts.
type User struct {
	ID           string    `json:"id"`
	Email        *string   `json:"email,omitempty"`
	PhoneNumber  *string   `json:"phoneNumber,omitempty"`
	PasswordHash *string   `json:"-"` // Never expose the password hash in JSON responses
	AuthProvider string    `json:"authProvider"`
	DisplayName  *string   `json:"displayName,omitempty"`
	Theme        *string   `json:"theme,omitempty"`
	Layout       *string   `json:"layout,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	LastLogin    time.Time `json:"lastLogin"`
}

// Identity is the verified claim set attached to a request after token
// validation. It is the only thing protected handlers may trust about the
// caller.
type Identity struct {
	UserID       string
	Email        string
	PhoneNumber  string
	AuthProvider string
}

// UpdateProfileRequest is used for updating mutable profile fields
type UpdateProfileRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
}

// UpdateSettingsRequest is used for updating UI preferences
type UpdateSettingsRequest struct {
	Theme  *string `json:"theme,omitempty"`
	Layout *string `json:"layout,omitempty"`
}
