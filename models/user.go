// File: models/user.go
package models

import "time"

// User represents a platform account. PasswordHash is empty for accounts
// created through Google sign-in.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Provider     string    `bson:"provider" json:"provider"`
	MSSV         string    `bson:"mssv,omitempty" json:"mssv,omitempty"`
	Department   string    `bson:"department,omitempty" json:"department,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Identity providers.
const (
	ProviderPassword = "password"
	ProviderGoogle   = "google.com"
)

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
