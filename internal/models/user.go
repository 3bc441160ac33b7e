package models

import "time"

// User is an API account allowed to sign in and use /api/v1.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // bcrypt, never serialized
	CreatedAt    time.Time `json:"created_at"`
}

// AccessToken is handed out on sign-in and sent back as a bearer token.
type AccessToken struct {
	Token     string    `json:"access_token"`
	Type      string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}
