// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account.
// Password holds the scrypt credential hash and is never serialized; keeping
// it out of JSON at the type level means no response path can leak it,
// whether the user appears top-level or nested as a post/comment author.
type User struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	Password     string    `json:"-"`
	Name         string    `json:"name"`
	Bio          string    `json:"bio,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	IsBanned     bool      `json:"is_banned"`
	CreatedAt    time.Time `json:"created_at"`
}
