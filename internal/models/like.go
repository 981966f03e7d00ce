package models

import "time"

// Like represents a user's like on a post.
// The combination of UserID and PostID must be unique; the store enforces
// this with a check before insert rather than a storage constraint.
type Like struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	PostID    uint      `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
