package models

import "time"

// Post is a short text update owned by a user.
type Post struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentWithAuthor pairs a comment with its author's user record.
type CommentWithAuthor struct {
	Comment
	Author User `json:"author"`
}

// PostWithAuthor is a feed entry: a post enriched with its author, aggregate
// like data for the requesting viewer, and its comments.
type PostWithAuthor struct {
	Post
	Author   User                `json:"author"`
	Likes    int                 `json:"likes"`
	Liked    bool                `json:"liked"`
	Comments []CommentWithAuthor `json:"comments"`
}

// PostWithCounts is the admin listing shape: a post with its author and
// engagement totals, without viewer-specific data.
type PostWithCounts struct {
	Post
	Author        User `json:"author"`
	LikesCount    int  `json:"likes_count"`
	CommentsCount int  `json:"comments_count"`
}
