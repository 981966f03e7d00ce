package store

import (
	"sort"

	"ripple/internal/models"
)

// CreateComment inserts a new comment on the given post.
func (s *Store) CreateComment(userID, postID uint, content string) *models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := models.Comment{
		ID:        s.nextCommentID,
		UserID:    userID,
		PostID:    postID,
		Content:   content,
		CreatedAt: s.now(),
	}
	s.nextCommentID++
	s.comments[comment.ID] = comment

	observeInsert("comment")
	return &comment
}

// CommentsByPost returns the post's comments, oldest first.
func (s *Store) CommentsByPost(postID uint) []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}
	sortCommentsOldestFirst(comments)
	return comments
}

func sortCommentsOldestFirst(comments []models.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
}
