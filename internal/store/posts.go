package store

import (
	"sort"

	"ripple/internal/models"
)

// CreatePost inserts a new post owned by the given user.
func (s *Store) CreatePost(userID uint, content string) *models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := models.Post{
		ID:        s.nextPostID,
		UserID:    userID,
		Content:   content,
		CreatedAt: s.now(),
	}
	s.nextPostID++
	s.posts[post.ID] = post

	observeInsert("post")
	return &post
}

// GetPost returns the post with the given id, or nil if absent.
func (s *Store) GetPost(id uint) *models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.posts[id]; ok {
		return &p
	}
	return nil
}

// Posts returns all posts, newest first.
func (s *Store) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	sortPostsNewestFirst(posts)
	return posts
}

// PostsByUser returns the given user's posts, newest first.
func (s *Store) PostsByUser(userID uint) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.Post, 0)
	for _, p := range s.posts {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}
	sortPostsNewestFirst(posts)
	return posts
}

// DeletePost removes the post along with its likes and comments.
// Returns false if the post does not exist. Likes and comments are leaves;
// nothing cascades further.
func (s *Store) DeletePost(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return false
	}
	s.deletePostLocked(id)
	observeDelete("post")
	return true
}

// deletePostLocked removes a post and its dependent likes/comments.
// Caller must hold the write lock.
func (s *Store) deletePostLocked(id uint) {
	delete(s.posts, id)

	for likeID, l := range s.likes {
		if l.PostID == id {
			delete(s.likes, likeID)
		}
	}
	for commentID, c := range s.comments {
		if c.PostID == id {
			delete(s.comments, commentID)
		}
	}
}

func sortPostsNewestFirst(posts []models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
