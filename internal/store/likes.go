package store

import "ripple/internal/models"

// CreateLike inserts a like for (userID, postID). At most one like may exist
// per pair; the check and the insert happen under the same lock hold.
func (s *Store) CreateLike(userID, postID uint) (*models.Like, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.likes {
		if l.UserID == userID && l.PostID == postID {
			return nil, models.NewValidationError("post already liked")
		}
	}

	like := models.Like{
		ID:        s.nextLikeID,
		UserID:    userID,
		PostID:    postID,
		CreatedAt: s.now(),
	}
	s.nextLikeID++
	s.likes[like.ID] = like

	observeInsert("like")
	return &like, nil
}

// RemoveLike deletes the like for (userID, postID) if one exists.
// Removing an absent like is a no-op.
func (s *Store) RemoveLike(userID, postID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, l := range s.likes {
		if l.UserID == userID && l.PostID == postID {
			delete(s.likes, id)
			observeDelete("like")
			return
		}
	}
}

// GetLike returns the like for (userID, postID), or nil.
func (s *Store) GetLike(userID, postID uint) *models.Like {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.likes {
		if l.UserID == userID && l.PostID == postID {
			like := l
			return &like
		}
	}
	return nil
}

// LikesByPost returns all likes on the given post.
func (s *Store) LikesByPost(postID uint) []models.Like {
	s.mu.RLock()
	defer s.mu.RUnlock()

	likes := make([]models.Like, 0)
	for _, l := range s.likes {
		if l.PostID == postID {
			likes = append(likes, l)
		}
	}
	return likes
}
