package store

import (
	"sort"

	"ripple/internal/models"
)

// CreateFriendship inserts a pending friendship with userID as requester.
// At most one friendship may exist per unordered user pair regardless of
// direction or status; the order-independent check and the insert happen
// under the same lock hold.
func (s *Store) CreateFriendship(userID, friendID uint) (*models.Friendship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.friendships {
		if (f.UserID == userID && f.FriendID == friendID) ||
			(f.UserID == friendID && f.FriendID == userID) {
			return nil, models.NewDuplicateRequestError(userID, friendID)
		}
	}

	friendship := models.Friendship{
		ID:        s.nextFriendshipID,
		UserID:    userID,
		FriendID:  friendID,
		Status:    models.FriendshipStatusPending,
		CreatedAt: s.now(),
	}
	s.nextFriendshipID++
	s.friendships[friendship.ID] = friendship

	observeInsert("friendship")
	return &friendship, nil
}

// GetFriendship returns the friendship with the given id, or nil.
func (s *Store) GetFriendship(id uint) *models.Friendship {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if f, ok := s.friendships[id]; ok {
		return &f
	}
	return nil
}

// FriendshipBetween returns the friendship linking the two users in either
// direction and any status, or nil if none exists.
func (s *Store) FriendshipBetween(userID, friendID uint) *models.Friendship {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.friendships {
		if (f.UserID == userID && f.FriendID == friendID) ||
			(f.UserID == friendID && f.FriendID == userID) {
			friendship := f
			return &friendship
		}
	}
	return nil
}

// Friendships returns a snapshot of all friendships in insertion order.
func (s *Store) Friendships() []models.Friendship {
	s.mu.RLock()
	defer s.mu.RUnlock()

	friendships := make([]models.Friendship, 0, len(s.friendships))
	for _, f := range s.friendships {
		friendships = append(friendships, f)
	}
	sort.Slice(friendships, func(i, j int) bool {
		return friendships[i].ID < friendships[j].ID
	})
	return friendships
}

// UpdateFriendshipStatus re-stamps the friendship's status and returns the
// updated record, or nil if the id does not exist. No check is made against
// the current status: accepting an already-accepted or rejected link simply
// overwrites it.
func (s *Store) UpdateFriendshipStatus(id uint, status models.FriendshipStatus) *models.Friendship {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.friendships[id]
	if !ok {
		return nil
	}
	f.Status = status
	s.friendships[id] = f
	return &f
}
