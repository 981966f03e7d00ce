package store

import (
	"sort"

	"ripple/internal/models"
)

// InsertUser carries the caller-supplied fields for a new user.
type InsertUser struct {
	Username     string
	Password     string
	Name         string
	Bio          string
	ProfileImage string
}

// UserUpdate holds a partial user update; nil fields are left untouched.
type UserUpdate struct {
	Name         *string
	Bio          *string
	ProfileImage *string
	Password     *string
}

// CreateUser inserts a new user, assigning the next user id and stamping
// CreatedAt. Username uniqueness is checked before insert under the same
// lock hold.
func (s *Store) CreateUser(in InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == in.Username {
			return nil, models.NewValidationError("username already taken")
		}
	}

	user := models.User{
		ID:           s.nextUserID,
		Username:     in.Username,
		Password:     in.Password,
		Name:         in.Name,
		Bio:          in.Bio,
		ProfileImage: in.ProfileImage,
		IsBanned:     false,
		CreatedAt:    s.now(),
	}
	s.nextUserID++
	s.users[user.ID] = user

	observeInsert("user")
	return &user, nil
}

// GetUser returns the user with the given id, or nil if absent.
func (s *Store) GetUser(id uint) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[id]; ok {
		return &u
	}
	return nil
}

// GetUserByUsername returns the user with the given username, or nil.
func (s *Store) GetUserByUsername(username string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user
		}
	}
	return nil
}

// Users returns a snapshot of all users sorted by display name.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Name == users[j].Name {
			return users[i].ID < users[j].ID
		}
		return users[i].Name < users[j].Name
	})
	return users
}

// UpdateUser merges the given partial update into the user and returns the
// updated record, or nil if the user does not exist.
func (s *Store) UpdateUser(id uint, upd UserUpdate) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.ProfileImage != nil {
		u.ProfileImage = *upd.ProfileImage
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	s.users[id] = u
	return &u
}

// ToggleUserBan flips the user's banned flag and returns the updated record,
// or nil if the user does not exist.
func (s *Store) ToggleUserBan(id uint) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil
	}
	u.IsBanned = !u.IsBanned
	s.users[id] = u
	return &u
}

// DeleteUser removes the user and cascades: every post the user owns goes
// (taking that post's likes and comments with it), then the user's remaining
// likes and comments on other users' posts, then every friendship the user
// appears in. Returns false without side effects if the user does not exist.
// The whole cascade runs under one lock hold.
func (s *Store) DeleteUser(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)

	for postID, p := range s.posts {
		if p.UserID == id {
			s.deletePostLocked(postID)
		}
	}
	for likeID, l := range s.likes {
		if l.UserID == id {
			delete(s.likes, likeID)
		}
	}
	for commentID, c := range s.comments {
		if c.UserID == id {
			delete(s.comments, commentID)
		}
	}
	for friendshipID, f := range s.friendships {
		if f.Involves(id) {
			delete(s.friendships, friendshipID)
		}
	}

	observeDelete("user")
	return true
}
