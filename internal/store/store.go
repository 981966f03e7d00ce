// Package store provides the in-memory entity store backing the application.
//
// The store owns five keyed collections (users, posts, likes, comments,
// friendships) and a monotonic id counter per kind. Every exported method
// acquires the store lock once for the whole logical operation, so
// check-then-insert uniqueness rules and multi-collection cascades stay
// atomic under Fiber's concurrent request handling. Records live for the
// process lifetime; there is no persistence.
package store

import (
	"sync"
	"time"

	"ripple/internal/models"
)

// Store holds all entity collections and their id counters.
// Construct one at process start and inject it into the resolver and server;
// methods return copies, never references into the internal maps.
type Store struct {
	mu sync.RWMutex

	users       map[uint]models.User
	posts       map[uint]models.Post
	likes       map[uint]models.Like
	comments    map[uint]models.Comment
	friendships map[uint]models.Friendship

	nextUserID       uint
	nextPostID       uint
	nextLikeID       uint
	nextCommentID    uint
	nextFriendshipID uint

	now func() time.Time
}

// New creates an empty store with all id counters starting at 1.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock creates a store that stamps CreatedAt using the given clock.
// Tests use it to control ordering.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		users:       make(map[uint]models.User),
		posts:       make(map[uint]models.Post),
		likes:       make(map[uint]models.Like),
		comments:    make(map[uint]models.Comment),
		friendships: make(map[uint]models.Friendship),

		nextUserID:       1,
		nextPostID:       1,
		nextLikeID:       1,
		nextCommentID:    1,
		nextFriendshipID: 1,

		now: now,
	}
}

// Snapshot is a point-in-time copy of every collection, taken under a single
// read lock. The feed resolver works over a snapshot so its multi-collection
// reads see one consistent state.
type Snapshot struct {
	Users       map[uint]models.User
	Posts       []models.Post
	Likes       []models.Like
	Comments    []models.Comment
	Friendships []models.Friendship
}

// Snapshot copies all five collections atomically.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Users:       make(map[uint]models.User, len(s.users)),
		Posts:       make([]models.Post, 0, len(s.posts)),
		Likes:       make([]models.Like, 0, len(s.likes)),
		Comments:    make([]models.Comment, 0, len(s.comments)),
		Friendships: make([]models.Friendship, 0, len(s.friendships)),
	}
	for id, u := range s.users {
		snap.Users[id] = u
	}
	for _, p := range s.posts {
		snap.Posts = append(snap.Posts, p)
	}
	for _, l := range s.likes {
		snap.Likes = append(snap.Likes, l)
	}
	for _, c := range s.comments {
		snap.Comments = append(snap.Comments, c)
	}
	for _, f := range s.friendships {
		snap.Friendships = append(snap.Friendships, f)
	}
	return snap
}
