// Package social implements the graph and feed resolution logic on top of
// the entity store: the friend-request lifecycle, friend-set resolution,
// personalized feed assembly, and cascading deletes.
package social

import (
	"ripple/internal/models"
	"ripple/internal/store"
)

// Resolver answers social-graph and feed queries against a single store.
type Resolver struct {
	store *store.Store
}

// NewResolver returns a resolver bound to the given store.
func NewResolver(s *store.Store) *Resolver {
	return &Resolver{store: s}
}

// CreateFriendRequest creates a pending friendship with userID as requester.
// It fails with SelfRequest when the two ids are equal, UnknownUser when the
// recipient does not exist, and DuplicateRequest when any link already exists
// for the unordered pair, in any status. A rejected link therefore blocks a
// new request between the same two users.
func (r *Resolver) CreateFriendRequest(userID, friendID uint) (*models.Friendship, error) {
	if userID == friendID {
		return nil, models.NewSelfRequestError()
	}
	if r.store.GetUser(friendID) == nil {
		return nil, models.NewUnknownUserError(friendID)
	}
	return r.store.CreateFriendship(userID, friendID)
}

// AcceptFriendRequest transitions the friendship to accepted. The transition
// is unconditional: an already-accepted or rejected link is re-stamped rather
// than refused. Fails with NotFound when the id does not exist.
func (r *Resolver) AcceptFriendRequest(id uint) (*models.Friendship, error) {
	return r.setStatus(id, models.FriendshipStatusAccepted)
}

// RejectFriendRequest transitions the friendship to rejected, with the same
// permissive contract as AcceptFriendRequest.
func (r *Resolver) RejectFriendRequest(id uint) (*models.Friendship, error) {
	return r.setStatus(id, models.FriendshipStatusRejected)
}

func (r *Resolver) setStatus(id uint, status models.FriendshipStatus) (*models.Friendship, error) {
	friendship := r.store.UpdateFriendshipStatus(id, status)
	if friendship == nil {
		return nil, models.NewNotFoundError("Friend request", id)
	}
	return friendship, nil
}

// Friends returns every accepted friendship involving the user, each paired
// with the other party's user record.
func (r *Resolver) Friends(userID uint) ([]models.FriendshipWithUser, error) {
	friends := make([]models.FriendshipWithUser, 0)
	for _, f := range r.store.Friendships() {
		if f.Status != models.FriendshipStatusAccepted || !f.Involves(userID) {
			continue
		}
		other := r.store.GetUser(f.OtherParty(userID))
		if other == nil {
			return nil, consistencyFault("friendship %d references missing user %d", f.ID, f.OtherParty(userID))
		}
		friends = append(friends, models.FriendshipWithUser{Friendship: f, User: *other})
	}
	return friends, nil
}

// PendingRequestsFor returns every pending friendship where the user is the
// recipient, each paired with the requester's user record.
func (r *Resolver) PendingRequestsFor(userID uint) ([]models.FriendshipWithUser, error) {
	requests := make([]models.FriendshipWithUser, 0)
	for _, f := range r.store.Friendships() {
		if f.Status != models.FriendshipStatusPending || f.FriendID != userID {
			continue
		}
		requester := r.store.GetUser(f.UserID)
		if requester == nil {
			return nil, consistencyFault("friendship %d references missing user %d", f.ID, f.UserID)
		}
		requests = append(requests, models.FriendshipWithUser{Friendship: f, User: *requester})
	}
	return requests, nil
}

// DeleteUser removes the user and everything they own or participate in:
// their posts (with each post's likes and comments), their likes and
// comments on other users' posts, and every friendship they appear in.
// Returns false without side effects if the user does not exist.
func (r *Resolver) DeleteUser(userID uint) bool {
	return r.store.DeleteUser(userID)
}

// DeletePost removes the post and its likes and comments.
// Returns false if the post does not exist.
func (r *Resolver) DeletePost(postID uint) bool {
	return r.store.DeletePost(postID)
}
