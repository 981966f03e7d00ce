package models

import "time"

// FriendshipStatus represents the status of a friendship request.
type FriendshipStatus string

const (
	// FriendshipStatusPending indicates a pending friendship request.
	FriendshipStatusPending FriendshipStatus = "pending"
	// FriendshipStatusAccepted indicates an accepted friendship request.
	FriendshipStatusAccepted FriendshipStatus = "accepted"
	// FriendshipStatusRejected indicates a rejected friendship request.
	FriendshipStatusRejected FriendshipStatus = "rejected"
)

// Friendship represents a friend request and its current disposition.
// UserID is the requester and FriendID the recipient; once accepted the
// relationship is symmetric and either party counts as the other's friend.
// At most one Friendship exists per unordered user pair, in any status.
type Friendship struct {
	ID        uint             `json:"id"`
	UserID    uint             `json:"user_id"`
	FriendID  uint             `json:"friend_id"`
	Status    FriendshipStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// Involves reports whether the given user is either party of the friendship.
func (f *Friendship) Involves(userID uint) bool {
	return f.UserID == userID || f.FriendID == userID
}

// OtherParty returns the counterpart of the given user in the friendship.
func (f *Friendship) OtherParty(userID uint) uint {
	if f.UserID == userID {
		return f.FriendID
	}
	return f.UserID
}

// FriendshipWithUser pairs a friendship with the user record relevant to the
// caller: the other party for friend listings, the requester for pending
// request listings.
type FriendshipWithUser struct {
	Friendship
	User User `json:"user"`
}
