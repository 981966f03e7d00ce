package social

import (
	"testing"
	"time"

	"ripple/internal/models"
	"ripple/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeClock() func() time.Time {
	t := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newFixture(t *testing.T) (*store.Store, *Resolver) {
	t.Helper()
	s := store.NewWithClock(fakeClock())
	return s, NewResolver(s)
}

func createUser(t *testing.T, s *store.Store, username string) *models.User {
	t.Helper()
	u, err := s.CreateUser(store.InsertUser{Username: username, Password: "hash.salt", Name: username})
	require.NoError(t, err)
	return u
}

func TestCreateFriendRequest_Pending(t *testing.T) {
	s, r := newFixture(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")

	f, err := r.CreateFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusPending, f.Status)
	assert.Equal(t, alice.ID, f.UserID)
	assert.Equal(t, bob.ID, f.FriendID)
}

func TestCreateFriendRequest_SelfRequest(t *testing.T) {
	s, r := newFixture(t)
	alice := createUser(t, s, "alice")

	_, err := r.CreateFriendRequest(alice.ID, alice.ID)
	require.Error(t, err)
	assert.Equal(t, models.CodeSelfRequest, models.CodeOf(err))
}

func TestCreateFriendRequest_UnknownUser(t *testing.T) {
	s, r := newFixture(t)
	alice := createUser(t, s, "alice")

	_, err := r.CreateFriendRequest(alice.ID, 99)
	require.Error(t, err)
	assert.Equal(t, models.CodeUnknownUser, models.CodeOf(err))
}

func TestCreateFriendRequest_DuplicateInEitherDirection(t *testing.T) {
	s, r := newFixture(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")

	_, err := r.CreateFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = r.CreateFriendRequest(alice.ID, bob.ID)
	assert.Equal(t, models.CodeDuplicateRequest, models.CodeOf(err))

	_, err = r.CreateFriendRequest(bob.ID, alice.ID)
	assert.Equal(t, models.CodeDuplicateRequest, models.CodeOf(err))
}

func TestCreateFriendRequest_RejectedLinkStillBlocks(t *testing.T) {
	s, r := newFixture(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")

	f, err := r.CreateFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = r.RejectFriendRequest(f.ID)
	require.NoError(t, err)

	// A rejected link counts as existing; no re-request is possible.
	_, err = r.CreateFriendRequest(alice.ID, bob.ID)
	assert.Equal(t, models.CodeDuplicateRequest, models.CodeOf(err))
}

func TestAcceptFriendRequest_NotFound(t *testing.T) {
	_, r := newFixture(t)

	_, err := r.AcceptFriendRequest(42)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.CodeOf(err))

	_, err = r.RejectFriendRequest(42)
	assert.Equal(t, models.CodeNotFound, models.CodeOf(err))
}

func TestAcceptFriendRequest_PermissiveRetransition(t *testing.T) {
	s, r := newFixture(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")

	f, err := r.CreateFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	rejected, err := r.RejectFriendRequest(f.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusRejected, rejected.Status)

	// Transitions carry no state check: a rejected link can still be accepted.
	accepted, err := r.AcceptFriendRequest(f.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusAccepted, accepted.Status)

	reaccepted, err := r.AcceptFriendRequest(f.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusAccepted, reaccepted.Status)
}

func TestFriends_SymmetricAfterAccept(t *testing.T) {
	s, r := newFixture(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")

	f, err := r.CreateFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = r.AcceptFriendRequest(f.ID)
	require.NoError(t, err)

	aliceFriends, err := r.Friends(alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, bob.ID, aliceFriends[0].User.ID)

	bobFriends, err := r.Friends(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, alice.ID, bobFriends[0].User.ID)
}

func TestFriends_ExcludesPendingAndRejected(t *testing.T) {
	s, r := newFixture(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")
	carol := createUser(t, s, "carol")

	_, err := r.CreateFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	f, err := r.CreateFriendRequest(alice.ID, carol.ID)
	require.NoError(t, err)
	_, err = r.RejectFriendRequest(f.ID)
	require.NoError(t, err)

	friends, err := r.Friends(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestPendingRequestsFor_RecipientOnly(t *testing.T) {
	s, r := newFixture(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")

	f, err := r.CreateFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)

	// The recipient sees the request, paired with the requester's record.
	bobRequests, err := r.PendingRequestsFor(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobRequests, 1)
	assert.Equal(t, f.ID, bobRequests[0].ID)
	assert.Equal(t, alice.ID, bobRequests[0].User.ID)

	// The requester does not.
	aliceRequests, err := r.PendingRequestsFor(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceRequests)

	// Accepted requests drop out of the pending list.
	_, err = r.AcceptFriendRequest(f.ID)
	require.NoError(t, err)
	bobRequests, err = r.PendingRequestsFor(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobRequests)
}

func TestDeleteUser_RemovesFromFriendLists(t *testing.T) {
	s, r := newFixture(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")

	f, err := r.CreateFriendRequest(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = r.AcceptFriendRequest(f.ID)
	require.NoError(t, err)

	require.True(t, r.DeleteUser(bob.ID))

	friends, err := r.Friends(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}
