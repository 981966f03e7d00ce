package social

import (
	"fmt"
	"sort"
	"time"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/store"
)

// Feed assembles the viewer's personalized feed: posts authored by the
// viewer or an accepted friend, newest first, each enriched with its author,
// like count, the viewer's liked flag, and comments (oldest first) with
// their authors. The whole assembly runs over one atomic store snapshot.
//
// A post or comment referencing a missing user should be unreachable given
// cascade deletes; if it happens anyway the feed reports a consistency fault
// instead of dropping the row or fabricating an author.
func (r *Resolver) Feed(viewerID uint) ([]models.PostWithAuthor, error) {
	start := time.Now()
	snap := r.store.Snapshot()

	eligible := eligibleAuthors(snap, viewerID)

	posts := make([]models.Post, 0)
	for _, p := range snap.Posts {
		if eligible[p.UserID] {
			posts = append(posts, p)
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	feed := make([]models.PostWithAuthor, 0, len(posts))
	for _, p := range posts {
		entry, err := enrichPost(snap, p, viewerID)
		if err != nil {
			return nil, err
		}
		feed = append(feed, *entry)
	}

	observability.FeedAssemblyDuration.Observe(time.Since(start).Seconds())
	observability.FeedPostsReturned.Observe(float64(len(feed)))
	return feed, nil
}

// AllPostsWithCounts returns every post with its author and engagement
// totals, newest first. Used by the admin listing.
func (r *Resolver) AllPostsWithCounts() ([]models.PostWithCounts, error) {
	snap := r.store.Snapshot()

	posts := append([]models.Post(nil), snap.Posts...)
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	out := make([]models.PostWithCounts, 0, len(posts))
	for _, p := range posts {
		author, ok := snap.Users[p.UserID]
		if !ok {
			return nil, consistencyFault("post %d references missing author %d", p.ID, p.UserID)
		}
		likes, comments := 0, 0
		for _, l := range snap.Likes {
			if l.PostID == p.ID {
				likes++
			}
		}
		for _, c := range snap.Comments {
			if c.PostID == p.ID {
				comments++
			}
		}
		out = append(out, models.PostWithCounts{
			Post:          p,
			Author:        author,
			LikesCount:    likes,
			CommentsCount: comments,
		})
	}
	return out, nil
}

// CommentsWithAuthors returns the post's comments oldest first, each paired
// with its author's user record.
func (r *Resolver) CommentsWithAuthors(postID uint) ([]models.CommentWithAuthor, error) {
	snap := r.store.Snapshot()
	return commentsForPost(snap, postID)
}

// eligibleAuthors computes the set of user ids whose posts appear in the
// viewer's feed: the viewer plus every accepted friend.
func eligibleAuthors(snap store.Snapshot, viewerID uint) map[uint]bool {
	eligible := map[uint]bool{viewerID: true}
	for _, f := range snap.Friendships {
		if f.Status == models.FriendshipStatusAccepted && f.Involves(viewerID) {
			eligible[f.OtherParty(viewerID)] = true
		}
	}
	return eligible
}

func enrichPost(snap store.Snapshot, p models.Post, viewerID uint) (*models.PostWithAuthor, error) {
	author, ok := snap.Users[p.UserID]
	if !ok {
		return nil, consistencyFault("post %d references missing author %d", p.ID, p.UserID)
	}

	likes := 0
	liked := false
	for _, l := range snap.Likes {
		if l.PostID != p.ID {
			continue
		}
		likes++
		if l.UserID == viewerID {
			liked = true
		}
	}

	comments, err := commentsForPost(snap, p.ID)
	if err != nil {
		return nil, err
	}

	return &models.PostWithAuthor{
		Post:     p,
		Author:   author,
		Likes:    likes,
		Liked:    liked,
		Comments: comments,
	}, nil
}

func commentsForPost(snap store.Snapshot, postID uint) ([]models.CommentWithAuthor, error) {
	raw := make([]models.Comment, 0)
	for _, c := range snap.Comments {
		if c.PostID == postID {
			raw = append(raw, c)
		}
	}
	sort.SliceStable(raw, func(i, j int) bool {
		if raw[i].CreatedAt.Equal(raw[j].CreatedAt) {
			return raw[i].ID < raw[j].ID
		}
		return raw[i].CreatedAt.Before(raw[j].CreatedAt)
	})

	comments := make([]models.CommentWithAuthor, 0, len(raw))
	for _, c := range raw {
		author, ok := snap.Users[c.UserID]
		if !ok {
			return nil, consistencyFault("comment %d references missing author %d", c.ID, c.UserID)
		}
		comments = append(comments, models.CommentWithAuthor{Comment: c, Author: author})
	}
	return comments, nil
}

func consistencyFault(format string, args ...interface{}) error {
	observability.ConsistencyFaults.Inc()
	return models.NewConsistencyFaultError(fmt.Sprintf(format, args...))
}
