// Package seed provides helpers to create demo data for development.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"ripple/internal/auth"
	"ripple/internal/models"
	"ripple/internal/social"
	"ripple/internal/store"

	"github.com/brianvoe/gofakeit/v6"
)

// Options controls how much demo data is generated.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentChance   float64
	LikeChance      float64
	FriendChance    float64
	DefaultPassword string
}

// DefaultOptions returns a small demo dataset configuration.
func DefaultOptions() Options {
	return Options{
		Users:           12,
		PostsPerUser:    4,
		CommentChance:   0.4,
		LikeChance:      0.5,
		FriendChance:    0.35,
		DefaultPassword: "password123",
	}
}

// Run populates the store with fake users, posts, likes, comments, and
// friendships. The first created user becomes the admin account.
func Run(st *store.Store, opts Options) error {
	gofakeit.Seed(0)

	hashed, err := auth.HashPassword(opts.DefaultPassword)
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		username := fmt.Sprintf("%s%d", gofakeit.Username(), i)
		user, err := st.CreateUser(store.InsertUser{
			Username:     username,
			Password:     hashed,
			Name:         gofakeit.Name(),
			Bio:          gofakeit.Sentence(8),
			ProfileImage: gofakeit.ImageURL(128, 128),
		})
		if err != nil {
			return fmt.Errorf("seeding user %q: %w", username, err)
		}
		users = append(users, user)
	}

	resolver := social.NewResolver(st)

	// Friendships first so the feeds have content from several authors.
	for i := range users {
		for j := i + 1; j < len(users); j++ {
			if rand.Float64() > opts.FriendChance {
				continue
			}
			friendship, err := resolver.CreateFriendRequest(users[i].ID, users[j].ID)
			if err != nil {
				continue
			}
			// Most requests get accepted, a few stay pending.
			if rand.Float64() < 0.8 {
				if _, err := resolver.AcceptFriendRequest(friendship.ID); err != nil {
					return err
				}
			}
		}
	}

	for _, u := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post := st.CreatePost(u.ID, gofakeit.Paragraph(1, 2, 8, " "))
			for _, other := range users {
				if other.ID == u.ID {
					continue
				}
				if rand.Float64() < opts.LikeChance {
					_, _ = st.CreateLike(other.ID, post.ID)
				}
				if rand.Float64() < opts.CommentChance {
					st.CreateComment(other.ID, post.ID, gofakeit.Sentence(10))
				}
			}
		}
	}

	log.Printf("Seeded %d users with demo posts, likes, comments, and friendships", len(users))
	return nil
}
