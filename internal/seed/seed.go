// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	MaxDays     int  // spread post timestamps over the last N days
	SkipBcrypt  bool // store a plaintext demo password instead of hashing
	ShouldClean bool // wipe existing rows before seeding
}

// DefaultOptions returns the preset used by the dev seeding command.
func DefaultOptions() Options {
	return Options{
		NumUsers: 25,
		NumPosts: 120,
		MaxDays:  90,
	}
}

// Seed populates the database with demo users, posts, comments, reactions,
// bookmarks, and follow edges.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	f := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	if len(users) == 0 {
		return nil
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		posts = append(posts, f.BuildPost(users[f.rand.Intn(len(users))]))
	}
	if err := f.CreatePostsBatch(posts); err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	comments, err := seedComments(f, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("created %d comments", comments)

	if err := seedEngagement(f, users, posts); err != nil {
		return fmt.Errorf("failed to create reactions and bookmarks: %w", err)
	}

	if err := seedFollows(f, users); err != nil {
		return fmt.Errorf("failed to create follow graph: %w", err)
	}

	log.Println("Seeding complete")
	return nil
}

// seedComments leaves a handful of comments on every post, with an
// occasional reaction from a third reader.
func seedComments(f *Factory, users []*models.User, posts []*models.Post) (int, error) {
	total := 0
	for _, post := range posts {
		for i := 0; i < f.rand.Intn(5); i++ {
			author := users[f.rand.Intn(len(users))]
			comment, err := f.CreateComment(author, post)
			if err != nil {
				return total, err
			}
			total++

			if f.rand.Intn(3) == 0 {
				reader := users[f.rand.Intn(len(users))]
				if err := f.CreateCommentReaction(reader, comment, randomKind(f)); err != nil {
					return total, err
				}
			}
		}
	}
	return total, nil
}

// seedEngagement spreads reactions and bookmarks over the posts. Most
// reactions are likes; roughly one in five is a dislike.
func seedEngagement(f *Factory, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		readers := f.rand.Intn(len(users) + 1)
		for i := 0; i < readers; i++ {
			reader := users[f.rand.Intn(len(users))]
			if err := f.CreatePostReaction(reader, post, randomKind(f)); err != nil {
				return err
			}
			if f.rand.Intn(4) == 0 {
				if err := f.CreateBookmark(reader, post); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// seedFollows gives each user a few random subscriptions so feeds are
// non-empty out of the box.
func seedFollows(f *Factory, users []*models.User) error {
	for _, follower := range users {
		for i := 0; i < f.rand.Intn(6)+1; i++ {
			followee := users[f.rand.Intn(len(users))]
			if err := f.CreateFollow(follower, followee); err != nil {
				return err
			}
		}
	}
	return nil
}

func randomKind(f *Factory) models.ReactionKind {
	if f.rand.Intn(5) == 0 {
		return models.ReactionDislike
	}
	return models.ReactionLike
}

// clearData wipes all seeded tables. Join tables go first so no sweep ever
// sees a dangling reference.
func clearData(db *gorm.DB) error {
	tables := []string{
		"comment_reactions",
		"post_reactions",
		"bookmarks",
		"follows",
		"comments",
		"posts",
		"users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}
