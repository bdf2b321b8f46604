// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	handle := fmt.Sprintf("@%s%d", strings.ToLower(first), gofakeit.Number(100, 999))

	user := &models.User{
		Handle:    handle,
		Email:     gofakeit.Email(),
		FirstName: first,
		LastName:  last,
		Bio:       gofakeit.Sentence(10),
		AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	// Password handling: allow skipping bcrypt in dev fast mode.
	if f.opts.SkipBcrypt {
		user.Password = "Demo-Passw0rd!"
	} else {
		hashed, _ := bcrypt.GenerateFromPassword([]byte("Demo-Passw0rd!"), bcrypt.DefaultCost)
		user.Password = string(hashed)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample `models.Post` for the given
// author, with its created_at spread over the recent past so listings and
// feeds look lived-in.
func (f *Factory) CreatePost(author *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(author)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// BuildPost constructs a post struct like CreatePost but does not persist it.
// Useful for batching.
func (f *Factory) BuildPost(author *models.User) *models.Post {
	title := strings.TrimSuffix(gofakeit.Sentence(f.rand.Intn(5)+4), ".")
	paragraphs := make([]string, 0, 4)
	for i := 0; i < f.rand.Intn(3)+2; i++ {
		paragraphs = append(paragraphs, gofakeit.Paragraph(1, 4, 9, " "))
	}

	post := &models.Post{
		Title:   title,
		Content: strings.Join(paragraphs, "\n\n"),
		Tags:    strings.Join(pickTags(f.rand), ","),
		UserID:  author.ID,
	}
	if f.rand.Intn(3) == 0 {
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/1200/630", gofakeit.UUID())
	}

	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	back := time.Duration(f.rand.Intn(maxDays))*24*time.Hour +
		time.Duration(f.rand.Intn(24))*time.Hour +
		time.Duration(f.rand.Intn(60))*time.Minute
	post.CreatedAt = time.Now().Add(-back)
	return post
}

// CreatePostsBatch persists multiple posts in a single DB call.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateComment constructs and persists a sample comment by the given user
// on the given post.
func (f *Factory) CreateComment(author *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content:    gofakeit.Sentence(f.rand.Intn(12) + 4),
		UserID:     author.ID,
		AuthorName: author.DisplayName(),
		PostID:     post.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreatePostReaction records the user's reaction on a post. Re-seeding the
// same pair flips the kind instead of erroring.
func (f *Factory) CreatePostReaction(user *models.User, post *models.Post, kind models.ReactionKind) error {
	return f.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"kind": kind}),
	}).Create(&models.PostReaction{UserID: user.ID, PostID: post.ID, Kind: kind}).Error
}

// CreateCommentReaction records the user's reaction on a comment.
func (f *Factory) CreateCommentReaction(user *models.User, comment *models.Comment, kind models.ReactionKind) error {
	return f.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "comment_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"kind": kind}),
	}).Create(&models.CommentReaction{UserID: user.ID, CommentID: comment.ID, Kind: kind}).Error
}

// CreateBookmark saves a post to the user's reading list. Idempotent.
func (f *Factory) CreateBookmark(user *models.User, post *models.Post) error {
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Bookmark{UserID: user.ID, PostID: post.ID}).Error
}

// CreateFollow records a follow edge from follower to followee. Idempotent,
// and self-follows are silently skipped.
func (f *Factory) CreateFollow(follower, followee *models.User) error {
	if follower.ID == followee.ID {
		return nil
	}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}).Error
}

var seedTags = []string{
	"writing", "technology", "programming", "golang", "books", "travel",
	"food", "music", "productivity", "design", "science", "history",
	"photography", "fitness", "startups", "opinion",
}

func pickTags(r *rand.Rand) []string {
	n := r.Intn(3) + 1
	seen := make(map[string]bool, n)
	tags := make([]string, 0, n)
	for len(tags) < n {
		t := seedTags[r.Intn(len(seedTags))]
		if !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}
	return tags
}
