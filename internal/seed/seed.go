// Package seed provides helpers to create demo data for development and
// testing.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"travelblog/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	MaxComments int
	MaxDays     int
	ShouldClean bool
}

// Seeder populates the database with fake authors, posts and comments.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 10
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 50
	}
	if opts.MaxComments <= 0 {
		opts.MaxComments = 5
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded rows, children first.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{&models.Comment{}, &models.Post{}, &models.User{}} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	return nil
}

// Run seeds users, then posts, then comments.
func (s *Seeder) Run() error {
	users, err := s.seedUsers()
	if err != nil {
		return err
	}
	posts, err := s.seedPosts(users)
	if err != nil {
		return err
	}
	return s.seedComments(users, posts)
}

func (s *Seeder) seedUsers() ([]*models.User, error) {
	users := make([]*models.User, 0, s.opts.NumUsers)
	seen := map[string]bool{}
	for len(users) < s.opts.NumUsers {
		name := gofakeit.Name()
		if seen[name] {
			continue
		}
		seen[name] = true

		user := &models.User{Name: name}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("creating user %q: %w", name, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedPosts(users []*models.User) ([]*models.Post, error) {
	topics := []models.Topic{
		models.TopicFood, models.TopicStay, models.TopicSpot, models.TopicOthers,
	}

	posts := make([]*models.Post, 0, s.opts.NumPosts)
	for i := 0; i < s.opts.NumPosts; i++ {
		author := users[s.rng.Intn(len(users))]
		createdAt := s.pastTime()

		post := &models.Post{
			Title:     gofakeit.Sentence(5),
			Content:   gofakeit.Paragraph(2, 4, 8, "\n"),
			Topic:     topics[s.rng.Intn(len(topics))],
			AuthorID:  author.ID,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
		if err := s.db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("creating post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *Seeder) seedComments(users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		for i := 0; i < s.rng.Intn(s.opts.MaxComments+1); i++ {
			commenter := users[s.rng.Intn(len(users))]
			comment := &models.Comment{
				Content:     gofakeit.Sentence(8),
				PostID:      post.ID,
				CommenterID: commenter.ID,
				CreatedAt:   post.CreatedAt.Add(time.Duration(s.rng.Intn(72)) * time.Hour),
			}
			if err := s.db.Create(comment).Error; err != nil {
				return fmt.Errorf("creating comment: %w", err)
			}
		}
	}
	return nil
}

// pastTime returns a timestamp spread over the configured window so listings
// look lived-in.
func (s *Seeder) pastTime() time.Time {
	daysBack := s.rng.Intn(s.opts.MaxDays)
	hoursBack := s.rng.Intn(24)
	minsBack := s.rng.Intn(60)
	return time.Now().
		Add(-time.Duration(daysBack) * 24 * time.Hour).
		Add(-time.Duration(hoursBack) * time.Hour).
		Add(-time.Duration(minsBack) * time.Minute)
}
