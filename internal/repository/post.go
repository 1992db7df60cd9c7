// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"strings"

	"travelblog/internal/cache"
	"travelblog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilter holds the query parameters of the paginated post listing.
type ListFilter struct {
	Topic    models.Topic // empty means all topics
	Author   string       // case-insensitive substring match on author name
	Page     int
	PageSize int
}

// Offset translates page/pageSize into the storage offset.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, filter ListFilter) ([]*models.Post, int64, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetByID loads a post with its author and comments (newest first, each with
// its commenter). Reads go through the cache-aside helper; every mutation
// invalidates the key.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		return r.db.WithContext(ctx).
			Preload("Author").
			Preload("Comments", func(db *gorm.DB) *gorm.DB {
				return db.Order("comments.created_at DESC")
			}).
			Preload("Comments.Commenter").
			First(&post, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// applyFilter appends the WHERE clauses for the requested topic and author
// substring. The author match is case-insensitive and joins the users table.
func (r *postRepository) applyFilter(db *gorm.DB, filter ListFilter) *gorm.DB {
	if filter.Topic != "" {
		db = db.Where("posts.topic = ?", filter.Topic)
	}
	if filter.Author != "" {
		like := "%" + strings.ToLower(filter.Author) + "%"
		db = db.
			Joins("JOIN users ON users.id = posts.author_id").
			Where("LOWER(users.name) LIKE ?", like)
	}
	return db
}

// List returns one page of posts matching the filter, newest edits first,
// together with the total count over the same filter.
func (r *postRepository) List(ctx context.Context, filter ListFilter) ([]*models.Post, int64, error) {
	var total int64
	countQuery := r.applyFilter(r.db.WithContext(ctx).Model(&models.Post{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.Post{}), filter).
		Preload("Author").
		Order("posts.updated_at DESC").
		Limit(filter.PageSize).
		Offset(filter.Offset()).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	// The post arrives with Author/Comments preloaded; only column values are written.
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(post).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

// Delete removes a post and its comments in one transaction, so no orphaned
// comment rows survive the post.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, id)
	return nil
}
