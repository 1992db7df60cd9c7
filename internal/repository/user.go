// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"travelblog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the interface for author/commenter data operations.
type UserRepository interface {
	GetByName(ctx context.Context, name string) (*models.User, error)
	GetOrCreateByName(ctx context.Context, name string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetOrCreateByName resolves a display name to its user row, inserting one if
// absent. The insert is a conditional write against the unique name column
// (ON CONFLICT DO NOTHING) followed by a canonical re-fetch, so two concurrent
// callers resolving the same new name converge on a single row.
func (r *userRepository) GetOrCreateByName(ctx context.Context, name string) (*models.User, error) {
	attempt := &models.User{Name: name}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(attempt).Error
	if err != nil {
		return nil, err
	}

	// The insert may have been skipped; always read back the canonical row.
	return r.GetByName(ctx, name)
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
