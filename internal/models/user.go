// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an author or commenter, created lazily the first time a
// display name is seen. Name is the unique, case-sensitive lookup key.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Posts     []Post    `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}
