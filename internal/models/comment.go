// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Comment represents a comment left on a post.
type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Content     string    `gorm:"not null" json:"content"`
	PostID      uint      `gorm:"not null;index" json:"post_id"`
	CommenterID uint      `gorm:"not null" json:"commenter_id"`
	Commenter   User      `gorm:"foreignKey:CommenterID" json:"commenter"`
	CreatedAt   time.Time `json:"created_at"`
}
