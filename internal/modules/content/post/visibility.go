package post

import (
	"time"

	"github.com/blogicum/blogicum/internal/models"
	"gorm.io/gorm"
)

// Visible restricts a post query to what anonymous readers may see at now: the post
// is published and due, and it belongs to a published category. The location's
// publication flag is deliberately not consulted.
//
// Every public query that needs the visibility rule must go through this scope.
func Visible(now time.Time) func(*gorm.DB) *gorm.DB {
	now = now.UTC()
	return func(tx *gorm.DB) *gorm.DB {
		publishedCategories := tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.Category{}).
			Select("id").
			Where("is_published = ?", true)

		return tx.
			Where("posts.is_published = ?", true).
			Where("posts.pub_date <= ?", now).
			Where("posts.category_id IS NOT NULL").
			Where("posts.category_id IN (?)", publishedCategories)
	}
}

// WithRelations eager-loads the author, category and location of each post.
func WithRelations(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Author").Preload("Category").Preload("Location")
}

// NewestFirst orders posts by publication date, newest first.
func NewestFirst(tx *gorm.DB) *gorm.DB {
	return tx.Order("posts.pub_date DESC").Order("posts.id DESC")
}
