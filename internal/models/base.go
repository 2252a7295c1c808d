package models

import "time"

// Base is the base model for all entities.
type Base struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`
}

// Publishable is shared by Category, Location and Post.
// CreatedAt is create-only: GORM never writes it on update. IsPublished carries no
// column default so that an explicit false is always written; use NewPublishable.
type Publishable struct {
	IsPublished bool      `json:"is_published" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"   gorm:"<-:create;autoCreateTime;not null"`
}

// NewPublishable returns the defaults for a freshly created entity.
func NewPublishable() Publishable {
	return Publishable{IsPublished: true}
}
