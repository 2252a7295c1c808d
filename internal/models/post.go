package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a blog publication. PubDate may lie in the future to schedule it.
type Post struct {
	Base
	Publishable
	Title      string    `json:"title"       gorm:"size:256;not null"  validate:"required,max=256"`
	Text       string    `json:"text"        gorm:"type:text;not null" validate:"required"`
	PubDate    time.Time `json:"pub_date"    gorm:"not null;index"     validate:"required"`
	AuthorID   uint      `json:"author_id"   gorm:"not null;index"     validate:"required"`
	LocationID *uint     `json:"location_id" gorm:"index"`
	CategoryID *uint     `json:"category_id" gorm:"index"`

	Author   *User     `json:"author,omitempty"   gorm:"foreignKey:AuthorID"                           validate:"-"`
	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"                       validate:"-"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"                       validate:"-"`
}

func (Post) TableName() string { return "posts" }

// BeforeSave stores pub_date in UTC. SQLite compares timestamps as text, so every
// stored value must carry the same offset as the visibility cutoff.
func (p *Post) BeforeSave(*gorm.DB) error {
	p.PubDate = p.PubDate.UTC()
	return nil
}

func (p Post) Label() string { return Label(p.Title, LabelLength) }
