package post

import (
	"time"

	"github.com/blogicum/blogicum/internal/models"
)

// PostDTO is the admin request body for creating or replacing a post.
// created_at is not accepted; it is read-only.
type PostDTO struct {
	Title       string     `json:"title"`
	Text        string     `json:"text"`
	PubDate     *time.Time `json:"pub_date"`
	AuthorID    uint       `json:"author_id"`
	LocationID  *uint      `json:"location_id"`
	CategoryID  *uint      `json:"category_id"`
	IsPublished *bool      `json:"is_published"`
}

func (dto *PostDTO) apply(p *models.Post) {
	p.Title = dto.Title
	p.Text = dto.Text
	p.PubDate = time.Time{}
	if dto.PubDate != nil {
		p.PubDate = *dto.PubDate
	}
	p.AuthorID = dto.AuthorID
	p.LocationID = dto.LocationID
	p.CategoryID = dto.CategoryID
	if dto.IsPublished != nil {
		p.IsPublished = *dto.IsPublished
	}
}
