package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blogicum/blogicum/internal/models"
	"gorm.io/gorm"
)

// HomeFeedSize is the number of posts on the home page.
const HomeFeedSize = 5

// Service handles post queries for the public site and post writes for the admin.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// SetClock replaces the time source used by the visibility rule.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

func (s *Service) visiblePosts(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Post{}).
		Scopes(Visible(s.now()), WithRelations, NewestFirst)
}

// HomeFeed returns the most recent visible posts.
func (s *Service) HomeFeed(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := s.visiblePosts(ctx).Limit(HomeFeedSize).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("home feed: %w", err)
	}
	return posts, nil
}

// Detail returns a visible post by id, or nil when it is missing or hidden.
func (s *Service) Detail(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := s.visiblePosts(ctx).Where("posts.id = ?", id).Take(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("post detail: %w", err)
	}
	return &post, nil
}

// CategoryFeed resolves a published category by slug and returns its visible posts.
// A nil category means the category is missing or unpublished.
func (s *Service) CategoryFeed(ctx context.Context, slug string) (*models.Category, []models.Post, error) {
	var category models.Category
	err := s.db.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, true).
		Take(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("category feed: %w", err)
	}

	var posts []models.Post
	if err := s.visiblePosts(ctx).Where("posts.category_id = ?", category.ID).Find(&posts).Error; err != nil {
		return nil, nil, fmt.Errorf("category feed: %w", err)
	}
	return &category, posts, nil
}

// LocationFeed resolves a location by slug, published or not, and returns its
// published posts. Unlike the other feeds it ignores pub_date and the category.
func (s *Service) LocationFeed(ctx context.Context, slug string) (*models.Location, []models.Post, error) {
	var location models.Location
	err := s.db.WithContext(ctx).Where("slug = ?", slug).Take(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("location feed: %w", err)
	}

	var posts []models.Post
	err = s.db.WithContext(ctx).
		Model(&models.Post{}).
		Scopes(WithRelations, NewestFirst).
		Where("posts.location_id = ? AND posts.is_published = ?", location.ID, true).
		Find(&posts).Error
	if err != nil {
		return nil, nil, fmt.Errorf("location feed: %w", err)
	}
	return &location, posts, nil
}

// Create validates dto and inserts a post. is_published defaults to true.
func (s *Service) Create(ctx context.Context, dto *PostDTO) (*models.Post, error) {
	post := models.Post{Publishable: models.NewPublishable()}
	dto.apply(&post)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkPost(tx, &post); err != nil {
			return err
		}
		return tx.Create(&post).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update replaces the editable fields of a post. A nil is_published keeps the
// stored value. Returns nil when the post does not exist.
func (s *Service) Update(ctx context.Context, id uint, dto *PostDTO) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Take(&post, id).Error; err != nil {
			return err
		}
		dto.apply(&post)
		if err := checkPost(tx, &post); err != nil {
			return err
		}
		return tx.Save(&post).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Delete removes a post and reports whether it existed.
func (s *Service) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Post{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete post: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// checkPost validates field rules and that every referenced row exists.
func checkPost(tx *gorm.DB, p *models.Post) error {
	if err := models.Validate(p); err != nil {
		return err
	}
	refs := []struct {
		field, message string
		model          any
		id             *uint
	}{
		{"author_id", "select a valid author", &models.User{}, &p.AuthorID},
		{"category_id", "select a valid category", &models.Category{}, p.CategoryID},
		{"location_id", "select a valid location", &models.Location{}, p.LocationID},
	}
	fields := map[string]string{}
	for _, ref := range refs {
		if ref.id == nil {
			continue
		}
		ok, err := exists(tx, ref.model, *ref.id)
		if err != nil {
			return fmt.Errorf("check %s: %w", ref.field, err)
		}
		if !ok {
			fields[ref.field] = ref.message
		}
	}
	if len(fields) > 0 {
		return &models.ValidationError{Fields: fields}
	}
	return nil
}

func exists(tx *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
