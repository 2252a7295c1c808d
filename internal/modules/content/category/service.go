package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogicum/blogicum/internal/models"
	"gorm.io/gorm"
)

// ErrSlugTaken is reported on the slug field when another category owns the slug.
var ErrSlugTaken = errors.New("category with this slug already exists")

type CategoryDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	IsPublished *bool  `json:"is_published"`
}

func (dto *CategoryDTO) apply(c *models.Category) {
	c.Title = dto.Title
	c.Description = dto.Description
	c.Slug = dto.Slug
	if dto.IsPublished != nil {
		c.IsPublished = *dto.IsPublished
	}
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, dto *CategoryDTO) (*models.Category, error) {
	cat := models.Category{Publishable: models.NewPublishable()}
	dto.apply(&cat)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := check(tx, &cat); err != nil {
			return err
		}
		return tx.Create(&cat).Error
	})
	if err != nil {
		return nil, slugError(err)
	}
	return &cat, nil
}

// Update replaces the editable fields. A nil is_published keeps the stored value.
func (s *Service) Update(ctx context.Context, id uint, dto *CategoryDTO) (*models.Category, error) {
	var cat models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Take(&cat, id).Error; err != nil {
			return err
		}
		dto.apply(&cat)
		if err := check(tx, &cat); err != nil {
			return err
		}
		return tx.Save(&cat).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, slugError(err)
	}
	return &cat, nil
}

// Delete removes a category and detaches its posts, which keep existing without one.
func (s *Service) Delete(ctx context.Context, id uint) (bool, error) {
	var found bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Category{}, id)
		found = res.RowsAffected > 0
		return res.Error
	})
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	return found, nil
}

func check(tx *gorm.DB, cat *models.Category) error {
	if err := models.Validate(cat); err != nil {
		return err
	}
	var count int64
	if err := tx.Model(&models.Category{}).Where("slug = ? AND id <> ?", cat.Slug, cat.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugTaken
	}
	return nil
}

// slugError folds a taken slug, including one lost to a concurrent insert, into a field error.
func slugError(err error) error {
	if errors.Is(err, ErrSlugTaken) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.FieldError("slug", ErrSlugTaken.Error())
	}
	return err
}
