package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogicum/blogicum/internal/models"
	"gorm.io/gorm"
)

// ErrSlugTaken is reported on the slug field when another location owns the slug.
var ErrSlugTaken = errors.New("location with this slug already exists")

type LocationDTO struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	IsPublished *bool  `json:"is_published"`
}

func (dto *LocationDTO) apply(l *models.Location) {
	l.Name = dto.Name
	l.Slug = dto.Slug
	if dto.IsPublished != nil {
		l.IsPublished = *dto.IsPublished
	}
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, dto *LocationDTO) (*models.Location, error) {
	loc := models.Location{Publishable: models.NewPublishable()}
	dto.apply(&loc)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := check(tx, &loc); err != nil {
			return err
		}
		return tx.Create(&loc).Error
	})
	if err != nil {
		return nil, slugError(err)
	}
	return &loc, nil
}

// Update replaces the editable fields. A nil is_published keeps the stored value.
func (s *Service) Update(ctx context.Context, id uint, dto *LocationDTO) (*models.Location, error) {
	var loc models.Location
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Take(&loc, id).Error; err != nil {
			return err
		}
		dto.apply(&loc)
		if err := check(tx, &loc); err != nil {
			return err
		}
		return tx.Save(&loc).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, slugError(err)
	}
	return &loc, nil
}

// Delete removes a location. Its posts stay and lose the location.
func (s *Service) Delete(ctx context.Context, id uint) (bool, error) {
	var found bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).Where("location_id = ?", id).Update("location_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Location{}, id)
		found = res.RowsAffected > 0
		return res.Error
	})
	if err != nil {
		return false, fmt.Errorf("delete location: %w", err)
	}
	return found, nil
}

func check(tx *gorm.DB, loc *models.Location) error {
	if err := models.Validate(loc); err != nil {
		return err
	}
	var count int64
	if err := tx.Model(&models.Location{}).Where("slug = ? AND id <> ?", loc.Slug, loc.ID).Count(&count).Error; err != nil {
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
