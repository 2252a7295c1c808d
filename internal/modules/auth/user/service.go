package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blogicum/blogicum/internal/models"
	"github.com/blogicum/blogicum/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

type Service struct {
	db       *gorm.DB
	tokenTTL time.Duration
}

func NewService(db *gorm.DB, tokenTTL time.Duration) *Service {
	return &Service{db: db, tokenTTL: tokenTTL}
}

// Login checks the password of a staff account and issues an admin token.
// Unknown users, wrong passwords and non-staff accounts all fail the same way.
func (s *Service) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).Take(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !u.IsStaff {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&u).Update("last_login", now).Error; err != nil {
		return "", nil, err
	}
	u.LastLogin = &now

	token, err := jwt.Sign(u.ID, u.IsStaff, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, &u, nil
}

func (s *Service) Create(ctx context.Context, dto *UserDTO) (*models.User, error) {
	u := models.User{}
	if err := applyUser(&u, dto, true); err != nil {
		return nil, err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkUser(tx, &u); err != nil {
			return err
		}
		return tx.Create(&u).Error
	})
	if err != nil {
		return nil, usernameError(err)
	}
	return &u, nil
}

// Update replaces the account fields. Returns nil when the user does not exist.
func (s *Service) Update(ctx context.Context, id uint, dto *UserDTO) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Take(&u, id).Error; err != nil {
			return err
		}
		if err := applyUser(&u, dto, false); err != nil {
			return err
		}
		if err := checkUser(tx, &u); err != nil {
			return err
		}
		return tx.Save(&u).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, usernameError(err)
	}
	return &u, nil
}

// Delete removes a user together with every post they authored.
func (s *Service) Delete(ctx context.Context, id uint) (bool, error) {
	var found bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, id)
		found = res.RowsAffected > 0
		return res.Error
	})
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return found, nil
}

func applyUser(u *models.User, dto *UserDTO, creating bool) error {
	u.Username = dto.Username
	u.Name = dto.Name
	u.IsStaff = dto.IsStaff || dto.IsSuperuser
	u.IsSuperuser = dto.IsSuperuser

	if dto.Password == "" && !creating {
		return nil
	}
	if len(dto.Password) < minPasswordLength {
		return models.FieldError("password", fmt.Sprintf("ensure this value has at least %d characters", minPasswordLength))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func checkUser(tx *gorm.DB, u *models.User) error {
	if err := models.Validate(u); err != nil {
		return err
	}
	var count int64
	if err := tx.Model(&models.User{}).Where("username = ? AND id <> ?", u.Username, u.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errUsernameTaken
	}
	return nil
}

func usernameError(err error) error {
	if errors.Is(err, errUsernameTaken) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.FieldError("username", errUsernameTaken.Error())
	}
	return err
}
