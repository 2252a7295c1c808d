package user

import (
	"errors"
	"time"

	"github.com/blogicum/blogicum/internal/models"
)

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserDTO creates or replaces an author account. An empty password on update
// keeps the stored hash.
type UserDTO struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	Password    string `json:"password"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	errUsernameTaken      = errors.New("a user with that username already exists")
)
