package middleware

import (
	"errors"
	"strings"

	"github.com/blogicum/blogicum/internal/models"
	"github.com/blogicum/blogicum/internal/pkg/jwt"
	"github.com/blogicum/blogicum/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const ContextKeyUserID = "user_id"

var errNotStaff = errors.New("user is not staff")

// Auth returns a middleware that admits staff users holding a valid admin token.
// The user is looked up on every request so that deleted or demoted accounts lose
// access immediately.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c)
			return
		}
		user, err := ValidateToken(db.WithContext(c.Request.Context()), token)
		if errors.Is(err, errNotStaff) {
			response.Forbidden(c)
			return
		}
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUserID, user.ID)
		c.Next()
	}
}

// ValidateToken parses a JWT and returns the staff user it was issued to.
func ValidateToken(db *gorm.DB, rawToken string) (*models.User, error) {
	claims, err := jwt.Parse(NormalizeToken(rawToken))
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := db.Take(&user, claims.UserID).Error; err != nil {
		return nil, err
	}
	if !user.IsStaff {
		return nil, errNotStaff
	}
	return &user, nil
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(uint)
	return id
}

func extractToken(c *gin.Context) string {
	return NormalizeToken(c.GetHeader("Authorization"))
}

// NormalizeToken trims spaces and strips optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
