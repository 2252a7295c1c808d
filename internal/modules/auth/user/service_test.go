package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blogicum/blogicum/internal/database/databasetest"
	"github.com/blogicum/blogicum/internal/models"
	"github.com/blogicum/blogicum/internal/pkg/jwt"
)

func TestLogin(t *testing.T) {
	svc := NewService(databasetest.Open(t), time.Hour)
	ctx := context.Background()

	admin, err := svc.Create(ctx, &UserDTO{Username: "admin", Password: "correct-horse", IsSuperuser: true})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !admin.IsStaff {
		t.Error("superusers are staff")
	}
	if _, err := svc.Create(ctx, &UserDTO{Username: "writer", Password: "correct-horse"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	token, u, err := svc.Login(ctx, "admin", "correct-horse")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if u.LastLogin == nil {
		t.Error("last_login not recorded")
	}
	claims, err := jwt.Parse(token)
	if err != nil || claims.UserID != admin.ID || !claims.IsStaff {
		t.Errorf("claims = %+v, %v", claims, err)
	}

	for _, tc := range [][2]string{{"admin", "wrong-password"}, {"nobody", "correct-horse"}, {"writer", "correct-horse"}} {
		if _, _, err := svc.Login(ctx, tc[0], tc[1]); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q) error = %v, want ErrInvalidCredentials", tc[0], tc[1], err)
		}
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(databasetest.Open(t), time.Hour)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &UserDTO{Username: "leo", Password: "long-enough"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	tests := []struct {
		name  string
		dto   UserDTO
		field string
	}{
		{"short password", UserDTO{Username: "anna", Password: "short"}, "password"},
		{"missing username", UserDTO{Password: "long-enough"}, "username"},
		{"taken username", UserDTO{Username: "leo", Password: "long-enough"}, "username"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &tt.dto)
			ve, ok := models.AsValidationError(err)
			if !ok || ve.Fields[tt.field] == "" {
				t.Errorf("expected %s error, got %v", tt.field, err)
			}
		})
	}
}

func TestUpdateKeepsPasswordWhenEmpty(t *testing.T) {
	svc := NewService(databasetest.Open(t), time.Hour)
	ctx := context.Background()

	u, err := svc.Create(ctx, &UserDTO{Username: "leo", Password: "long-enough", IsStaff: true})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	updated, err := svc.Update(ctx, u.ID, &UserDTO{Username: "leo", Name: "Leo Tolstoy", IsStaff: true})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Leo Tolstoy" || updated.Label() != "Leo Tolstoy" {
		t.Errorf("unexpected user %+v", updated)
	}
	if _, _, err := svc.Login(ctx, "leo", "long-enough"); err != nil {
		t.Errorf("password should be unchanged: %v", err)
	}
}

func TestDeleteCascadesToPosts(t *testing.T) {
	db := databasetest.Open(t)
	svc := NewService(db, time.Hour)
	ctx := context.Background()

	author, err := svc.Create(ctx, &UserDTO{Username: "author", Password: "long-enough"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	other, err := svc.Create(ctx, &UserDTO{Username: "other", Password: "long-enough"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	for _, id := range []uint{author.ID, author.ID, other.ID} {
		p := models.Post{
			Publishable: models.NewPublishable(),
			Title:       "t",
			Text:        "x",
			PubDate:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			AuthorID:    id,
		}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("create post: %v", err)
		}
	}

	found, err := svc.Delete(ctx, author.ID)
	if err != nil || !found {
		t.Fatalf("Delete = %v, %v", found, err)
	}
	var remaining []models.Post
	db.Find(&remaining)
	if len(remaining) != 1 || remaining[0].AuthorID != other.ID {
		t.Errorf("remaining posts %+v", remaining)
	}
}
