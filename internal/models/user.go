package models

import "time"

// User is an author account. Deleting a user deletes their posts.
type User struct {
	Base
	Username    string     `json:"username"     gorm:"size:150;uniqueIndex;not null" validate:"required,max=150"`
	Name        string     `json:"name"         gorm:"size:256"                      validate:"max=256"`
	Password    string     `json:"-"            gorm:"size:255;not null"`
	IsStaff     bool       `json:"is_staff"     gorm:"not null;default:false"`
	IsSuperuser bool       `json:"is_superuser" gorm:"not null;default:false"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   time.Time  `json:"created_at"   gorm:"<-:create;autoCreateTime;not null"`

	Posts []Post `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" validate:"-"`
}

func (User) TableName() string { return "users" }

func (u User) Label() string {
	if u.Name != "" {
		return Label(u.Name, LabelLength)
	}
	return Label(u.Username, LabelLength)
}
