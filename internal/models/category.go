package models

// Category groups posts. Deleting a category detaches its posts instead of deleting them.
type Category struct {
	Base
	Publishable
	Title       string `json:"title"       gorm:"size:256;not null"        validate:"required,max=256"`
	Description string `json:"description" gorm:"type:text;not null"       validate:"required"`
	Slug        string `json:"slug"        gorm:"size:64;uniqueIndex;not null" validate:"required,max=64,slug"`

	Posts []Post `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" validate:"-"`
}

func (Category) TableName() string { return "categories" }

func (c Category) Label() string { return Label(c.Title, LabelLength) }
