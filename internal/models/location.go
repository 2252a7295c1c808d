package models

// Location is where a post was written.
type Location struct {
	Base
	Publishable
	Name string `json:"name" gorm:"size:256;not null"            validate:"required,max=256"`
	Slug string `json:"slug" gorm:"size:64;uniqueIndex;not null" validate:"required,max=64,slug"`

	Posts []Post `json:"-" gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL" validate:"-"`
}

func (Location) TableName() string { return "locations" }

func (l Location) Label() string { return Label(l.Name, LabelLength) }
