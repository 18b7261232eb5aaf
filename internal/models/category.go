package models

// Category — categories table
type Category struct {
	Base
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
}
