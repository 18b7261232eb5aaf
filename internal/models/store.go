package models

// Store — stores table; deleting the owning user deletes the store
type Store struct {
	Base
	Title  string `gorm:"type:text;not null"`
	UserID uint   `gorm:"index;not null"`
	User   User   `gorm:"constraint:OnDelete:CASCADE"`
}
