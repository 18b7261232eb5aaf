package models

// Product — products table. Price has no lower bound: negative values are
// stored as-is.
type Product struct {
	Base
	Name        string   `gorm:"size:100;not null"`
	Description string   `gorm:"type:text"`
	Price       float64  `gorm:"not null"`
	URL         string   `gorm:"size:100"`
	StoreID     uint     `gorm:"index;not null"`
	Store       Store    `gorm:"constraint:OnDelete:CASCADE"`
	CategoryID  uint     `gorm:"index;not null"`
	Category    Category `gorm:"constraint:OnDelete:CASCADE"`
}
