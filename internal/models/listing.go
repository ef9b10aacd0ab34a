package models

import "gorm.io/gorm"

type Listing struct {
	gorm.Model
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Location    string `gorm:"size:255"`
	Pay         string `gorm:"size:100"`
	AgeRange    string `gorm:"size:50"`
	ImagePath   string `gorm:"size:255"` // public path under /uploads, empty when none

	CompanyID uint `gorm:"not null;index"`
	Company   Company
}
