package models

import "gorm.io/gorm"

type Company struct {
	gorm.Model
	Name         string `gorm:"size:255;not null"`
	Industry     string `gorm:"size:100"`
	Location     string `gorm:"size:255"`
	ContactEmail string `gorm:"size:255"`
	Phone        string `gorm:"size:50"`

	Listings []Listing
}
