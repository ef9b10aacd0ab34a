package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleTeen    UserRole = "teen"
	RoleManager UserRole = "manager"
)

type User struct {
	gorm.Model
	Email        string   `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string   `gorm:"not null"`
	FirstName    string   `gorm:"size:100"`
	LastName     string   `gorm:"size:100"`
	Role         UserRole `gorm:"type:varchar(20);not null"`

	// teen profile fields
	DateOfBirth *time.Time
	Address     string `gorm:"size:255"`
	City        string `gorm:"size:100"`
	State       string `gorm:"size:50"`
	Zipcode     string `gorm:"size:20"`

	// set only for managers
	CompanyID *uint
	Company   *Company
}
