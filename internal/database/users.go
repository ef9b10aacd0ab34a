package database

import (
	"github.com/maddiejones03/Workah/internal/models"

	"gorm.io/gorm"
)

func UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateTeen(user *models.User) error {
	user.Role = models.RoleTeen
	return DB.Create(user).Error
}

// RegisterManager creates the owning company and the manager user in one
// transaction. If the user insert fails (duplicate email, usually) the
// company insert is rolled back with it.
func RegisterManager(user *models.User, company *models.Company) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return err
		}

		user.Role = models.RoleManager
		user.CompanyID = &company.ID
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return nil
	})
}

// UpdatePassword replaces the stored credential hash for the given email.
// Used by the fixpassword maintenance command.
func UpdatePassword(email, passwordHash string) error {
	res := DB.Model(&models.User{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
