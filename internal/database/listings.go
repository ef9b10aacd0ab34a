package database

import (
	"strings"

	"github.com/maddiejones03/Workah/internal/models"

	"gorm.io/gorm"
)

// ListingRow is a listing joined with the name of its owning company,
// as shown on the landing page.
type ListingRow struct {
	models.Listing
	CompanyName string
}

// SearchQuery holds the optional landing-page filters. Empty fields add
// no predicate.
type SearchQuery struct {
	Search   string // matches title or description
	Location string
	Age      string // matches the listing's age range
}

// SearchListings composes the filter predicates conjunctively. The free
// text term is a disjunction across title and description. Matching is a
// case-insensitive substring match via LOWER() LIKE, which behaves the
// same on postgres and the sqlite test driver.
func SearchListings(q SearchQuery) ([]ListingRow, error) {
	dbq := DB.Model(&models.Listing{}).
		Select("listings.*, companies.name AS company_name").
		Joins("JOIN companies ON companies.id = listings.company_id")

	if q.Search != "" {
		term := "%" + strings.ToLower(q.Search) + "%"
		dbq = dbq.Where("LOWER(listings.title) LIKE ? OR LOWER(listings.description) LIKE ?", term, term)
	}
	if q.Location != "" {
		dbq = dbq.Where("LOWER(listings.location) LIKE ?", "%"+strings.ToLower(q.Location)+"%")
	}
	if q.Age != "" {
		dbq = dbq.Where("LOWER(listings.age_range) LIKE ?", "%"+strings.ToLower(q.Age)+"%")
	}

	var rows []ListingRow
	if err := dbq.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func CreateListing(listing *models.Listing) error {
	return DB.Create(listing).Error
}

// ListingByOwner loads a listing only when it belongs to the given
// company. A wrong id and a wrong owner are indistinguishable: both come
// back as gorm.ErrRecordNotFound.
func ListingByOwner(id, companyID uint) (*models.Listing, error) {
	var listing models.Listing
	err := DB.Where("id = ? AND company_id = ?", id, companyID).First(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// UpdateListing applies a partial field set to an owned listing. The
// owner condition is part of the WHERE clause, so a mismatched owner
// updates zero rows and is reported as not found.
func UpdateListing(id, companyID uint, fields map[string]interface{}) error {
	res := DB.Model(&models.Listing{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func DeleteListing(id, companyID uint) error {
	res := DB.Where("id = ? AND company_id = ?", id, companyID).
		Delete(&models.Listing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListingsByCompany returns the dashboard view for one company, newest
// first.
func ListingsByCompany(companyID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := DB.Where("company_id = ?", companyID).
		Order("created_at desc").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// ListingByID loads a listing regardless of owner, for the public apply
// page.
func ListingByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := DB.Preload("Company").First(&listing, id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}
