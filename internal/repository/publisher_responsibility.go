package repository

import (
	"congregation-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublisherResponsibilityRepository handles database operations for
// publisher qualifications
type PublisherResponsibilityRepository struct {
	db *gorm.DB
}

// NewPublisherResponsibilityRepository creates a new qualification repository
func NewPublisherResponsibilityRepository(db *gorm.DB) *PublisherResponsibilityRepository {
	return &PublisherResponsibilityRepository{db: db}
}

// Create creates a new qualification pair
func (r *PublisherResponsibilityRepository) Create(pr *models.PublisherResponsibility) error {
	return r.db.Create(pr).Error
}

// Get retrieves a qualification pair
func (r *PublisherResponsibilityRepository) Get(publisherID, responsibilityID uuid.UUID) (*models.PublisherResponsibility, error) {
	var pr models.PublisherResponsibility
	err := r.db.
		First(&pr, "publisher_id = ? AND responsibility_id = ?", publisherID, responsibilityID).Error
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// Exists reports whether the qualification pair exists
func (r *PublisherResponsibilityRepository) Exists(publisherID, responsibilityID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.PublisherResponsibility{}).
		Where("publisher_id = ? AND responsibility_id = ?", publisherID, responsibilityID).
		Count(&count).Error
	return count > 0, err
}

// Delete removes a qualification pair
func (r *PublisherResponsibilityRepository) Delete(publisherID, responsibilityID uuid.UUID) error {
	return r.db.Delete(&models.PublisherResponsibility{},
		"publisher_id = ? AND responsibility_id = ?", publisherID, responsibilityID).Error
}

// GetByPublisher retrieves a publisher's qualifications with responsibilities
func (r *PublisherResponsibilityRepository) GetByPublisher(publisherID uuid.UUID) ([]models.PublisherResponsibility, error) {
	var prs []models.PublisherResponsibility
	err := r.db.
		Preload("Responsibility.Department").
		Joins("JOIN responsibilities ON responsibilities.id = publisher_responsibilities.responsibility_id").
		Where("publisher_responsibilities.publisher_id = ?", publisherID).
		Order("responsibilities.name ASC").
		Find(&prs).Error
	return prs, err
}

// GetByResponsibility retrieves the qualified publishers of a responsibility
func (r *PublisherResponsibilityRepository) GetByResponsibility(responsibilityID uuid.UUID) ([]models.PublisherResponsibility, error) {
	var prs []models.PublisherResponsibility
	err := r.db.
		Preload("Publisher").
		Joins("JOIN publishers ON publishers.id = publisher_responsibilities.publisher_id").
		Where("publisher_responsibilities.responsibility_id = ?", responsibilityID).
		Order("publishers.first_name ASC, publishers.last_name ASC").
		Find(&prs).Error
	return prs, err
}
