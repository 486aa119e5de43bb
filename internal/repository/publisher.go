package repository

import (
	"congregation-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublisherRepository handles database operations for publishers
type PublisherRepository struct {
	db *gorm.DB
}

// NewPublisherRepository creates a new publisher repository
func NewPublisherRepository(db *gorm.DB) *PublisherRepository {
	return &PublisherRepository{db: db}
}

// Create creates a new publisher
func (r *PublisherRepository) Create(publisher *models.Publisher) error {
	return r.db.Create(publisher).Error
}

// GetByID retrieves a publisher by ID
func (r *PublisherRepository) GetByID(id uuid.UUID) (*models.Publisher, error) {
	var publisher models.Publisher
	err := r.db.
		Preload("Qualifications.Responsibility").
		Preload("ResponsibleDepartments").
		First(&publisher, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &publisher, nil
}

// GetAll retrieves all active publishers ordered by name
func (r *PublisherRepository) GetAll() ([]models.Publisher, error) {
	var publishers []models.Publisher
	err := r.db.Order("first_name ASC, last_name ASC").Find(&publishers).Error
	return publishers, err
}

// GetAllIncludingDeleted retrieves every publisher row, soft-deleted ones
// included. Administrative use only.
func (r *PublisherRepository) GetAllIncludingDeleted() ([]models.Publisher, error) {
	var publishers []models.Publisher
	err := r.db.Unscoped().Order("first_name ASC, last_name ASC").Find(&publishers).Error
	return publishers, err
}

// Update updates a publisher
func (r *PublisherRepository) Update(publisher *models.Publisher) error {
	return r.db.Save(publisher).Error
}

// Delete soft-deletes a publisher
func (r *PublisherRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Publisher{}, "id = ?", id).Error
}

// Exists reports whether an active publisher with the given id exists
func (r *PublisherRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Publisher{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
