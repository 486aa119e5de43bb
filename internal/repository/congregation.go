package repository

import (
	"congregation-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CongregationRepository handles database operations for the congregation
type CongregationRepository struct {
	db *gorm.DB
}

// NewCongregationRepository creates a new congregation repository
func NewCongregationRepository(db *gorm.DB) *CongregationRepository {
	return &CongregationRepository{db: db}
}

// Create creates the congregation record
func (r *CongregationRepository) Create(congregation *models.Congregation) error {
	return r.db.Create(congregation).Error
}

// GetByID retrieves a congregation by ID
func (r *CongregationRepository) GetByID(id uuid.UUID) (*models.Congregation, error) {
	var congregation models.Congregation
	err := r.db.First(&congregation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &congregation, nil
}

// GetSingleton retrieves the single active congregation record
func (r *CongregationRepository) GetSingleton() (*models.Congregation, error) {
	var congregation models.Congregation
	err := r.db.Order("created_at ASC").First(&congregation).Error
	if err != nil {
		return nil, err
	}
	return &congregation, nil
}

// Count returns the number of active congregation records
func (r *CongregationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Congregation{}).Count(&count).Error
	return count, err
}

// ExistsByName reports whether an active congregation with the given name
// exists, case-insensitively
func (r *CongregationRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Congregation{}).Where("LOWER(name) = LOWER(?)", name).Count(&count).Error
	return count > 0, err
}

// Update updates the congregation record
func (r *CongregationRepository) Update(congregation *models.Congregation) error {
	return r.db.Save(congregation).Error
}
