package repository

import (
	"congregation-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResponsibilityRepository handles database operations for responsibilities
type ResponsibilityRepository struct {
	db *gorm.DB
}

// NewResponsibilityRepository creates a new responsibility repository
func NewResponsibilityRepository(db *gorm.DB) *ResponsibilityRepository {
	return &ResponsibilityRepository{db: db}
}

// Create creates a new responsibility
func (r *ResponsibilityRepository) Create(responsibility *models.Responsibility) error {
	return r.db.Create(responsibility).Error
}

// GetByID retrieves a responsibility with its department
func (r *ResponsibilityRepository) GetByID(id uuid.UUID) (*models.Responsibility, error) {
	var responsibility models.Responsibility
	err := r.db.
		Preload("Department").
		First(&responsibility, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &responsibility, nil
}

// GetAll retrieves all active responsibilities with their departments,
// ordered by department name then responsibility name. Responsibilities
// without a department sort last. The ordering keeps report columns stable
// across runs.
func (r *ResponsibilityRepository) GetAll() ([]models.Responsibility, error) {
	var responsibilities []models.Responsibility
	err := r.db.
		Preload("Department").
		Joins("LEFT JOIN departments ON departments.id = responsibilities.department_id AND departments.deleted_at IS NULL").
		Order("departments.name ASC NULLS LAST, responsibilities.name ASC").
		Find(&responsibilities).Error
	return responsibilities, err
}

// GetAllIncludingDeleted retrieves every responsibility row, soft-deleted
// ones included. Administrative use only.
func (r *ResponsibilityRepository) GetAllIncludingDeleted() ([]models.Responsibility, error) {
	var responsibilities []models.Responsibility
	err := r.db.Unscoped().Order("name ASC").Find(&responsibilities).Error
	return responsibilities, err
}

// GetByDepartment retrieves active responsibilities owned by a department
func (r *ResponsibilityRepository) GetByDepartment(departmentID uuid.UUID) ([]models.Responsibility, error) {
	var responsibilities []models.Responsibility
	err := r.db.Where("department_id = ?", departmentID).Order("name ASC").Find(&responsibilities).Error
	return responsibilities, err
}

// Update updates a responsibility
func (r *ResponsibilityRepository) Update(responsibility *models.Responsibility) error {
	return r.db.Save(responsibility).Error
}

// Delete soft-deletes a responsibility
func (r *ResponsibilityRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Responsibility{}, "id = ?", id).Error
}

// Exists reports whether an active responsibility with the given id exists
func (r *ResponsibilityRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Responsibility{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
