package repository

import (
	"congregation-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department
func (r *DepartmentRepository) Create(department *models.Department) error {
	return r.db.Create(department).Error
}

// GetByID retrieves a department with its responsibilities
func (r *DepartmentRepository) GetByID(id uuid.UUID) (*models.Department, error) {
	var department models.Department
	err := r.db.
		Preload("ResponsiblePublisher").
		Preload("Responsibilities").
		First(&department, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// GetAll retrieves all active departments ordered by name
func (r *DepartmentRepository) GetAll() ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Preload("ResponsiblePublisher").Order("name ASC").Find(&departments).Error
	return departments, err
}

// GetAllIncludingDeleted retrieves every department row, soft-deleted ones
// included. Administrative use only.
func (r *DepartmentRepository) GetAllIncludingDeleted() ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Unscoped().Order("name ASC").Find(&departments).Error
	return departments, err
}

// Update updates a department
func (r *DepartmentRepository) Update(department *models.Department) error {
	return r.db.Save(department).Error
}

// Delete soft-deletes a department
func (r *DepartmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Department{}, "id = ?", id).Error
}

// Exists reports whether an active department with the given id exists
func (r *DepartmentRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Department{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
