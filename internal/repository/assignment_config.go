package repository

import (
	"congregation-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentConfigRepository handles database operations for responsibility
// capacity configuration
type AssignmentConfigRepository struct {
	db *gorm.DB
}

// NewAssignmentConfigRepository creates a new assignment config repository
func NewAssignmentConfigRepository(db *gorm.DB) *AssignmentConfigRepository {
	return &AssignmentConfigRepository{db: db}
}

// Create creates a new capacity config
func (r *AssignmentConfigRepository) Create(config *models.ResponsibilityAssignmentConfig) error {
	return r.db.Create(config).Error
}

// Get retrieves the config for a responsibility and meeting type
func (r *AssignmentConfigRepository) Get(responsibilityID uuid.UUID, meetingType models.MeetingType) (*models.ResponsibilityAssignmentConfig, error) {
	var config models.ResponsibilityAssignmentConfig
	err := r.db.First(&config,
		"responsibility_id = ? AND meeting_type = ?", responsibilityID, meetingType).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// GetByResponsibility retrieves every config of a responsibility
func (r *AssignmentConfigRepository) GetByResponsibility(responsibilityID uuid.UUID) ([]models.ResponsibilityAssignmentConfig, error) {
	var configs []models.ResponsibilityAssignmentConfig
	err := r.db.
		Where("responsibility_id = ?", responsibilityID).
		Order("meeting_type ASC").
		Find(&configs).Error
	return configs, err
}

// Update updates a capacity config
func (r *AssignmentConfigRepository) Update(config *models.ResponsibilityAssignmentConfig) error {
	return r.db.Save(config).Error
}

// Delete removes a capacity config and reports whether a row was removed
func (r *AssignmentConfigRepository) Delete(responsibilityID uuid.UUID, meetingType models.MeetingType) (bool, error) {
	res := r.db.Delete(&models.ResponsibilityAssignmentConfig{},
		"responsibility_id = ? AND meeting_type = ?", responsibilityID, meetingType)
	return res.RowsAffected > 0, res.Error
}

// CountForMeetingAndResponsibility counts current assignments for the pair.
// Capacity enforcement would compare this against the configured quantity.
func (r *AssignmentConfigRepository) CountForMeetingAndResponsibility(meetingScheduleID, responsibilityID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ResponsibilityAssignment{}).
		Where("meeting_schedule_id = ? AND responsibility_id = ?", meetingScheduleID, responsibilityID).
		Count(&count).Error
	return count, err
}
