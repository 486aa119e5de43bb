package repository

import (
	"time"

	"congregation-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResponsibilityAssignmentRepository handles database operations for bookings
type ResponsibilityAssignmentRepository struct {
	db *gorm.DB
}

// NewResponsibilityAssignmentRepository creates a new assignment repository
func NewResponsibilityAssignmentRepository(db *gorm.DB) *ResponsibilityAssignmentRepository {
	return &ResponsibilityAssignmentRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ResponsibilityAssignmentRepository) WithTx(tx *gorm.DB) *ResponsibilityAssignmentRepository {
	return &ResponsibilityAssignmentRepository{db: tx}
}

// Create creates a new assignment
func (r *ResponsibilityAssignmentRepository) Create(assignment *models.ResponsibilityAssignment) error {
	return r.db.Create(assignment).Error
}

// Get retrieves an assignment by its full composite key
func (r *ResponsibilityAssignmentRepository) Get(meetingScheduleID, responsibilityID, publisherID uuid.UUID) (*models.ResponsibilityAssignment, error) {
	var assignment models.ResponsibilityAssignment
	err := r.db.
		Preload("MeetingSchedule").
		Preload("Publisher").
		Preload("Responsibility.Department").
		First(&assignment,
			"meeting_schedule_id = ? AND responsibility_id = ? AND publisher_id = ?",
			meetingScheduleID, responsibilityID, publisherID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Delete removes an assignment by its full composite key and reports whether
// a row was removed
func (r *ResponsibilityAssignmentRepository) Delete(meetingScheduleID, responsibilityID, publisherID uuid.UUID) (bool, error) {
	res := r.db.Delete(&models.ResponsibilityAssignment{},
		"meeting_schedule_id = ? AND responsibility_id = ? AND publisher_id = ?",
		meetingScheduleID, responsibilityID, publisherID)
	return res.RowsAffected > 0, res.Error
}

// DeleteForMeetingAndResponsibility removes every assignment for the
// (meeting, responsibility) pair. Used by the displacing assign path.
func (r *ResponsibilityAssignmentRepository) DeleteForMeetingAndResponsibility(meetingScheduleID, responsibilityID uuid.UUID) error {
	return r.db.Delete(&models.ResponsibilityAssignment{},
		"meeting_schedule_id = ? AND responsibility_id = ?",
		meetingScheduleID, responsibilityID).Error
}

// DeleteForMeeting removes every assignment on a schedule. Used by the
// copy-week path before duplicating the source week.
func (r *ResponsibilityAssignmentRepository) DeleteForMeeting(meetingScheduleID uuid.UUID) error {
	return r.db.Delete(&models.ResponsibilityAssignment{},
		"meeting_schedule_id = ?", meetingScheduleID).Error
}

// GetByMeetingSchedule retrieves a meeting's assignments ordered by
// responsibility then publisher name
func (r *ResponsibilityAssignmentRepository) GetByMeetingSchedule(meetingScheduleID uuid.UUID) ([]models.ResponsibilityAssignment, error) {
	var assignments []models.ResponsibilityAssignment
	err := r.db.
		Preload("Publisher").
		Preload("Responsibility.Department").
		Joins("JOIN responsibilities ON responsibilities.id = responsibility_assignments.responsibility_id").
		Joins("JOIN publishers ON publishers.id = responsibility_assignments.publisher_id").
		Where("responsibility_assignments.meeting_schedule_id = ?", meetingScheduleID).
		Order("responsibilities.name ASC, publishers.first_name ASC").
		Find(&assignments).Error
	return assignments, err
}

// GetByPublisher retrieves a publisher's assignments ordered by meeting date
// then responsibility name
func (r *ResponsibilityAssignmentRepository) GetByPublisher(publisherID uuid.UUID) ([]models.ResponsibilityAssignment, error) {
	var assignments []models.ResponsibilityAssignment
	err := r.db.
		Preload("MeetingSchedule").
		Preload("Responsibility.Department").
		Joins("JOIN meeting_schedules ON meeting_schedules.id = responsibility_assignments.meeting_schedule_id").
		Joins("JOIN responsibilities ON responsibilities.id = responsibility_assignments.responsibility_id").
		Where("responsibility_assignments.publisher_id = ?", publisherID).
		Order("meeting_schedules.date ASC, responsibilities.name ASC").
		Find(&assignments).Error
	return assignments, err
}

// GetByResponsibility retrieves a responsibility's assignments ordered by
// meeting date then publisher name
func (r *ResponsibilityAssignmentRepository) GetByResponsibility(responsibilityID uuid.UUID) ([]models.ResponsibilityAssignment, error) {
	var assignments []models.ResponsibilityAssignment
	err := r.db.
		Preload("MeetingSchedule").
		Preload("Publisher").
		Joins("JOIN meeting_schedules ON meeting_schedules.id = responsibility_assignments.meeting_schedule_id").
		Joins("JOIN publishers ON publishers.id = responsibility_assignments.publisher_id").
		Where("responsibility_assignments.responsibility_id = ?", responsibilityID).
		Order("meeting_schedules.date ASC, publishers.first_name ASC").
		Find(&assignments).Error
	return assignments, err
}

// GetByDateRange retrieves assignments whose meeting date falls inside the
// range, inclusive on both ends
func (r *ResponsibilityAssignmentRepository) GetByDateRange(startDate, endDate time.Time) ([]models.ResponsibilityAssignment, error) {
	var assignments []models.ResponsibilityAssignment
	err := r.db.
		Preload("MeetingSchedule").
		Preload("Publisher").
		Preload("Responsibility.Department").
		Joins("JOIN meeting_schedules ON meeting_schedules.id = responsibility_assignments.meeting_schedule_id").
		Joins("JOIN responsibilities ON responsibilities.id = responsibility_assignments.responsibility_id").
		Where("meeting_schedules.date >= ? AND meeting_schedules.date <= ?", startDate, endDate).
		Order("meeting_schedules.date ASC, responsibilities.name ASC").
		Find(&assignments).Error
	return assignments, err
}

// GetForPublisherMonth retrieves a publisher's assignments within a calendar
// month
func (r *ResponsibilityAssignmentRepository) GetForPublisherMonth(publisherID uuid.UUID, month, year int) ([]models.ResponsibilityAssignment, error) {
	var assignments []models.ResponsibilityAssignment
	err := r.db.
		Preload("MeetingSchedule").
		Preload("Responsibility.Department").
		Joins("JOIN meeting_schedules ON meeting_schedules.id = responsibility_assignments.meeting_schedule_id").
		Joins("JOIN responsibilities ON responsibilities.id = responsibility_assignments.responsibility_id").
		Where("responsibility_assignments.publisher_id = ? AND meeting_schedules.month = ? AND EXTRACT(YEAR FROM meeting_schedules.date) = ?",
			publisherID, month, year).
		Order("meeting_schedules.date ASC, responsibilities.name ASC").
		Find(&assignments).Error
	return assignments, err
}
