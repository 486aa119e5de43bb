package repository

import (
	"time"

	"congregation-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingScheduleRepository handles database operations for meeting schedules
type MeetingScheduleRepository struct {
	db *gorm.DB
}

// NewMeetingScheduleRepository creates a new meeting schedule repository
func NewMeetingScheduleRepository(db *gorm.DB) *MeetingScheduleRepository {
	return &MeetingScheduleRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *MeetingScheduleRepository) WithTx(tx *gorm.DB) *MeetingScheduleRepository {
	return &MeetingScheduleRepository{db: tx}
}

// withAssignments preloads the assignment children with their publisher and
// responsibility, keeping child ordering deterministic.
func (r *MeetingScheduleRepository) withAssignments() *gorm.DB {
	return r.db.
		Preload("ResponsibilityAssignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("responsibility_assignments.created_at ASC")
		}).
		Preload("ResponsibilityAssignments.Publisher").
		Preload("ResponsibilityAssignments.Responsibility.Department")
}

// Create creates a new meeting schedule
func (r *MeetingScheduleRepository) Create(schedule *models.MeetingSchedule) error {
	return r.db.Create(schedule).Error
}

// GetByID retrieves a meeting schedule with its assignments
func (r *MeetingScheduleRepository) GetByID(id uuid.UUID) (*models.MeetingSchedule, error) {
	var schedule models.MeetingSchedule
	err := r.withAssignments().First(&schedule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetAll retrieves all meeting schedules ordered by date
func (r *MeetingScheduleRepository) GetAll() ([]models.MeetingSchedule, error) {
	var schedules []models.MeetingSchedule
	err := r.withAssignments().Order("date ASC, meeting_type ASC").Find(&schedules).Error
	return schedules, err
}

// GetByDateRange retrieves schedules whose date falls inside the range,
// inclusive on both ends
func (r *MeetingScheduleRepository) GetByDateRange(startDate, endDate time.Time) ([]models.MeetingSchedule, error) {
	var schedules []models.MeetingSchedule
	err := r.withAssignments().
		Where("date >= ? AND date <= ?", startDate, endDate).
		Order("date ASC, meeting_type ASC").
		Find(&schedules).Error
	return schedules, err
}

// GetByMonth retrieves schedules for a calendar month
func (r *MeetingScheduleRepository) GetByMonth(month, year int) ([]models.MeetingSchedule, error) {
	var schedules []models.MeetingSchedule
	err := r.withAssignments().
		Where("month = ? AND EXTRACT(YEAR FROM date) = ?", month, year).
		Order("date ASC, meeting_type ASC").
		Find(&schedules).Error
	return schedules, err
}

// GetByWeek retrieves schedules for an ISO week
func (r *MeetingScheduleRepository) GetByWeek(weekOfYear, year int) ([]models.MeetingSchedule, error) {
	var schedules []models.MeetingSchedule
	err := r.withAssignments().
		Where("week_of_year = ? AND year = ?", weekOfYear, year).
		Order("date ASC, meeting_type ASC").
		Find(&schedules).Error
	return schedules, err
}

// GetByMeetingType retrieves schedules of one meeting type
func (r *MeetingScheduleRepository) GetByMeetingType(meetingType models.MeetingType) ([]models.MeetingSchedule, error) {
	var schedules []models.MeetingSchedule
	err := r.withAssignments().
		Where("meeting_type = ?", meetingType).
		Order("date ASC").
		Find(&schedules).Error
	return schedules, err
}

// GetByDateAndType retrieves the schedule for an exact date and meeting type
func (r *MeetingScheduleRepository) GetByDateAndType(date time.Time, meetingType models.MeetingType) (*models.MeetingSchedule, error) {
	var schedule models.MeetingSchedule
	err := r.withAssignments().
		Where("date = ? AND meeting_type = ?", date, meetingType).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetByNaturalKey retrieves the schedule for (week, year, type)
func (r *MeetingScheduleRepository) GetByNaturalKey(weekOfYear, year int, meetingType models.MeetingType) (*models.MeetingSchedule, error) {
	var schedule models.MeetingSchedule
	err := r.withAssignments().
		Where("week_of_year = ? AND year = ? AND meeting_type = ?", weekOfYear, year, meetingType).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Update updates a meeting schedule
func (r *MeetingScheduleRepository) Update(schedule *models.MeetingSchedule) error {
	return r.db.Save(schedule).Error
}

// Delete hard-deletes a meeting schedule. The foreign key on assignments
// restricts deletion while bookings exist.
func (r *MeetingScheduleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MeetingSchedule{}, "id = ?", id).Error
}

// CountAssignments returns the number of assignments on a schedule
func (r *MeetingScheduleRepository) CountAssignments(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ResponsibilityAssignment{}).
		Where("meeting_schedule_id = ?", id).
		Count(&count).Error
	return count, err
}
