package service

import (
	"errors"
	"fmt"
	"time"

	"congregation-manager-backend/internal/calendar"
	"congregation-manager-backend/internal/database/models"
	apperrors "congregation-manager-backend/internal/errors"
	"congregation-manager-backend/internal/logger"
	"congregation-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingScheduleService handles business logic for meeting schedules:
// lookup and CRUD, idempotent get-or-create by the (week, year, type)
// natural key, atomic week provisioning and cross-week assignment copying.
type MeetingScheduleService struct {
	db             *gorm.DB
	repo           *repository.MeetingScheduleRepository
	assignmentRepo *repository.ResponsibilityAssignmentRepository
	validator      *validator.Validate
	log            *logger.Logger
}

// NewMeetingScheduleService creates a new meeting schedule service. The db
// handle is used for the multi-statement transactions of week provisioning
// and assignment copying.
func NewMeetingScheduleService(
	db *gorm.DB,
	repo *repository.MeetingScheduleRepository,
	assignmentRepo *repository.ResponsibilityAssignmentRepository,
	validator *validator.Validate,
) *MeetingScheduleService {
	return &MeetingScheduleService{
		db:             db,
		repo:           repo,
		assignmentRepo: assignmentRepo,
		validator:      validator,
		log:            logger.New(),
	}
}

// CreateMeetingScheduleRequest represents the request to create a meeting
// schedule. Month, year and week of year are derived from the date.
type CreateMeetingScheduleRequest struct {
	Date        time.Time          `json:"date" validate:"required"`
	MeetingType models.MeetingType `json:"meeting_type" validate:"required"`
}

// UpdateMeetingScheduleRequest represents the request to update a meeting
// schedule. Derived fields are recomputed when the date changes.
type UpdateMeetingScheduleRequest struct {
	Date        *time.Time          `json:"date,omitempty"`
	MeetingType *models.MeetingType `json:"meeting_type,omitempty"`
}

// CopyWeekRequest represents the request to copy all assignments of one week
// onto another. Week and year ranges are checked by CopyAssignmentsToWeek.
type CopyWeekRequest struct {
	SourceWeek int `json:"source_week"`
	SourceYear int `json:"source_year"`
	TargetWeek int `json:"target_week"`
	TargetYear int `json:"target_year"`
}

// MeetingScheduleResponse represents the response for meeting schedule
// operations
type MeetingScheduleResponse struct {
	ID          uuid.UUID            `json:"id"`
	Date        string               `json:"date"`
	Month       int                  `json:"month"`
	Year        int                  `json:"year"`
	WeekOfYear  int                  `json:"week_of_year"`
	MeetingType models.MeetingType   `json:"meeting_type"`
	Assignments []AssignmentResponse `json:"assignments"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// Create creates a meeting schedule from an explicit date and type
func (s *MeetingScheduleService) Create(req *CreateMeetingScheduleRequest) (*MeetingScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if !req.MeetingType.IsValid() {
		return nil, apperrors.ErrInvalidMeetingType
	}

	schedule := models.NewMeetingSchedule(req.Date, req.MeetingType)
	if err := s.repo.Create(schedule); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrMeetingScheduleExists
		}
		return nil, fmt.Errorf("failed to create meeting schedule: %w", err)
	}

	return s.toResponse(schedule), nil
}

// GetByID retrieves a meeting schedule with its assignments
func (s *MeetingScheduleService) GetByID(id uuid.UUID) (*MeetingScheduleResponse, error) {
	schedule, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get meeting schedule: %w", err)
	}
	return s.toResponse(schedule), nil
}

// GetAll retrieves all meeting schedules ordered by date
func (s *MeetingScheduleService) GetAll() ([]MeetingScheduleResponse, error) {
	schedules, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list meeting schedules: %w", err)
	}
	return s.toResponses(schedules), nil
}

// GetByWeek retrieves all schedules matching the week and year, ordered by
// date
func (s *MeetingScheduleService) GetByWeek(weekOfYear, year int) ([]MeetingScheduleResponse, error) {
	schedules, err := s.repo.GetByWeek(weekOfYear, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get week schedules: %w", err)
	}
	return s.toResponses(schedules), nil
}

// GetByMonth retrieves schedules for a calendar month
func (s *MeetingScheduleService) GetByMonth(month, year int) ([]MeetingScheduleResponse, error) {
	schedules, err := s.repo.GetByMonth(month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get month schedules: %w", err)
	}
	return s.toResponses(schedules), nil
}

// GetByDateRange retrieves schedules within the inclusive date range
func (s *MeetingScheduleService) GetByDateRange(startDate, endDate time.Time) ([]MeetingScheduleResponse, error) {
	if endDate.Before(startDate) {
		return nil, apperrors.NewValidationError("end_date", "end date must not be before start date")
	}
	schedules, err := s.repo.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules by date range: %w", err)
	}
	return s.toResponses(schedules), nil
}

// GetOrCreateMeetingSchedule looks up the schedule for (week, year, type)
// and creates it when absent. The unique index on the natural key arbitrates
// concurrent creation: a loser of the race reads the winner's row instead of
// failing, so the operation behaves as an upsert-by-natural-key.
func (s *MeetingScheduleService) GetOrCreateMeetingSchedule(weekOfYear, year int, meetingType models.MeetingType) (*MeetingScheduleResponse, error) {
	if err := validateWeek(weekOfYear, year); err != nil {
		return nil, err
	}
	if !meetingType.IsValid() {
		return nil, apperrors.ErrInvalidMeetingType
	}

	existing, err := s.repo.GetByNaturalKey(weekOfYear, year, meetingType)
	if err == nil {
		return s.toResponse(existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up meeting schedule: %w", err)
	}

	monday := calendar.MondayOfISOWeek(year, weekOfYear)
	schedule := models.NewMeetingSchedule(monday, meetingType)
	if err := s.repo.Create(schedule); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the insert race; the other caller's row is the one.
			winner, lookupErr := s.repo.GetByNaturalKey(weekOfYear, year, meetingType)
			if lookupErr != nil {
				return nil, fmt.Errorf("failed to read schedule after duplicate insert: %w", lookupErr)
			}
			return s.toResponse(winner), nil
		}
		return nil, fmt.Errorf("failed to create meeting schedule: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"week": weekOfYear, "year": year, "meeting_type": meetingType,
	}).Info("meeting schedule created")

	return s.toResponse(schedule), nil
}

// GetOrCreateWeekSchedules returns the week's schedules, provisioning the
// week atomically when it is empty: either the week already has schedules
// and they are returned unchanged (missing types are not topped up), or one
// midweek and one weekend schedule are created together.
func (s *MeetingScheduleService) GetOrCreateWeekSchedules(weekOfYear, year int) ([]MeetingScheduleResponse, error) {
	if err := validateWeek(weekOfYear, year); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByWeek(weekOfYear, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get week schedules: %w", err)
	}
	if len(existing) > 0 {
		return s.toResponses(existing), nil
	}

	monday := calendar.MondayOfISOWeek(year, weekOfYear)
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		for _, meetingType := range []models.MeetingType{models.MeetingTypeMidweek, models.MeetingTypeWeekend} {
			if err := repo.Create(models.NewMeetingSchedule(monday, meetingType)); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil && !errors.Is(txErr, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("failed to provision week schedules: %w", txErr)
	}
	// On a duplicate key a concurrent caller provisioned the week first; the
	// re-read below returns that caller's rows either way.

	schedules, err := s.repo.GetByWeek(weekOfYear, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get week schedules: %w", err)
	}
	return s.toResponses(schedules), nil
}

// CopyAssignmentsToWeek copies every assignment of the source week onto the
// target week. Target schedules are provisioned when missing; for each
// source schedule with a matching-type target the target's assignments are
// replaced by copies of the source's. Source schedules without a matching
// target type are skipped. The copy runs in one transaction: any failure
// rolls back and reports false with nothing changed.
func (s *MeetingScheduleService) CopyAssignmentsToWeek(sourceWeek, sourceYear, targetWeek, targetYear int) (bool, error) {
	if err := validateWeek(sourceWeek, sourceYear); err != nil {
		return false, err
	}
	if err := validateWeek(targetWeek, targetYear); err != nil {
		return false, err
	}
	if sourceWeek == targetWeek && sourceYear == targetYear {
		return false, apperrors.NewValidationError("target_week", "target week must differ from source week")
	}

	sourceSchedules, err := s.repo.GetByWeek(sourceWeek, sourceYear)
	if err != nil {
		return false, fmt.Errorf("failed to get source week: %w", err)
	}

	targets, err := s.GetOrCreateWeekSchedules(targetWeek, targetYear)
	if err != nil {
		return false, fmt.Errorf("failed to provision target week: %w", err)
	}
	targetByType := make(map[models.MeetingType]uuid.UUID, len(targets))
	for _, t := range targets {
		targetByType[t.MeetingType] = t.ID
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		assignmentRepo := s.assignmentRepo.WithTx(tx)
		for _, source := range sourceSchedules {
			targetID, ok := targetByType[source.MeetingType]
			if !ok {
				continue
			}
			if err := assignmentRepo.DeleteForMeeting(targetID); err != nil {
				return err
			}
			for _, assignment := range source.ResponsibilityAssignments {
				copied := &models.ResponsibilityAssignment{
					MeetingScheduleID: targetID,
					ResponsibilityID:  assignment.ResponsibilityID,
					PublisherID:       assignment.PublisherID,
				}
				if err := assignmentRepo.Create(copied); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if txErr != nil {
		s.log.WithError(txErr).WithFields(map[string]interface{}{
			"source_week": sourceWeek, "source_year": sourceYear,
			"target_week": targetWeek, "target_year": targetYear,
		}).Error("copy assignments rolled back")
		return false, fmt.Errorf("failed to copy assignments: %w", txErr)
	}

	s.log.WithFields(map[string]interface{}{
		"source_week": sourceWeek, "source_year": sourceYear,
		"target_week": targetWeek, "target_year": targetYear,
	}).Info("assignments copied to week")

	return true, nil
}

// Update updates a meeting schedule's date or type, recomputing the derived
// fields when the date changes
func (s *MeetingScheduleService) Update(id uuid.UUID, req *UpdateMeetingScheduleRequest) (*MeetingScheduleResponse, error) {
	schedule, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get meeting schedule: %w", err)
	}

	if req.MeetingType != nil {
		if !req.MeetingType.IsValid() {
			return nil, apperrors.ErrInvalidMeetingType
		}
		schedule.MeetingType = *req.MeetingType
	}
	if req.Date != nil {
		derived := models.NewMeetingSchedule(*req.Date, schedule.MeetingType)
		schedule.Date = derived.Date
		schedule.Month = derived.Month
		schedule.Year = derived.Year
		schedule.WeekOfYear = derived.WeekOfYear
	}

	if err := s.repo.Update(schedule); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrMeetingScheduleExists
		}
		return nil, fmt.Errorf("failed to update meeting schedule: %w", err)
	}

	return s.toResponse(schedule), nil
}

// Delete hard-deletes a meeting schedule. Schedules still carrying
// assignments are not deletable.
func (s *MeetingScheduleService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMeetingScheduleNotFound
		}
		return fmt.Errorf("failed to get meeting schedule: %w", err)
	}

	count, err := s.repo.CountAssignments(id)
	if err != nil {
		return fmt.Errorf("failed to count assignments: %w", err)
	}
	if count > 0 {
		return apperrors.ErrScheduleHasAssignments
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete meeting schedule: %w", err)
	}
	return nil
}

func validateWeek(weekOfYear, year int) error {
	if year < 2020 || year > 2030 {
		return apperrors.NewValidationError("year", "Year must be between 2020 and 2030")
	}
	if weekOfYear < 1 || weekOfYear > calendar.WeeksInYear(year) {
		return apperrors.NewValidationError("week", fmt.Sprintf("Week must be between 1 and %d", calendar.WeeksInYear(year)))
	}
	return nil
}

func (s *MeetingScheduleService) toResponse(schedule *models.MeetingSchedule) *MeetingScheduleResponse {
	response := &MeetingScheduleResponse{
		ID:          schedule.ID,
		Date:        schedule.Date.Format("2006-01-02"),
		Month:       schedule.Month,
		Year:        schedule.Year,
		WeekOfYear:  schedule.WeekOfYear,
		MeetingType: schedule.MeetingType,
		Assignments: make([]AssignmentResponse, 0, len(schedule.ResponsibilityAssignments)),
		CreatedAt:   schedule.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   schedule.UpdatedAt.Format(time.RFC3339),
	}
	for i := range schedule.ResponsibilityAssignments {
		response.Assignments = append(response.Assignments,
			toAssignmentResponse(&schedule.ResponsibilityAssignments[i]))
	}
	return response
}

func (s *MeetingScheduleService) toResponses(schedules []models.MeetingSchedule) []MeetingScheduleResponse {
	responses := make([]MeetingScheduleResponse, 0, len(schedules))
	for i := range schedules {
		responses = append(responses, *s.toResponse(&schedules[i]))
	}
	return responses
}
