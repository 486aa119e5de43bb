package service

import (
	"errors"
	"fmt"
	"time"

	"congregation-manager-backend/internal/database/models"
	apperrors "congregation-manager-backend/internal/errors"
	"congregation-manager-backend/internal/logger"
	"congregation-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentService manages the publisher-responsibility-meeting join
// entity. Assign is the canonical path: it displaces any existing booking
// for the (meeting, responsibility) pair so at most one publisher performs a
// responsibility per meeting. Create is the strict additive variant kept for
// the import path.
type AssignmentService struct {
	db                 *gorm.DB
	repo               *repository.ResponsibilityAssignmentRepository
	scheduleRepo       *repository.MeetingScheduleRepository
	publisherRepo      *repository.PublisherRepository
	responsibilityRepo *repository.ResponsibilityRepository
	validator          *validator.Validate
	log                *logger.Logger
}

// NewAssignmentService creates a new assignment service. The db handle is
// used for the displace-then-insert transaction of Assign.
func NewAssignmentService(
	db *gorm.DB,
	repo *repository.ResponsibilityAssignmentRepository,
	scheduleRepo *repository.MeetingScheduleRepository,
	publisherRepo *repository.PublisherRepository,
	responsibilityRepo *repository.ResponsibilityRepository,
	validator *validator.Validate,
) *AssignmentService {
	return &AssignmentService{
		db:                 db,
		repo:               repo,
		scheduleRepo:       scheduleRepo,
		publisherRepo:      publisherRepo,
		responsibilityRepo: responsibilityRepo,
		validator:          validator,
		log:                logger.New(),
	}
}

// AssignmentRequest identifies one booking by its composite key
type AssignmentRequest struct {
	MeetingScheduleID uuid.UUID `json:"meeting_schedule_id" validate:"required"`
	ResponsibilityID  uuid.UUID `json:"responsibility_id" validate:"required"`
	PublisherID       uuid.UUID `json:"publisher_id" validate:"required"`
}

// AssignmentResponse represents the response for assignment operations
type AssignmentResponse struct {
	MeetingScheduleID  uuid.UUID          `json:"meeting_schedule_id"`
	ResponsibilityID   uuid.UUID          `json:"responsibility_id"`
	PublisherID        uuid.UUID          `json:"publisher_id"`
	ResponsibilityName string             `json:"responsibility_name,omitempty"`
	DepartmentName     string             `json:"department_name,omitempty"`
	PublisherName      string             `json:"publisher_name,omitempty"`
	MeetingDate        string             `json:"meeting_date,omitempty"`
	MeetingType        models.MeetingType `json:"meeting_type,omitempty"`
}

// Assign books a publisher onto a responsibility for a meeting, displacing
// any existing booking for the same (meeting, responsibility) pair. The
// delete and insert run in one transaction so the pair never observably has
// zero or two publishers. Returns false without error when any referenced
// entity is missing.
func (s *AssignmentService) Assign(meetingScheduleID, responsibilityID, publisherID uuid.UUID) (bool, error) {
	exists, err := s.referencedEntitiesExist(meetingScheduleID, responsibilityID, publisherID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.DeleteForMeetingAndResponsibility(meetingScheduleID, responsibilityID); err != nil {
			return err
		}
		return repo.Create(&models.ResponsibilityAssignment{
			MeetingScheduleID: meetingScheduleID,
			ResponsibilityID:  responsibilityID,
			PublisherID:       publisherID,
		})
	})
	if txErr != nil {
		return false, fmt.Errorf("failed to assign responsibility: %w", txErr)
	}

	s.log.WithFields(map[string]interface{}{
		"meeting_schedule_id": meetingScheduleID,
		"responsibility_id":   responsibilityID,
		"publisher_id":        publisherID,
	}).Info("responsibility assigned")

	return true, nil
}

// Create is the strict additive variant used by imports: referenced entities
// must exist and the exact triple must not. It never displaces.
func (s *AssignmentService) Create(req *AssignmentRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.scheduleRepo.GetByID(req.MeetingScheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get meeting schedule: %w", err)
	}
	if ok, err := s.publisherRepo.Exists(req.PublisherID); err != nil {
		return nil, fmt.Errorf("failed to check publisher: %w", err)
	} else if !ok {
		return nil, apperrors.ErrPublisherNotFound
	}
	if ok, err := s.responsibilityRepo.Exists(req.ResponsibilityID); err != nil {
		return nil, fmt.Errorf("failed to check responsibility: %w", err)
	} else if !ok {
		return nil, apperrors.ErrResponsibilityNotFound
	}

	assignment := &models.ResponsibilityAssignment{
		MeetingScheduleID: req.MeetingScheduleID,
		ResponsibilityID:  req.ResponsibilityID,
		PublisherID:       req.PublisherID,
	}
	if err := s.repo.Create(assignment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAssignmentExists
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	full, err := s.repo.Get(req.MeetingScheduleID, req.ResponsibilityID, req.PublisherID)
	if err != nil {
		return nil, fmt.Errorf("failed to read created assignment: %w", err)
	}
	response := toAssignmentResponse(full)
	return &response, nil
}

// Remove deletes an assignment by its composite key, reporting false when it
// did not exist
func (s *AssignmentService) Remove(meetingScheduleID, responsibilityID, publisherID uuid.UUID) (bool, error) {
	removed, err := s.repo.Delete(meetingScheduleID, responsibilityID, publisherID)
	if err != nil {
		return false, fmt.Errorf("failed to remove assignment: %w", err)
	}
	return removed, nil
}

// GetByMeetingSchedule retrieves a meeting's assignments
func (s *AssignmentService) GetByMeetingSchedule(meetingScheduleID uuid.UUID) ([]AssignmentResponse, error) {
	assignments, err := s.repo.GetByMeetingSchedule(meetingScheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments by meeting: %w", err)
	}
	return toAssignmentResponses(assignments), nil
}

// GetByPublisher retrieves a publisher's assignments
func (s *AssignmentService) GetByPublisher(publisherID uuid.UUID) ([]AssignmentResponse, error) {
	assignments, err := s.repo.GetByPublisher(publisherID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments by publisher: %w", err)
	}
	return toAssignmentResponses(assignments), nil
}

// GetByResponsibility retrieves a responsibility's assignments
func (s *AssignmentService) GetByResponsibility(responsibilityID uuid.UUID) ([]AssignmentResponse, error) {
	assignments, err := s.repo.GetByResponsibility(responsibilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments by responsibility: %w", err)
	}
	return toAssignmentResponses(assignments), nil
}

// GetByDateRange retrieves assignments whose meeting date falls inside the
// inclusive range
func (s *AssignmentService) GetByDateRange(startDate, endDate time.Time) ([]AssignmentResponse, error) {
	if endDate.Before(startDate) {
		return nil, apperrors.NewValidationError("end_date", "end date must not be before start date")
	}
	assignments, err := s.repo.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments by date range: %w", err)
	}
	return toAssignmentResponses(assignments), nil
}

// GetPublisherAssignmentsForMonth retrieves a publisher's assignments within
// a calendar month
func (s *AssignmentService) GetPublisherAssignmentsForMonth(publisherID uuid.UUID, month, year int) ([]AssignmentResponse, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationError("month", "Month must be between 1 and 12")
	}
	assignments, err := s.repo.GetForPublisherMonth(publisherID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get publisher month assignments: %w", err)
	}
	return toAssignmentResponses(assignments), nil
}

func (s *AssignmentService) referencedEntitiesExist(meetingScheduleID, responsibilityID, publisherID uuid.UUID) (bool, error) {
	if _, err := s.scheduleRepo.GetByID(meetingScheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check meeting schedule: %w", err)
	}
	if ok, err := s.responsibilityRepo.Exists(responsibilityID); err != nil {
		return false, fmt.Errorf("failed to check responsibility: %w", err)
	} else if !ok {
		return false, nil
	}
	if ok, err := s.publisherRepo.Exists(publisherID); err != nil {
		return false, fmt.Errorf("failed to check publisher: %w", err)
	} else if !ok {
		return false, nil
	}
	return true, nil
}

func toAssignmentResponse(assignment *models.ResponsibilityAssignment) AssignmentResponse {
	response := AssignmentResponse{
		MeetingScheduleID: assignment.MeetingScheduleID,
		ResponsibilityID:  assignment.ResponsibilityID,
		PublisherID:       assignment.PublisherID,
	}
	if assignment.Responsibility != nil {
		response.ResponsibilityName = assignment.Responsibility.Name
		if assignment.Responsibility.Department != nil {
			response.DepartmentName = assignment.Responsibility.Department.Name
		}
	}
	if assignment.Publisher != nil {
		response.PublisherName = PublisherShortName(assignment.Publisher)
	}
	if assignment.MeetingSchedule != nil {
		response.MeetingDate = assignment.MeetingSchedule.Date.Format("2006-01-02")
		response.MeetingType = assignment.MeetingSchedule.MeetingType
	}
	return response
}

func toAssignmentResponses(assignments []models.ResponsibilityAssignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		responses = append(responses, toAssignmentResponse(&assignments[i]))
	}
	return responses
}
