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

// CongregationService handles business logic for the congregation record.
// A deployment manages exactly one congregation: create rejects a second
// record and delete is never allowed.
type CongregationService struct {
	repo      *repository.CongregationRepository
	validator *validator.Validate
	log       *logger.Logger
}

// NewCongregationService creates a new congregation service
func NewCongregationService(repo *repository.CongregationRepository, validator *validator.Validate) *CongregationService {
	return &CongregationService{
		repo:      repo,
		validator: validator,
		log:       logger.New(),
	}
}

// CreateCongregationRequest represents the request to create the congregation
type CreateCongregationRequest struct {
	Name                      string `json:"name" validate:"required,min=1,max=250"`
	MidweekMeetingDayEvenYear int    `json:"midweek_meeting_day_even_year" validate:"min=0,max=6"`
	MidweekMeetingDayOddYear  int    `json:"midweek_meeting_day_odd_year" validate:"min=0,max=6"`
	WeekendMeetingDayEvenYear int    `json:"weekend_meeting_day_even_year" validate:"min=0,max=6"`
	WeekendMeetingDayOddYear  int    `json:"weekend_meeting_day_odd_year" validate:"min=0,max=6"`
	Address                   string `json:"address,omitempty" validate:"max=500"`
	City                      string `json:"city,omitempty" validate:"max=250"`
}

// UpdateCongregationRequest represents the request to update the congregation
type UpdateCongregationRequest struct {
	Name                      *string `json:"name,omitempty" validate:"omitempty,min=1,max=250"`
	MidweekMeetingDayEvenYear *int    `json:"midweek_meeting_day_even_year,omitempty" validate:"omitempty,min=0,max=6"`
	MidweekMeetingDayOddYear  *int    `json:"midweek_meeting_day_odd_year,omitempty" validate:"omitempty,min=0,max=6"`
	WeekendMeetingDayEvenYear *int    `json:"weekend_meeting_day_even_year,omitempty" validate:"omitempty,min=0,max=6"`
	WeekendMeetingDayOddYear  *int    `json:"weekend_meeting_day_odd_year,omitempty" validate:"omitempty,min=0,max=6"`
	Address                   *string `json:"address,omitempty" validate:"omitempty,max=500"`
	City                      *string `json:"city,omitempty" validate:"omitempty,max=250"`
}

// CongregationResponse represents the response for congregation operations
type CongregationResponse struct {
	ID                        uuid.UUID `json:"id"`
	Name                      string    `json:"name"`
	MidweekMeetingDayEvenYear int       `json:"midweek_meeting_day_even_year"`
	MidweekMeetingDayOddYear  int       `json:"midweek_meeting_day_odd_year"`
	WeekendMeetingDayEvenYear int       `json:"weekend_meeting_day_even_year"`
	WeekendMeetingDayOddYear  int       `json:"weekend_meeting_day_odd_year"`
	Address                   string    `json:"address,omitempty"`
	City                      string    `json:"city,omitempty"`
	CreatedAt                 string    `json:"created_at"`
	UpdatedAt                 string    `json:"updated_at"`
}

// Create creates the congregation record. At most one active record may
// exist, and its name must be unique among all records.
func (s *CongregationService) Create(req *CreateCongregationRequest) (*CongregationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	count, err := s.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count congregations: %w", err)
	}
	if count > 0 {
		return nil, apperrors.ErrCongregationExists
	}

	nameTaken, err := s.repo.ExistsByName(req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check congregation name: %w", err)
	}
	if nameTaken {
		return nil, apperrors.ErrCongregationNameExists
	}

	congregation := &models.Congregation{
		Name:                      req.Name,
		MidweekMeetingDayEvenYear: time.Weekday(req.MidweekMeetingDayEvenYear),
		MidweekMeetingDayOddYear:  time.Weekday(req.MidweekMeetingDayOddYear),
		WeekendMeetingDayEvenYear: time.Weekday(req.WeekendMeetingDayEvenYear),
		WeekendMeetingDayOddYear:  time.Weekday(req.WeekendMeetingDayOddYear),
		Address:                   req.Address,
		City:                      req.City,
	}
	if err := s.repo.Create(congregation); err != nil {
		return nil, fmt.Errorf("failed to create congregation: %w", err)
	}

	s.log.WithField("congregation_id", congregation.ID).Info("congregation created")
	return s.toResponse(congregation), nil
}

// Get retrieves the congregation record
func (s *CongregationService) Get() (*CongregationResponse, error) {
	congregation, err := s.repo.GetSingleton()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCongregationNotFound
		}
		return nil, fmt.Errorf("failed to get congregation: %w", err)
	}
	return s.toResponse(congregation), nil
}

// Update updates the congregation record
func (s *CongregationService) Update(id uuid.UUID, req *UpdateCongregationRequest) (*CongregationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	congregation, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCongregationNotFound
		}
		return nil, fmt.Errorf("failed to get congregation: %w", err)
	}

	if req.Name != nil {
		congregation.Name = *req.Name
	}
	if req.MidweekMeetingDayEvenYear != nil {
		congregation.MidweekMeetingDayEvenYear = time.Weekday(*req.MidweekMeetingDayEvenYear)
	}
	if req.MidweekMeetingDayOddYear != nil {
		congregation.MidweekMeetingDayOddYear = time.Weekday(*req.MidweekMeetingDayOddYear)
	}
	if req.WeekendMeetingDayEvenYear != nil {
		congregation.WeekendMeetingDayEvenYear = time.Weekday(*req.WeekendMeetingDayEvenYear)
	}
	if req.WeekendMeetingDayOddYear != nil {
		congregation.WeekendMeetingDayOddYear = time.Weekday(*req.WeekendMeetingDayOddYear)
	}
	if req.Address != nil {
		congregation.Address = *req.Address
	}
	if req.City != nil {
		congregation.City = *req.City
	}

	if err := s.repo.Update(congregation); err != nil {
		return nil, fmt.Errorf("failed to update congregation: %w", err)
	}
	return s.toResponse(congregation), nil
}

// Delete always rejects: the congregation record is permanent.
func (s *CongregationService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCongregationNotFound
		}
		return fmt.Errorf("failed to get congregation: %w", err)
	}
	return apperrors.ErrCongregationDeleteNotAllowed
}

func (s *CongregationService) toResponse(congregation *models.Congregation) *CongregationResponse {
	return &CongregationResponse{
		ID:                        congregation.ID,
		Name:                      congregation.Name,
		MidweekMeetingDayEvenYear: int(congregation.MidweekMeetingDayEvenYear),
		MidweekMeetingDayOddYear:  int(congregation.MidweekMeetingDayOddYear),
		WeekendMeetingDayEvenYear: int(congregation.WeekendMeetingDayEvenYear),
		WeekendMeetingDayOddYear:  int(congregation.WeekendMeetingDayOddYear),
		Address:                   congregation.Address,
		City:                      congregation.City,
		CreatedAt:                 congregation.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                 congregation.UpdatedAt.Format(time.RFC3339),
	}
}
