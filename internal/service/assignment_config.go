package service

import (
	"errors"
	"fmt"

	"congregation-manager-backend/internal/database/models"
	apperrors "congregation-manager-backend/internal/errors"
	"congregation-manager-backend/internal/logger"
	"congregation-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentConfigService handles business logic for responsibility capacity
// configuration: how many publishers a responsibility wants per meeting type.
type AssignmentConfigService struct {
	repo               *repository.AssignmentConfigRepository
	responsibilityRepo *repository.ResponsibilityRepository
	validator          *validator.Validate
	log                *logger.Logger
}

// NewAssignmentConfigService creates a new assignment config service
func NewAssignmentConfigService(
	repo *repository.AssignmentConfigRepository,
	responsibilityRepo *repository.ResponsibilityRepository,
	validator *validator.Validate,
) *AssignmentConfigService {
	return &AssignmentConfigService{
		repo:               repo,
		responsibilityRepo: responsibilityRepo,
		validator:          validator,
		log:                logger.New(),
	}
}

// AssignmentConfigRequest represents the request to create or update a
// capacity config
type AssignmentConfigRequest struct {
	ResponsibilityID uuid.UUID          `json:"responsibility_id" validate:"required"`
	MeetingType      models.MeetingType `json:"meeting_type" validate:"required"`
	Quantity         int                `json:"quantity" validate:"required,min=1"`
}

// AssignmentConfigResponse represents the response for capacity config
// operations
type AssignmentConfigResponse struct {
	ResponsibilityID   uuid.UUID          `json:"responsibility_id"`
	ResponsibilityName string             `json:"responsibility_name,omitempty"`
	MeetingType        models.MeetingType `json:"meeting_type"`
	Quantity           int                `json:"quantity"`
}

// Create creates a capacity config for a responsibility and meeting type
func (s *AssignmentConfigService) Create(req *AssignmentConfigRequest) (*AssignmentConfigResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if !req.MeetingType.IsValid() {
		return nil, apperrors.ErrInvalidMeetingType
	}

	exists, err := s.responsibilityRepo.Exists(req.ResponsibilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to check responsibility: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrResponsibilityNotFound
	}

	config := &models.ResponsibilityAssignmentConfig{
		ResponsibilityID: req.ResponsibilityID,
		MeetingType:      req.MeetingType,
		Quantity:         req.Quantity,
	}
	if err := s.repo.Create(config); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAssignmentConfigExists
		}
		return nil, fmt.Errorf("failed to create assignment config: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"responsibility_id": req.ResponsibilityID,
		"meeting_type":      req.MeetingType,
		"quantity":          req.Quantity,
	}).Info("assignment config created")

	return s.toResponse(config), nil
}

// Get retrieves the capacity config for a responsibility and meeting type
func (s *AssignmentConfigService) Get(responsibilityID uuid.UUID, meetingType models.MeetingType) (*AssignmentConfigResponse, error) {
	if !meetingType.IsValid() {
		return nil, apperrors.ErrInvalidMeetingType
	}

	config, err := s.repo.Get(responsibilityID, meetingType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentConfigNotFound
		}
		return nil, fmt.Errorf("failed to get assignment config: %w", err)
	}
	return s.toResponse(config), nil
}

// GetByResponsibility retrieves every capacity config of a responsibility
func (s *AssignmentConfigService) GetByResponsibility(responsibilityID uuid.UUID) ([]AssignmentConfigResponse, error) {
	exists, err := s.responsibilityRepo.Exists(responsibilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to check responsibility: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrResponsibilityNotFound
	}

	configs, err := s.repo.GetByResponsibility(responsibilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignment configs: %w", err)
	}

	responses := make([]AssignmentConfigResponse, 0, len(configs))
	for i := range configs {
		responses = append(responses, *s.toResponse(&configs[i]))
	}
	return responses, nil
}

// Update changes the quantity of an existing capacity config
func (s *AssignmentConfigService) Update(req *AssignmentConfigRequest) (*AssignmentConfigResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if !req.MeetingType.IsValid() {
		return nil, apperrors.ErrInvalidMeetingType
	}

	config, err := s.repo.Get(req.ResponsibilityID, req.MeetingType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentConfigNotFound
		}
		return nil, fmt.Errorf("failed to get assignment config: %w", err)
	}

	config.Quantity = req.Quantity
	if err := s.repo.Update(config); err != nil {
		return nil, fmt.Errorf("failed to update assignment config: %w", err)
	}
	return s.toResponse(config), nil
}

// Delete removes a capacity config
func (s *AssignmentConfigService) Delete(responsibilityID uuid.UUID, meetingType models.MeetingType) error {
	if !meetingType.IsValid() {
		return apperrors.ErrInvalidMeetingType
	}

	deleted, err := s.repo.Delete(responsibilityID, meetingType)
	if err != nil {
		return fmt.Errorf("failed to delete assignment config: %w", err)
	}
	if !deleted {
		return apperrors.ErrAssignmentConfigNotFound
	}
	return nil
}

func (s *AssignmentConfigService) toResponse(config *models.ResponsibilityAssignmentConfig) *AssignmentConfigResponse {
	response := &AssignmentConfigResponse{
		ResponsibilityID: config.ResponsibilityID,
		MeetingType:      config.MeetingType,
		Quantity:         config.Quantity,
	}
	if config.Responsibility != nil {
		response.ResponsibilityName = config.Responsibility.Name
	}
	return response
}
