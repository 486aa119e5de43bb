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

// PublisherService handles business logic for publishers
type PublisherService struct {
	repo      *repository.PublisherRepository
	validator *validator.Validate
	log       *logger.Logger
}

// NewPublisherService creates a new publisher service
func NewPublisherService(repo *repository.PublisherRepository, validator *validator.Validate) *PublisherService {
	return &PublisherService{
		repo:      repo,
		validator: validator,
		log:       logger.New(),
	}
}

// CreatePublisherRequest represents the request to create a publisher
type CreatePublisherRequest struct {
	FirstName      string            `json:"first_name" validate:"required,min=1,max=250"`
	LastName       string            `json:"last_name" validate:"required,min=1,max=250"`
	MotherLastName string            `json:"mother_last_name,omitempty" validate:"max=250"`
	Phone          string            `json:"phone,omitempty" validate:"max=50"`
	Email          string            `json:"email,omitempty" validate:"omitempty,email"`
	Gender         models.Gender     `json:"gender" validate:"required"`
	Privilege      *models.Privilege `json:"privilege,omitempty"`
}

// UpdatePublisherRequest represents the request to update a publisher
type UpdatePublisherRequest struct {
	FirstName      *string           `json:"first_name,omitempty" validate:"omitempty,min=1,max=250"`
	LastName       *string           `json:"last_name,omitempty" validate:"omitempty,min=1,max=250"`
	MotherLastName *string           `json:"mother_last_name,omitempty" validate:"omitempty,max=250"`
	Phone          *string           `json:"phone,omitempty" validate:"omitempty,max=50"`
	Email          *string           `json:"email,omitempty" validate:"omitempty,email"`
	Gender         *models.Gender    `json:"gender,omitempty"`
	Privilege      *models.Privilege `json:"privilege,omitempty"`
}

// PublisherResponse represents the response for publisher operations
type PublisherResponse struct {
	ID             uuid.UUID         `json:"id"`
	FirstName      string            `json:"first_name"`
	LastName       string            `json:"last_name"`
	MotherLastName string            `json:"mother_last_name,omitempty"`
	ShortName      string            `json:"short_name"`
	Phone          string            `json:"phone,omitempty"`
	Email          string            `json:"email,omitempty"`
	Gender         models.Gender     `json:"gender"`
	Privilege      *models.Privilege `json:"privilege,omitempty"`
	Deleted        bool              `json:"deleted,omitempty"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}

// Create creates a new publisher
func (s *PublisherService) Create(req *CreatePublisherRequest) (*PublisherResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if !req.Gender.IsValid() {
		return nil, apperrors.NewValidationError("gender", "gender must be male or female")
	}
	if req.Privilege != nil && !req.Privilege.IsValid() {
		return nil, apperrors.NewValidationError("privilege", "privilege must be elder or ministerial_servant")
	}

	publisher := &models.Publisher{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		MotherLastName: req.MotherLastName,
		Phone:          req.Phone,
		Email:          req.Email,
		Gender:         req.Gender,
		Privilege:      req.Privilege,
	}
	if err := s.repo.Create(publisher); err != nil {
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	s.log.WithField("publisher_id", publisher.ID).Info("publisher created")
	return s.toResponse(publisher), nil
}

// GetByID retrieves a publisher with qualifications
func (s *PublisherService) GetByID(id uuid.UUID) (*PublisherResponse, error) {
	publisher, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPublisherNotFound
		}
		return nil, fmt.Errorf("failed to get publisher: %w", err)
	}
	return s.toResponse(publisher), nil
}

// GetAll retrieves publishers ordered by name. When includeDeleted is set
// soft-deleted rows are returned as well, flagged in the response.
func (s *PublisherService) GetAll(includeDeleted bool) ([]PublisherResponse, error) {
	var (
		publishers []models.Publisher
		err        error
	)
	if includeDeleted {
		publishers, err = s.repo.GetAllIncludingDeleted()
	} else {
		publishers, err = s.repo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list publishers: %w", err)
	}

	responses := make([]PublisherResponse, 0, len(publishers))
	for i := range publishers {
		responses = append(responses, *s.toResponse(&publishers[i]))
	}
	return responses, nil
}

// Update updates a publisher
func (s *PublisherService) Update(id uuid.UUID, req *UpdatePublisherRequest) (*PublisherResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	publisher, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPublisherNotFound
		}
		return nil, fmt.Errorf("failed to get publisher: %w", err)
	}

	if req.FirstName != nil {
		publisher.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		publisher.LastName = *req.LastName
	}
	if req.MotherLastName != nil {
		publisher.MotherLastName = *req.MotherLastName
	}
	if req.Phone != nil {
		publisher.Phone = *req.Phone
	}
	if req.Email != nil {
		publisher.Email = *req.Email
	}
	if req.Gender != nil {
		if !req.Gender.IsValid() {
			return nil, apperrors.NewValidationError("gender", "gender must be male or female")
		}
		publisher.Gender = *req.Gender
	}
	if req.Privilege != nil {
		if !req.Privilege.IsValid() {
			return nil, apperrors.NewValidationError("privilege", "privilege must be elder or ministerial_servant")
		}
		publisher.Privilege = req.Privilege
	}

	if err := s.repo.Update(publisher); err != nil {
		return nil, fmt.Errorf("failed to update publisher: %w", err)
	}
	return s.toResponse(publisher), nil
}

// Delete soft-deletes a publisher. Past assignments keep pointing at the row.
func (s *PublisherService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPublisherNotFound
		}
		return fmt.Errorf("failed to get publisher: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete publisher: %w", err)
	}
	s.log.WithField("publisher_id", id).Info("publisher deleted")
	return nil
}

func (s *PublisherService) toResponse(publisher *models.Publisher) *PublisherResponse {
	return &PublisherResponse{
		ID:             publisher.ID,
		FirstName:      publisher.FirstName,
		LastName:       publisher.LastName,
		MotherLastName: publisher.MotherLastName,
		ShortName:      PublisherShortName(publisher),
		Phone:          publisher.Phone,
		Email:          publisher.Email,
		Gender:         publisher.Gender,
		Privilege:      publisher.Privilege,
		Deleted:        publisher.DeletedAt.Valid,
		CreatedAt:      publisher.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      publisher.UpdatedAt.Format(time.RFC3339),
	}
}
