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

// DepartmentService handles business logic for departments
type DepartmentService struct {
	repo          *repository.DepartmentRepository
	publisherRepo *repository.PublisherRepository
	validator     *validator.Validate
	log           *logger.Logger
}

// NewDepartmentService creates a new department service
func NewDepartmentService(
	repo *repository.DepartmentRepository,
	publisherRepo *repository.PublisherRepository,
	validator *validator.Validate,
) *DepartmentService {
	return &DepartmentService{
		repo:          repo,
		publisherRepo: publisherRepo,
		validator:     validator,
		log:           logger.New(),
	}
}

// CreateDepartmentRequest represents the request to create a department
type CreateDepartmentRequest struct {
	Name                   string     `json:"name" validate:"required,min=1,max=250"`
	IsActive               *bool      `json:"is_active,omitempty"`
	ResponsiblePublisherID *uuid.UUID `json:"responsible_publisher_id,omitempty"`
}

// UpdateDepartmentRequest represents the request to update a department.
// ClearResponsible removes the responsible publisher without replacing them.
type UpdateDepartmentRequest struct {
	Name                   *string    `json:"name,omitempty" validate:"omitempty,min=1,max=250"`
	IsActive               *bool      `json:"is_active,omitempty"`
	ResponsiblePublisherID *uuid.UUID `json:"responsible_publisher_id,omitempty"`
	ClearResponsible       bool       `json:"clear_responsible,omitempty"`
}

// DepartmentResponse represents the response for department operations
type DepartmentResponse struct {
	ID                     uuid.UUID  `json:"id"`
	Name                   string     `json:"name"`
	IsActive               bool       `json:"is_active"`
	ResponsiblePublisherID *uuid.UUID `json:"responsible_publisher_id,omitempty"`
	ResponsiblePublisher   string     `json:"responsible_publisher,omitempty"`
	Deleted                bool       `json:"deleted,omitempty"`
	CreatedAt              string     `json:"created_at"`
	UpdatedAt              string     `json:"updated_at"`
}

// Create creates a new department
func (s *DepartmentService) Create(req *CreateDepartmentRequest) (*DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if req.ResponsiblePublisherID != nil {
		if err := s.requirePublisher(*req.ResponsiblePublisherID); err != nil {
			return nil, err
		}
	}

	department := &models.Department{
		Name:                   req.Name,
		IsActive:               true,
		ResponsiblePublisherID: req.ResponsiblePublisherID,
	}
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}
	if err := s.repo.Create(department); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	s.log.WithField("department_id", department.ID).Info("department created")
	return s.toResponse(department), nil
}

// GetByID retrieves a department
func (s *DepartmentService) GetByID(id uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return s.toResponse(department), nil
}

// GetAll retrieves departments ordered by name. When includeDeleted is set
// soft-deleted rows are returned as well, flagged in the response.
func (s *DepartmentService) GetAll(includeDeleted bool) ([]DepartmentResponse, error) {
	var (
		departments []models.Department
		err         error
	)
	if includeDeleted {
		departments, err = s.repo.GetAllIncludingDeleted()
	} else {
		departments, err = s.repo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]DepartmentResponse, 0, len(departments))
	for i := range departments {
		responses = append(responses, *s.toResponse(&departments[i]))
	}
	return responses, nil
}

// Update updates a department
func (s *DepartmentService) Update(id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	department, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	if req.Name != nil {
		department.Name = *req.Name
	}
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}
	if req.ClearResponsible {
		department.ResponsiblePublisherID = nil
		department.ResponsiblePublisher = nil
	} else if req.ResponsiblePublisherID != nil {
		if err := s.requirePublisher(*req.ResponsiblePublisherID); err != nil {
			return nil, err
		}
		department.ResponsiblePublisherID = req.ResponsiblePublisherID
	}

	if err := s.repo.Update(department); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	return s.toResponse(department), nil
}

// Delete soft-deletes a department. Its responsibilities stay active; they
// simply report no department until reassigned.
func (s *DepartmentService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to get department: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	s.log.WithField("department_id", id).Info("department deleted")
	return nil
}

func (s *DepartmentService) requirePublisher(id uuid.UUID) error {
	exists, err := s.publisherRepo.Exists(id)
	if err != nil {
		return fmt.Errorf("failed to check publisher: %w", err)
	}
	if !exists {
		return apperrors.ErrPublisherNotFound
	}
	return nil
}

func (s *DepartmentService) toResponse(department *models.Department) *DepartmentResponse {
	response := &DepartmentResponse{
		ID:                     department.ID,
		Name:                   department.Name,
		IsActive:               department.IsActive,
		ResponsiblePublisherID: department.ResponsiblePublisherID,
		Deleted:                department.DeletedAt.Valid,
		CreatedAt:              department.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              department.UpdatedAt.Format(time.RFC3339),
	}
	if department.ResponsiblePublisher != nil {
		response.ResponsiblePublisher = PublisherShortName(department.ResponsiblePublisher)
	}
	return response
}
