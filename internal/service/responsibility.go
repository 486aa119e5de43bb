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

// ResponsibilityService handles business logic for responsibilities
type ResponsibilityService struct {
	repo           *repository.ResponsibilityRepository
	departmentRepo *repository.DepartmentRepository
	validator      *validator.Validate
	log            *logger.Logger
}

// NewResponsibilityService creates a new responsibility service
func NewResponsibilityService(
	repo *repository.ResponsibilityRepository,
	departmentRepo *repository.DepartmentRepository,
	validator *validator.Validate,
) *ResponsibilityService {
	return &ResponsibilityService{
		repo:           repo,
		departmentRepo: departmentRepo,
		validator:      validator,
		log:            logger.New(),
	}
}

// CreateResponsibilityRequest represents the request to create a
// responsibility
type CreateResponsibilityRequest struct {
	Name         string     `json:"name" validate:"required,min=1,max=250"`
	Description  string     `json:"description,omitempty" validate:"max=500"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
}

// UpdateResponsibilityRequest represents the request to update a
// responsibility. ClearDepartment detaches it without reattaching.
type UpdateResponsibilityRequest struct {
	Name            *string    `json:"name,omitempty" validate:"omitempty,min=1,max=250"`
	Description     *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	DepartmentID    *uuid.UUID `json:"department_id,omitempty"`
	ClearDepartment bool       `json:"clear_department,omitempty"`
}

// ResponsibilityResponse represents the response for responsibility
// operations
type ResponsibilityResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	DepartmentID   *uuid.UUID `json:"department_id,omitempty"`
	DepartmentName string     `json:"department_name,omitempty"`
	Deleted        bool       `json:"deleted,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// Create creates a new responsibility
func (s *ResponsibilityService) Create(req *CreateResponsibilityRequest) (*ResponsibilityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if req.DepartmentID != nil {
		if err := s.requireDepartment(*req.DepartmentID); err != nil {
			return nil, err
		}
	}

	responsibility := &models.Responsibility{
		Name:         req.Name,
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
	}
	if err := s.repo.Create(responsibility); err != nil {
		return nil, fmt.Errorf("failed to create responsibility: %w", err)
	}

	s.log.WithField("responsibility_id", responsibility.ID).Info("responsibility created")
	return s.toResponse(responsibility), nil
}

// GetByID retrieves a responsibility with its department
func (s *ResponsibilityService) GetByID(id uuid.UUID) (*ResponsibilityResponse, error) {
	responsibility, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResponsibilityNotFound
		}
		return nil, fmt.Errorf("failed to get responsibility: %w", err)
	}
	return s.toResponse(responsibility), nil
}

// GetAll retrieves responsibilities in report column order: by department
// name, responsibilities without a department last. When includeDeleted is
// set every row is returned, ordered by name only.
func (s *ResponsibilityService) GetAll(includeDeleted bool) ([]ResponsibilityResponse, error) {
	var (
		responsibilities []models.Responsibility
		err              error
	)
	if includeDeleted {
		responsibilities, err = s.repo.GetAllIncludingDeleted()
	} else {
		responsibilities, err = s.repo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list responsibilities: %w", err)
	}

	responses := make([]ResponsibilityResponse, 0, len(responsibilities))
	for i := range responsibilities {
		responses = append(responses, *s.toResponse(&responsibilities[i]))
	}
	return responses, nil
}

// GetByDepartment retrieves the active responsibilities of a department
func (s *ResponsibilityService) GetByDepartment(departmentID uuid.UUID) ([]ResponsibilityResponse, error) {
	if err := s.requireDepartment(departmentID); err != nil {
		return nil, err
	}

	responsibilities, err := s.repo.GetByDepartment(departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list department responsibilities: %w", err)
	}
	responses := make([]ResponsibilityResponse, 0, len(responsibilities))
	for i := range responsibilities {
		responses = append(responses, *s.toResponse(&responsibilities[i]))
	}
	return responses, nil
}

// Update updates a responsibility
func (s *ResponsibilityService) Update(id uuid.UUID, req *UpdateResponsibilityRequest) (*ResponsibilityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	responsibility, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResponsibilityNotFound
		}
		return nil, fmt.Errorf("failed to get responsibility: %w", err)
	}

	if req.Name != nil {
		responsibility.Name = *req.Name
	}
	if req.Description != nil {
		responsibility.Description = *req.Description
	}
	if req.ClearDepartment {
		responsibility.DepartmentID = nil
		responsibility.Department = nil
	} else if req.DepartmentID != nil {
		if err := s.requireDepartment(*req.DepartmentID); err != nil {
			return nil, err
		}
		responsibility.DepartmentID = req.DepartmentID
	}

	if err := s.repo.Update(responsibility); err != nil {
		return nil, fmt.Errorf("failed to update responsibility: %w", err)
	}
	return s.toResponse(responsibility), nil
}

// Delete soft-deletes a responsibility. The report drops its column; past
// assignments keep the row reachable for history queries.
func (s *ResponsibilityService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrResponsibilityNotFound
		}
		return fmt.Errorf("failed to get responsibility: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete responsibility: %w", err)
	}
	s.log.WithField("responsibility_id", id).Info("responsibility deleted")
	return nil
}

func (s *ResponsibilityService) requireDepartment(id uuid.UUID) error {
	exists, err := s.departmentRepo.Exists(id)
	if err != nil {
		return fmt.Errorf("failed to check department: %w", err)
	}
	if !exists {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

func (s *ResponsibilityService) toResponse(responsibility *models.Responsibility) *ResponsibilityResponse {
	response := &ResponsibilityResponse{
		ID:           responsibility.ID,
		Name:         responsibility.Name,
		Description:  responsibility.Description,
		DepartmentID: responsibility.DepartmentID,
		Deleted:      responsibility.DeletedAt.Valid,
		CreatedAt:    responsibility.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    responsibility.UpdatedAt.Format(time.RFC3339),
	}
	if responsibility.Department != nil {
		response.DepartmentName = responsibility.Department.Name
	}
	return response
}
