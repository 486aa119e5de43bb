package service

import (
	"errors"
	"fmt"
	"time"

	"congregation-manager-backend/internal/database/models"
	apperrors "congregation-manager-backend/internal/errors"
	"congregation-manager-backend/internal/logger"
	"congregation-manager-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QualificationService handles business logic for publisher qualifications:
// which publishers may be assigned which responsibilities. Qualification is
// advisory; the assignment path does not require it.
type QualificationService struct {
	repo               *repository.PublisherResponsibilityRepository
	publisherRepo      *repository.PublisherRepository
	responsibilityRepo *repository.ResponsibilityRepository
	log                *logger.Logger
}

// NewQualificationService creates a new qualification service
func NewQualificationService(
	repo *repository.PublisherResponsibilityRepository,
	publisherRepo *repository.PublisherRepository,
	responsibilityRepo *repository.ResponsibilityRepository,
) *QualificationService {
	return &QualificationService{
		repo:               repo,
		publisherRepo:      publisherRepo,
		responsibilityRepo: responsibilityRepo,
		log:                logger.New(),
	}
}

// QualificationResponse represents the response for qualification operations
type QualificationResponse struct {
	PublisherID        uuid.UUID `json:"publisher_id"`
	ResponsibilityID   uuid.UUID `json:"responsibility_id"`
	PublisherName      string    `json:"publisher_name,omitempty"`
	ResponsibilityName string    `json:"responsibility_name,omitempty"`
	DepartmentName     string    `json:"department_name,omitempty"`
	CreatedAt          string    `json:"created_at"`
}

// Add qualifies a publisher for a responsibility
func (s *QualificationService) Add(publisherID, responsibilityID uuid.UUID) (*QualificationResponse, error) {
	publisherExists, err := s.publisherRepo.Exists(publisherID)
	if err != nil {
		return nil, fmt.Errorf("failed to check publisher: %w", err)
	}
	if !publisherExists {
		return nil, apperrors.ErrPublisherNotFound
	}

	responsibilityExists, err := s.responsibilityRepo.Exists(responsibilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to check responsibility: %w", err)
	}
	if !responsibilityExists {
		return nil, apperrors.ErrResponsibilityNotFound
	}

	exists, err := s.repo.Exists(publisherID, responsibilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to check qualification: %w", err)
	}
	if exists {
		return nil, apperrors.ErrQualificationExists
	}

	qualification := &models.PublisherResponsibility{
		PublisherID:      publisherID,
		ResponsibilityID: responsibilityID,
	}
	if err := s.repo.Create(qualification); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrQualificationExists
		}
		return nil, fmt.Errorf("failed to create qualification: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"publisher_id": publisherID, "responsibility_id": responsibilityID,
	}).Info("publisher qualified")

	return s.toResponse(qualification), nil
}

// Remove removes a publisher's qualification. Existing assignments are not
// touched.
func (s *QualificationService) Remove(publisherID, responsibilityID uuid.UUID) error {
	exists, err := s.repo.Exists(publisherID, responsibilityID)
	if err != nil {
		return fmt.Errorf("failed to check qualification: %w", err)
	}
	if !exists {
		return apperrors.ErrQualificationNotFound
	}

	if err := s.repo.Delete(publisherID, responsibilityID); err != nil {
		return fmt.Errorf("failed to delete qualification: %w", err)
	}
	return nil
}

// GetByPublisher retrieves a publisher's qualifications ordered by
// responsibility name
func (s *QualificationService) GetByPublisher(publisherID uuid.UUID) ([]QualificationResponse, error) {
	exists, err := s.publisherRepo.Exists(publisherID)
	if err != nil {
		return nil, fmt.Errorf("failed to check publisher: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrPublisherNotFound
	}

	qualifications, err := s.repo.GetByPublisher(publisherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list qualifications: %w", err)
	}
	return s.toResponses(qualifications), nil
}

// GetByResponsibility retrieves the qualified publishers of a responsibility
// ordered by publisher name
func (s *QualificationService) GetByResponsibility(responsibilityID uuid.UUID) ([]QualificationResponse, error) {
	exists, err := s.responsibilityRepo.Exists(responsibilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to check responsibility: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrResponsibilityNotFound
	}

	qualifications, err := s.repo.GetByResponsibility(responsibilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list qualified publishers: %w", err)
	}
	return s.toResponses(qualifications), nil
}

func (s *QualificationService) toResponse(qualification *models.PublisherResponsibility) *QualificationResponse {
	response := &QualificationResponse{
		PublisherID:      qualification.PublisherID,
		ResponsibilityID: qualification.ResponsibilityID,
		CreatedAt:        qualification.CreatedAt.Format(time.RFC3339),
	}
	if qualification.Publisher != nil {
		response.PublisherName = PublisherShortName(qualification.Publisher)
	}
	if qualification.Responsibility != nil {
		response.ResponsibilityName = qualification.Responsibility.Name
		if qualification.Responsibility.Department != nil {
			response.DepartmentName = qualification.Responsibility.Department.Name
		}
	}
	return response
}

func (s *QualificationService) toResponses(qualifications []models.PublisherResponsibility) []QualificationResponse {
	responses := make([]QualificationResponse, 0, len(qualifications))
	for i := range qualifications {
		responses = append(responses, *s.toResponse(&qualifications[i]))
	}
	return responses
}
