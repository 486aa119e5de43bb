package service

import (
	"time"

	"congregation-manager-backend/internal/database/models"
	"congregation-manager-backend/internal/pdf"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CongregationServiceInterface defines the interface for congregation service
type CongregationServiceInterface interface {
	Create(req *CreateCongregationRequest) (*CongregationResponse, error)
	Get() (*CongregationResponse, error)
	Update(id uuid.UUID, req *UpdateCongregationRequest) (*CongregationResponse, error)
	Delete(id uuid.UUID) error
}

// PublisherServiceInterface defines the interface for publisher service
type PublisherServiceInterface interface {
	Create(req *CreatePublisherRequest) (*PublisherResponse, error)
	GetByID(id uuid.UUID) (*PublisherResponse, error)
	GetAll(includeDeleted bool) ([]PublisherResponse, error)
	Update(id uuid.UUID, req *UpdatePublisherRequest) (*PublisherResponse, error)
	Delete(id uuid.UUID) error
}

// DepartmentServiceInterface defines the interface for department service
type DepartmentServiceInterface interface {
	Create(req *CreateDepartmentRequest) (*DepartmentResponse, error)
	GetByID(id uuid.UUID) (*DepartmentResponse, error)
	GetAll(includeDeleted bool) ([]DepartmentResponse, error)
	Update(id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error)
	Delete(id uuid.UUID) error
}

// ResponsibilityServiceInterface defines the interface for responsibility
// service
type ResponsibilityServiceInterface interface {
	Create(req *CreateResponsibilityRequest) (*ResponsibilityResponse, error)
	GetByID(id uuid.UUID) (*ResponsibilityResponse, error)
	GetAll(includeDeleted bool) ([]ResponsibilityResponse, error)
	GetByDepartment(departmentID uuid.UUID) ([]ResponsibilityResponse, error)
	Update(id uuid.UUID, req *UpdateResponsibilityRequest) (*ResponsibilityResponse, error)
	Delete(id uuid.UUID) error
}

// QualificationServiceInterface defines the interface for qualification
// service
type QualificationServiceInterface interface {
	Add(publisherID, responsibilityID uuid.UUID) (*QualificationResponse, error)
	Remove(publisherID, responsibilityID uuid.UUID) error
	GetByPublisher(publisherID uuid.UUID) ([]QualificationResponse, error)
	GetByResponsibility(responsibilityID uuid.UUID) ([]QualificationResponse, error)
}

// AssignmentServiceInterface defines the interface for assignment service
type AssignmentServiceInterface interface {
	Assign(meetingScheduleID, responsibilityID, publisherID uuid.UUID) (bool, error)
	Create(req *AssignmentRequest) (*AssignmentResponse, error)
	Remove(meetingScheduleID, responsibilityID, publisherID uuid.UUID) (bool, error)
	GetByMeetingSchedule(meetingScheduleID uuid.UUID) ([]AssignmentResponse, error)
	GetByPublisher(publisherID uuid.UUID) ([]AssignmentResponse, error)
	GetByResponsibility(responsibilityID uuid.UUID) ([]AssignmentResponse, error)
	GetByDateRange(startDate, endDate time.Time) ([]AssignmentResponse, error)
	GetPublisherAssignmentsForMonth(publisherID uuid.UUID, month, year int) ([]AssignmentResponse, error)
}

// AssignmentConfigServiceInterface defines the interface for assignment
// config service
type AssignmentConfigServiceInterface interface {
	Create(req *AssignmentConfigRequest) (*AssignmentConfigResponse, error)
	Get(responsibilityID uuid.UUID, meetingType models.MeetingType) (*AssignmentConfigResponse, error)
	GetByResponsibility(responsibilityID uuid.UUID) ([]AssignmentConfigResponse, error)
	Update(req *AssignmentConfigRequest) (*AssignmentConfigResponse, error)
	Delete(responsibilityID uuid.UUID, meetingType models.MeetingType) error
}

// MeetingScheduleServiceInterface defines the interface for meeting schedule
// service
type MeetingScheduleServiceInterface interface {
	Create(req *CreateMeetingScheduleRequest) (*MeetingScheduleResponse, error)
	GetByID(id uuid.UUID) (*MeetingScheduleResponse, error)
	GetAll() ([]MeetingScheduleResponse, error)
	GetByWeek(weekOfYear, year int) ([]MeetingScheduleResponse, error)
	GetByMonth(month, year int) ([]MeetingScheduleResponse, error)
	GetByDateRange(startDate, endDate time.Time) ([]MeetingScheduleResponse, error)
	GetOrCreateMeetingSchedule(weekOfYear, year int, meetingType models.MeetingType) (*MeetingScheduleResponse, error)
	GetOrCreateWeekSchedules(weekOfYear, year int) ([]MeetingScheduleResponse, error)
	CopyAssignmentsToWeek(sourceWeek, sourceYear, targetWeek, targetYear int) (bool, error)
	Update(id uuid.UUID, req *UpdateMeetingScheduleRequest) (*MeetingScheduleResponse, error)
	Delete(id uuid.UUID) error
}

// ReportServiceInterface defines the interface for report service
type ReportServiceInterface interface {
	BuildMonthlySchedule(month, year int) (*pdf.MonthlySchedule, error)
	GenerateMonthlySchedulePDF(month, year int) ([]byte, error)
}
