package testutils

import (
	"time"

	"congregation-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

// CongregationFactory provides methods to create test Congregation data
type CongregationFactory struct{}

// NewCongregationFactory creates a new CongregationFactory
func NewCongregationFactory() *CongregationFactory {
	return &CongregationFactory{}
}

// Create creates a test Congregation with default values
func (f *CongregationFactory) Create() *models.Congregation {
	return &models.Congregation{
		SoftDeleteModel: models.SoftDeleteModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
		},
		Name:                      "Congregación Central",
		MidweekMeetingDayEvenYear: time.Wednesday,
		MidweekMeetingDayOddYear:  time.Thursday,
		WeekendMeetingDayEvenYear: time.Sunday,
		WeekendMeetingDayOddYear:  time.Saturday,
		Address:                   "Av. Siempre Viva 742",
		City:                      "Springfield",
	}
}

// WithName sets a custom name for the congregation
func (f *CongregationFactory) WithName(name string) *models.Congregation {
	c := f.Create()
	c.Name = name
	return c
}

// WithMeetingDays sets the same weekday rules for even and odd years
func (f *CongregationFactory) WithMeetingDays(midweek, weekend time.Weekday) *models.Congregation {
	c := f.Create()
	c.MidweekMeetingDayEvenYear = midweek
	c.MidweekMeetingDayOddYear = midweek
	c.WeekendMeetingDayEvenYear = weekend
	c.WeekendMeetingDayOddYear = weekend
	return c
}

// PublisherFactory provides methods to create test Publisher data
type PublisherFactory struct{}

// NewPublisherFactory creates a new PublisherFactory
func NewPublisherFactory() *PublisherFactory {
	return &PublisherFactory{}
}

// Create creates a test Publisher with default values
func (f *PublisherFactory) Create() *models.Publisher {
	return &models.Publisher{
		SoftDeleteModel: models.SoftDeleteModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
		},
		FirstName:      "Juan",
		LastName:       "Pérez",
		MotherLastName: "García",
		Phone:          "+52-555-0123",
		Email:          "juan.perez@test.com",
		Gender:         models.GenderMale,
	}
}

// WithName sets custom first and last names for the publisher
func (f *PublisherFactory) WithName(first, last string) *models.Publisher {
	p := f.Create()
	p.FirstName = first
	p.LastName = last
	return p
}

// WithGender sets a custom gender for the publisher
func (f *PublisherFactory) WithGender(gender models.Gender) *models.Publisher {
	p := f.Create()
	p.Gender = gender
	return p
}

// WithPrivilege sets a privilege tier for the publisher
func (f *PublisherFactory) WithPrivilege(privilege models.Privilege) *models.Publisher {
	p := f.Create()
	p.Privilege = &privilege
	return p
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department with default values
func (f *DepartmentFactory) Create() *models.Department {
	return &models.Department{
		SoftDeleteModel: models.SoftDeleteModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
		},
		Name:     "Sonido",
		IsActive: true,
	}
}

// WithName sets a custom name for the department
func (f *DepartmentFactory) WithName(name string) *models.Department {
	d := f.Create()
	d.Name = name
	return d
}

// WithResponsible sets the responsible publisher for the department
func (f *DepartmentFactory) WithResponsible(publisherID uuid.UUID) *models.Department {
	d := f.Create()
	d.ResponsiblePublisherID = &publisherID
	return d
}

// ResponsibilityFactory provides methods to create test Responsibility data
type ResponsibilityFactory struct{}

// NewResponsibilityFactory creates a new ResponsibilityFactory
func NewResponsibilityFactory() *ResponsibilityFactory {
	return &ResponsibilityFactory{}
}

// Create creates a test Responsibility with default values
func (f *ResponsibilityFactory) Create() *models.Responsibility {
	return &models.Responsibility{
		SoftDeleteModel: models.SoftDeleteModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
		},
		Name:        "Audio",
		Description: "Operación de la consola de audio",
	}
}

// WithName sets a custom name for the responsibility
func (f *ResponsibilityFactory) WithName(name string) *models.Responsibility {
	r := f.Create()
	r.Name = name
	return r
}

// WithDepartment sets the owning department for the responsibility
func (f *ResponsibilityFactory) WithDepartment(departmentID uuid.UUID) *models.Responsibility {
	r := f.Create()
	r.DepartmentID = &departmentID
	return r
}

// MeetingScheduleFactory provides methods to create test MeetingSchedule data
type MeetingScheduleFactory struct{}

// NewMeetingScheduleFactory creates a new MeetingScheduleFactory
func NewMeetingScheduleFactory() *MeetingScheduleFactory {
	return &MeetingScheduleFactory{}
}

// Create creates a midweek schedule for a fixed week in 2025
func (f *MeetingScheduleFactory) Create() *models.MeetingSchedule {
	// Monday of ISO week 10, 2025
	ms := models.NewMeetingSchedule(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), models.MeetingTypeMidweek)
	ms.ID = uuid.New()
	ms.CreatedAt = time.Now()
	ms.UpdatedAt = time.Now()
	return ms
}

// ForWeek creates a schedule keyed to the Monday of the given ISO week
func (f *MeetingScheduleFactory) ForWeek(year, week int, meetingType models.MeetingType) *models.MeetingSchedule {
	// Jan 4 is always in ISO week 1
	jan4 := time.Date(year, 1, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -(int(jan4.Weekday())+6)%7)
	monday = monday.AddDate(0, 0, (week-1)*7)

	ms := models.NewMeetingSchedule(monday, meetingType)
	ms.ID = uuid.New()
	ms.CreatedAt = time.Now()
	ms.UpdatedAt = time.Now()
	return ms
}

// AssignmentFactory provides methods to create test ResponsibilityAssignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates an assignment linking the three given records
func (f *AssignmentFactory) Create(meetingScheduleID, responsibilityID, publisherID uuid.UUID) *models.ResponsibilityAssignment {
	return &models.ResponsibilityAssignment{
		MeetingScheduleID: meetingScheduleID,
		ResponsibilityID:  responsibilityID,
		PublisherID:       publisherID,
		CreatedAt:         time.Now(),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Congregation    *CongregationFactory
	Publisher       *PublisherFactory
	Department      *DepartmentFactory
	Responsibility  *ResponsibilityFactory
	MeetingSchedule *MeetingScheduleFactory
	Assignment      *AssignmentFactory
	Qualification   *QualificationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Congregation:    NewCongregationFactory(),
		Publisher:       NewPublisherFactory(),
		Department:      NewDepartmentFactory(),
		Responsibility:  NewResponsibilityFactory(),
		MeetingSchedule: NewMeetingScheduleFactory(),
		Assignment:      NewAssignmentFactory(),
		Qualification:   NewQualificationFactory(),
	}
}

// QualificationFactory provides methods to create test PublisherResponsibility data
type QualificationFactory struct{}

// NewQualificationFactory creates a new QualificationFactory
func NewQualificationFactory() *QualificationFactory {
	return &QualificationFactory{}
}

// Create creates a qualification linking a publisher and a responsibility
func (f *QualificationFactory) Create(publisherID, responsibilityID uuid.UUID) *models.PublisherResponsibility {
	return &models.PublisherResponsibility{
		PublisherID:      publisherID,
		ResponsibilityID: responsibilityID,
		CreatedAt:        time.Now(),
	}
}
