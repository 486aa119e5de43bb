package models

// Publisher represents a congregation member eligible for responsibility
// assignments
type Publisher struct {
	SoftDeleteModel
	FirstName      string     `json:"first_name" gorm:"size:250;not null" validate:"required,min=1,max=250"`
	LastName       string     `json:"last_name" gorm:"size:250;not null" validate:"required,min=1,max=250"`
	MotherLastName string     `json:"mother_last_name,omitempty" gorm:"size:250" validate:"max=250"`
	Phone          string     `json:"phone,omitempty" gorm:"size:50"`
	Email          string     `json:"email,omitempty" gorm:"size:250" validate:"omitempty,email"`
	Gender         Gender     `json:"gender" gorm:"type:varchar(20);not null" validate:"required"`
	Privilege      *Privilege `json:"privilege,omitempty" gorm:"type:varchar(30)"`

	// Relationships
	ResponsibleDepartments []Department              `json:"responsible_departments,omitempty" gorm:"foreignKey:ResponsiblePublisherID"`
	Qualifications         []PublisherResponsibility `json:"qualifications,omitempty" gorm:"foreignKey:PublisherID"`
}

// TableName returns the table name for Publisher
func (Publisher) TableName() string {
	return "publishers"
}
