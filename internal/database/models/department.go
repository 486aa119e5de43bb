package models

import (
	"github.com/google/uuid"
)

// Department groups responsibilities and optionally has one responsible
// publisher
type Department struct {
	SoftDeleteModel
	Name                   string     `json:"name" gorm:"size:250;not null" validate:"required,min=1,max=250"`
	IsActive               bool       `json:"is_active" gorm:"default:true"`
	ResponsiblePublisherID *uuid.UUID `json:"responsible_publisher_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	ResponsiblePublisher *Publisher       `json:"responsible_publisher,omitempty" gorm:"foreignKey:ResponsiblePublisherID"`
	Responsibilities     []Responsibility `json:"responsibilities,omitempty" gorm:"foreignKey:DepartmentID"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
