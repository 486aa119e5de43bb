package models

import (
	"github.com/google/uuid"
)

// Responsibility represents a recurring role performed at meetings, such as
// audio or ushering, optionally owned by a department
type Responsibility struct {
	SoftDeleteModel
	Name         string     `json:"name" gorm:"size:250;not null" validate:"required,min=1,max=250"`
	Description  string     `json:"description,omitempty" gorm:"size:500" validate:"max=500"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Department     *Department               `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	QualifiedLinks []PublisherResponsibility `json:"qualified_links,omitempty" gorm:"foreignKey:ResponsibilityID"`
}

// TableName returns the table name for Responsibility
func (Responsibility) TableName() string {
	return "responsibilities"
}
