package models

import (
	"github.com/google/uuid"
)

// ResponsibilityAssignmentConfig declares how many publishers a
// responsibility needs per meeting type. Stored and manageable; the
// assignment path does not enforce the quantity.
type ResponsibilityAssignmentConfig struct {
	ResponsibilityID uuid.UUID   `json:"responsibility_id" gorm:"type:uuid;primaryKey" validate:"required"`
	MeetingType      MeetingType `json:"meeting_type" gorm:"type:varchar(20);primaryKey" validate:"required"`
	Quantity         int         `json:"quantity" gorm:"not null;default:1" validate:"min=1"`

	// Relationships
	Responsibility *Responsibility `json:"responsibility,omitempty" gorm:"foreignKey:ResponsibilityID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ResponsibilityAssignmentConfig
func (ResponsibilityAssignmentConfig) TableName() string {
	return "responsibility_assignment_configs"
}
