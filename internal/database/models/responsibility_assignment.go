package models

import (
	"time"

	"github.com/google/uuid"
)

// ResponsibilityAssignment books one publisher to perform one responsibility
// at one specific meeting occurrence. The composite key covers all three
// references; the assignment service keeps at most one publisher per
// (meeting, responsibility) pair.
type ResponsibilityAssignment struct {
	MeetingScheduleID uuid.UUID `json:"meeting_schedule_id" gorm:"type:uuid;primaryKey" validate:"required"`
	ResponsibilityID  uuid.UUID `json:"responsibility_id" gorm:"type:uuid;primaryKey" validate:"required"`
	PublisherID       uuid.UUID `json:"publisher_id" gorm:"type:uuid;primaryKey" validate:"required"`
	CreatedAt         time.Time `json:"created_at"`

	// Relationships
	MeetingSchedule *MeetingSchedule `json:"meeting_schedule,omitempty" gorm:"foreignKey:MeetingScheduleID"`
	Responsibility  *Responsibility  `json:"responsibility,omitempty" gorm:"foreignKey:ResponsibilityID"`
	Publisher       *Publisher       `json:"publisher,omitempty" gorm:"foreignKey:PublisherID"`
}

// TableName returns the table name for ResponsibilityAssignment
func (ResponsibilityAssignment) TableName() string {
	return "responsibility_assignments"
}
