package models

import (
	"time"

	"github.com/google/uuid"
)

// PublisherResponsibility records that a publisher is qualified to perform a
// responsibility. Qualification is independent of any specific booking.
type PublisherResponsibility struct {
	PublisherID      uuid.UUID `json:"publisher_id" gorm:"type:uuid;primaryKey" validate:"required"`
	ResponsibilityID uuid.UUID `json:"responsibility_id" gorm:"type:uuid;primaryKey" validate:"required"`
	CreatedAt        time.Time `json:"created_at"`

	// Relationships
	Publisher      *Publisher      `json:"publisher,omitempty" gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE"`
	Responsibility *Responsibility `json:"responsibility,omitempty" gorm:"foreignKey:ResponsibilityID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PublisherResponsibility
func (PublisherResponsibility) TableName() string {
	return "publisher_responsibilities"
}
