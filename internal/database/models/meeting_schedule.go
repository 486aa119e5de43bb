package models

import (
	"time"

	"github.com/google/uuid"
)

// MeetingSchedule is one occurrence of a meeting in a given ISO week. Date is
// the Monday of the week; the actual meeting day is resolved from the
// congregation's weekday rules at presentation time. (WeekOfYear, Year,
// MeetingType) is the natural key, backed by a unique index.
type MeetingSchedule struct {
	BaseModel
	Date        time.Time   `json:"date" gorm:"type:date;not null" validate:"required"`
	Month       int         `json:"month" gorm:"not null"`
	Year        int         `json:"year" gorm:"not null;uniqueIndex:idx_meeting_schedules_week_year_type"`
	WeekOfYear  int         `json:"week_of_year" gorm:"not null;uniqueIndex:idx_meeting_schedules_week_year_type"`
	MeetingType MeetingType `json:"meeting_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_meeting_schedules_week_year_type" validate:"required"`

	// Relationships
	ResponsibilityAssignments []ResponsibilityAssignment `json:"responsibility_assignments,omitempty" gorm:"foreignKey:MeetingScheduleID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for MeetingSchedule
func (MeetingSchedule) TableName() string {
	return "meeting_schedules"
}

// NewMeetingSchedule builds a schedule with Month, Year and WeekOfYear derived
// from the date. Year and WeekOfYear use the ISO-8601 week-year so that a
// Monday in late December belonging to week 1 of the next year keys under
// that next year; Month stays the calendar month for month reports. The
// derived fields are set once here and treated as immutable afterwards.
func NewMeetingSchedule(date time.Time, meetingType MeetingType) *MeetingSchedule {
	isoYear, isoWeek := date.ISOWeek()
	return &MeetingSchedule{
		Date:        date,
		Month:       int(date.Month()),
		Year:        isoYear,
		WeekOfYear:  isoWeek,
		MeetingType: meetingType,
	}
}

// AssignmentFor returns the publisher id booked for the given responsibility,
// if any.
func (ms *MeetingSchedule) AssignmentFor(responsibilityID uuid.UUID) (uuid.UUID, bool) {
	for _, ra := range ms.ResponsibilityAssignments {
		if ra.ResponsibilityID == responsibilityID {
			return ra.PublisherID, true
		}
	}
	return uuid.Nil, false
}
