package models

import (
	"time"
)

// Congregation holds the meeting-day rules for the single congregation a
// deployment manages. At most one non-deleted record may exist; the service
// layer enforces this on create.
type Congregation struct {
	SoftDeleteModel
	Name                      string       `json:"name" gorm:"size:250;not null" validate:"required,min=1,max=250"`
	MidweekMeetingDayEvenYear time.Weekday `json:"midweek_meeting_day_even_year" gorm:"not null"`
	MidweekMeetingDayOddYear  time.Weekday `json:"midweek_meeting_day_odd_year" gorm:"not null"`
	WeekendMeetingDayEvenYear time.Weekday `json:"weekend_meeting_day_even_year" gorm:"not null"`
	WeekendMeetingDayOddYear  time.Weekday `json:"weekend_meeting_day_odd_year" gorm:"not null"`
	Address                   string       `json:"address,omitempty" gorm:"size:500"`
	City                      string       `json:"city,omitempty" gorm:"size:250"`
}

// TableName returns the table name for Congregation
func (Congregation) TableName() string {
	return "congregations"
}

// MeetingDay returns the configured weekday for the given meeting type in the
// given calendar year. Even and odd years carry independent rules.
func (c *Congregation) MeetingDay(meetingType MeetingType, year int) time.Weekday {
	even := year%2 == 0
	if meetingType == MeetingTypeMidweek {
		if even {
			return c.MidweekMeetingDayEvenYear
		}
		return c.MidweekMeetingDayOddYear
	}
	if even {
		return c.WeekendMeetingDayEvenYear
	}
	return c.WeekendMeetingDayOddYear
}
