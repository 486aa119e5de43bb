// Package calendar provides ISO-8601 week arithmetic for meeting scheduling.
// All functions are pure and total over valid calendar ranges.
package calendar

import (
	"time"
)

// WeekOfYear returns the ISO-8601 week number of the given date: Monday-start
// weeks, week 1 being the week containing the year's first Thursday.
func WeekOfYear(date time.Time) int {
	_, week := date.ISOWeek()
	return week
}

// ISOWeekYear returns the ISO-8601 week-year and week number of the given
// date. The week-year can differ from the calendar year for dates around the
// year boundary.
func ISOWeekYear(date time.Time) (year, week int) {
	return date.ISOWeek()
}

// MondayOfISOWeek returns the Monday calendar date of the given ISO
// (year, week) pair. It is the inverse of ISOWeekYear for Mondays.
func MondayOfISOWeek(year, week int) time.Time {
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	daysSinceMonday := (int(jan4.Weekday()) + 6) % 7
	week1Monday := jan4.AddDate(0, 0, -daysSinceMonday)
	return week1Monday.AddDate(0, 0, (week-1)*7)
}

// MeetingDateWithinWeek resolves the actual meeting date inside a week from
// the week's Monday and the configured meeting weekday.
func MeetingDateWithinWeek(mondayOfWeek time.Time, meetingDay time.Weekday) time.Time {
	offset := (int(meetingDay) - int(time.Monday) + 7) % 7
	return mondayOfWeek.AddDate(0, 0, offset)
}

// WeeksInYear returns the number of ISO weeks in the given week-year, either
// 52 or 53.
func WeeksInYear(year int) int {
	// December 28th is always inside the last ISO week of its year.
	dec28 := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC)
	_, week := dec28.ISOWeek()
	return week
}
