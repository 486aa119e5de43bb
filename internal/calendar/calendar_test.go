package calendar_test

import (
	"testing"
	"time"

	"congregation-manager-backend/internal/calendar"

	"github.com/stretchr/testify/assert"
)

func TestWeekOfYearKnownDates(t *testing.T) {
	testCases := []struct {
		name string
		date time.Time
		week int
	}{
		{"first Thursday rule 2025", time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), 1},
		{"new year in previous iso week", time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), 53},
		{"mid year", time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), 10},
		{"late december in week 1", time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC), 1},
		{"leap year week 53", time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC), 53},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.week, calendar.WeekOfYear(tc.date))
		})
	}
}

func TestMondayOfISOWeekKnownDates(t *testing.T) {
	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), calendar.MondayOfISOWeek(2025, 10))
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), calendar.MondayOfISOWeek(2024, 1))
	// Week 1 of 2026 starts in December 2025
	assert.Equal(t, time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC), calendar.MondayOfISOWeek(2026, 1))
}

// Converting a week to its Monday and back must round-trip for every valid
// (year, week) pair.
func TestWeekConversionRoundTrip(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for week := 1; week <= calendar.WeeksInYear(year); week++ {
			monday := calendar.MondayOfISOWeek(year, week)
			assert.Equal(t, time.Monday, monday.Weekday())

			gotYear, gotWeek := calendar.ISOWeekYear(monday)
			assert.Equal(t, year, gotYear, "year for %d-W%02d", year, week)
			assert.Equal(t, week, gotWeek, "week for %d-W%02d", year, week)
		}
	}
}

func TestMeetingDateWithinWeek(t *testing.T) {
	monday := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		weekday time.Weekday
		offset  int
	}{
		{"monday meeting", time.Monday, 0},
		{"wednesday meeting", time.Wednesday, 2},
		{"saturday meeting", time.Saturday, 5},
		{"sunday wraps to end of week", time.Sunday, 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := calendar.MeetingDateWithinWeek(monday, tc.weekday)
			assert.Equal(t, monday.AddDate(0, 0, tc.offset), got)
			assert.Equal(t, tc.weekday, got.Weekday())
		})
	}
}

func TestWeeksInYear(t *testing.T) {
	assert.Equal(t, 53, calendar.WeeksInYear(2020))
	assert.Equal(t, 52, calendar.WeeksInYear(2021))
	assert.Equal(t, 53, calendar.WeeksInYear(2026))
}
