package domain

import "time"

// DateLayout is the calendar-date format used to partition tracked data.
const DateLayout = "2006-01-02"

// CalendarDate returns the UTC calendar day of t as YYYY-MM-DD.
func CalendarDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ClockLayout is the HH:MM format of entry times.
const ClockLayout = "15:04"

// clockTime formats the UTC time of day of an entry.
func clockTime(t time.Time) string {
	return t.UTC().Format(ClockLayout)
}

// validClockTime reports whether s is a 24-hour HH:MM time.
func validClockTime(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}
