// Package dates holds day-granular date helpers that never convert between zones.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// DatePortion returns the YYYY-MM-DD part of a date or timestamp string without any timezone conversion,
// so "2025-09-20T17:00:00.000Z" stays on 2025-09-20.
func DatePortion(value string) string {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, "T "); i >= 0 {
		return value[:i]
	}
	return value
}

// ParseLocalDate parses the date portion of value as a calendar date in time.Local.
func ParseLocalDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, DatePortion(value), time.Local)
}

// LocalDateKey formats t from its local year, month and day.
func LocalDateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

func IndonesianMonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return indonesianMonths[month-1]
}

// MonthLabel renders "September 2025".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", IndonesianMonthName(month), year)
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
