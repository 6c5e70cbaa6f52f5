// Package calendar lays visit schedules out on a Monday-first month grid.
//
// Visits are bucketed by the date portion of their visit_date string. Timestamps
// such as "2025-09-20T17:00:00.000Z" are never converted to another zone, so a
// visit lands on the same day for every viewer.
package calendar

import (
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dates"
	"time"
)

const daysPerWeek = 7

type Day struct {
	Date       string                 `json:"date"`
	Day        int                    `json:"day"`
	IsToday    bool                   `json:"is_today"`
	IsSelected bool                   `json:"is_selected"`
	Visits     []models.VisitSchedule `json:"visits"`
	Total      int                    `json:"total"`
	MoreCount  int                    `json:"more_count"`
}

// Month is a rendered grid. Blank leading and trailing cells are nil.
type Month struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Label string   `json:"label"`
	Weeks [][]*Day `json:"weeks"`
}

type Options struct {
	// Today marks the current day cell. Zero disables the marker.
	Today time.Time
	// SelectedDate is a YYYY-MM-DD filter highlighted on the grid.
	SelectedDate string
	// MaxPerDay caps the visits listed per cell. Zero uses the default of three.
	MaxPerDay int
}

// Build renders the grid for year/month with every schedule bucketed onto its day.
func Build(schedules []models.VisitSchedule, year int, month time.Month, opts Options) Month {
	maxPerDay := opts.MaxPerDay
	if maxPerDay <= 0 {
		maxPerDay = constvars.CalendarMaxEntriesPerDay
	}

	buckets := BucketByDay(schedules)
	todayKey := ""
	if !opts.Today.IsZero() {
		todayKey = dates.LocalDateKey(opts.Today)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	cells := make([]*Day, LeadingBlanks(first.Weekday()))
	for day := 1; day <= dates.DaysInMonth(year, month); day++ {
		key := dates.LocalDateKey(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
		visits := buckets[key]
		cell := &Day{
			Date:       key,
			Day:        day,
			IsToday:    key == todayKey,
			IsSelected: key == opts.SelectedDate,
			Total:      len(visits),
			Visits:     []models.VisitSchedule{},
		}
		if len(visits) > maxPerDay {
			cell.Visits = append(cell.Visits, visits[:maxPerDay]...)
			cell.MoreCount = len(visits) - maxPerDay
		} else {
			cell.Visits = append(cell.Visits, visits...)
		}
		cells = append(cells, cell)
	}
	for len(cells)%daysPerWeek != 0 {
		cells = append(cells, nil)
	}

	weeks := make([][]*Day, 0, len(cells)/daysPerWeek)
	for i := 0; i < len(cells); i += daysPerWeek {
		weeks = append(weeks, cells[i:i+daysPerWeek])
	}

	return Month{
		Year:  year,
		Month: int(month),
		Label: dates.MonthLabel(year, month),
		Weeks: weeks,
	}
}

// LeadingBlanks is the number of empty cells before the 1st in a Monday-first week.
func LeadingBlanks(firstWeekday time.Weekday) int {
	return (int(firstWeekday) + daysPerWeek - 1) % daysPerWeek
}

// BucketByDay groups schedules by the date portion of visit_date, keeping input order.
func BucketByDay(schedules []models.VisitSchedule) map[string][]models.VisitSchedule {
	buckets := make(map[string][]models.VisitSchedule)
	for _, schedule := range schedules {
		key := dates.DatePortion(schedule.VisitDate)
		if key == "" {
			continue
		}
		buckets[key] = append(buckets[key], schedule)
	}
	return buckets
}
