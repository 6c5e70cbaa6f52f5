package calendar

import (
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dates"
	"strings"
	"time"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// Filter narrows the schedule list. A selected date and a text query never coexist.
type Filter struct {
	Query  string
	Status string
	Date   string
}

// SelectDate activates the date filter and drops any text query.
func (f Filter) SelectDate(date string) Filter {
	f.Date = dates.DatePortion(date)
	f.Query = ""
	return f
}

func (f Filter) ClearDate() Filter {
	f.Date = ""
	return f
}

// Apply returns the schedules matching every active criterion, keeping input order.
func (f Filter) Apply(schedules []models.VisitSchedule) []models.VisitSchedule {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	matched := make([]models.VisitSchedule, 0, len(schedules))
	for _, schedule := range schedules {
		if f.Status != "" && f.Status != StatusAll && schedule.Status != f.Status {
			continue
		}
		if f.Date != "" && dates.DatePortion(schedule.VisitDate) != f.Date {
			continue
		}
		if query != "" && !matchesQuery(schedule, query) {
			continue
		}
		matched = append(matched, schedule)
	}
	return matched
}

func matchesQuery(schedule models.VisitSchedule, query string) bool {
	return strings.Contains(strings.ToLower(schedule.PatientName), query) ||
		strings.Contains(schedule.PatientPhone, query) ||
		strings.Contains(strings.ToLower(schedule.PatientAddress), query)
}

// Upcoming returns up to limit scheduled visits dated today or later, in input order.
func Upcoming(schedules []models.VisitSchedule, now time.Time, limit int) []models.VisitSchedule {
	today := dates.LocalDateKey(now)
	upcoming := make([]models.VisitSchedule, 0, limit)
	for _, schedule := range schedules {
		if len(upcoming) == limit {
			break
		}
		if schedule.Status != constvars.VisitStatusScheduled {
			continue
		}
		if dates.DatePortion(schedule.VisitDate) >= today {
			upcoming = append(upcoming, schedule)
		}
	}
	return upcoming
}

// StatusStyle maps a visit status onto its badge class. It carries no transition rules.
func StatusStyle(status string) string {
	switch status {
	case constvars.VisitStatusScheduled:
		return constvars.StatusStyleScheduled
	case constvars.VisitStatusCompleted:
		return constvars.StatusStyleCompleted
	case constvars.VisitStatusCancelled:
		return constvars.StatusStyleCancelled
	case constvars.VisitStatusPostponed:
		return constvars.StatusStylePostponed
	default:
		return constvars.StatusStyleDefault
	}
}
