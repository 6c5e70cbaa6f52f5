package responses

import (
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/calendar"
)

type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type ScheduleFilter struct {
	Query  string `json:"q"`
	Status string `json:"status"`
	Date   string `json:"date,omitempty"`
}

// ScheduleCalendar is the month grid together with the filtered schedule list shown beside it.
type ScheduleCalendar struct {
	Calendar  calendar.Month         `json:"calendar"`
	Previous  MonthRef               `json:"previous"`
	Next      MonthRef               `json:"next"`
	Filter    ScheduleFilter         `json:"filter"`
	Schedules []models.VisitSchedule `json:"schedules"`
	Upcoming  []models.VisitSchedule `json:"upcoming"`
}
