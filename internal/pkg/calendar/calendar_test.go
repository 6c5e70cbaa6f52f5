package calendar

import (
	"fmt"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findDay(month Month, date string) *Day {
	for _, week := range month.Weeks {
		for _, day := range week {
			if day != nil && day.Date == date {
				return day
			}
		}
	}
	return nil
}

func TestBuild(t *testing.T) {
	t.Run("Monday First Grid", func(t *testing.T) {
		// September 2025 starts on a Monday, October 2025 on a Wednesday.
		september := Build(nil, 2025, time.September, Options{})
		assert.NotNil(t, september.Weeks[0][0], "first cell should be the 1st")
		assert.Equal(t, 1, september.Weeks[0][0].Day)
		assert.Equal(t, "September 2025", september.Label)

		october := Build(nil, 2025, time.October, Options{})
		assert.Nil(t, october.Weeks[0][0])
		assert.Nil(t, october.Weeks[0][1])
		require.NotNil(t, october.Weeks[0][2])
		assert.Equal(t, "2025-10-01", october.Weeks[0][2].Date)

		for _, week := range october.Weeks {
			assert.Len(t, week, 7, "every week should have seven cells")
		}
	})

	t.Run("Caps Entries Per Day", func(t *testing.T) {
		schedules := []models.VisitSchedule{
			{ID: "1", VisitDate: "2025-09-10"},
			{ID: "2", VisitDate: "2025-09-10"},
			{ID: "3", VisitDate: "2025-09-10T08:00:00"},
			{ID: "4", VisitDate: "2025-09-10"},
			{ID: "5", VisitDate: "2025-09-10"},
		}
		month := Build(schedules, 2025, time.September, Options{})
		day := findDay(month, "2025-09-10")
		require.NotNil(t, day)
		assert.Len(t, day.Visits, 3)
		assert.Equal(t, 5, day.Total)
		assert.Equal(t, 2, day.MoreCount, "should report the hidden visits")
		assert.Equal(t, models.FlexibleID("1"), day.Visits[0].ID, "should keep input order")
	})

	t.Run("Marks Today And Selection", func(t *testing.T) {
		today := time.Date(2025, time.September, 3, 15, 0, 0, 0, time.Local)
		month := Build(nil, 2025, time.September, Options{Today: today, SelectedDate: "2025-09-05"})
		assert.True(t, findDay(month, "2025-09-03").IsToday)
		assert.True(t, findDay(month, "2025-09-05").IsSelected)
		assert.False(t, findDay(month, "2025-09-04").IsToday)
	})
}

func TestBucketingIgnoresTimezone(t *testing.T) {
	original := time.Local
	defer func() { time.Local = original }()

	schedules := []models.VisitSchedule{{ID: "7", VisitDate: "2025-09-20T17:00:00.000Z"}}
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC-10", -10*60*60),
		time.FixedZone("WIB", 7*60*60),
		time.FixedZone("UTC+14", 14*60*60),
	}

	for _, zone := range zones {
		t.Run(zone.String(), func(t *testing.T) {
			time.Local = zone
			month := Build(schedules, 2025, time.September, Options{})

			assert.Equal(t, 1, findDay(month, "2025-09-20").Total, "visit should stay on the 20th")
			assert.Equal(t, 0, findDay(month, "2025-09-19").Total)
			assert.Equal(t, 0, findDay(month, "2025-09-21").Total)
		})
	}
}

func TestCursor(t *testing.T) {
	cursor := Cursor{Year: 2025, Month: time.December}
	assert.Equal(t, Cursor{Year: 2026, Month: time.January}, cursor.Next())
	assert.Equal(t, Cursor{Year: 2025, Month: time.November}, cursor.Prev())
	assert.Equal(t, Cursor{Year: 2024, Month: time.December}, Cursor{Year: 2025, Month: time.January}.Prev())
	assert.False(t, Cursor{Year: 2025, Month: 13}.Valid())
}

func TestFilter(t *testing.T) {
	schedules := []models.VisitSchedule{
		{ID: "1", PatientName: "Siti Aminah", PatientPhone: "0812", PatientAddress: "Jl. Melati", VisitDate: "2025-09-20", Status: constvars.VisitStatusScheduled},
		{ID: "2", PatientName: "Budi", PatientPhone: "0813", PatientAddress: "Jl. Mawar", VisitDate: "2025-09-20T09:00:00", Status: constvars.VisitStatusCompleted},
		{ID: "3", PatientName: "Siti Rahma", PatientPhone: "0814", PatientAddress: "Jl. Kenanga", VisitDate: "2025-09-21", Status: constvars.VisitStatusScheduled},
	}

	t.Run("Text Search", func(t *testing.T) {
		result := Filter{Query: "siti"}.Apply(schedules)
		assert.Len(t, result, 2)

		result = Filter{Query: "0813"}.Apply(schedules)
		require.Len(t, result, 1)
		assert.Equal(t, models.FlexibleID("2"), result[0].ID)

		result = Filter{Query: "KENANGA"}.Apply(schedules)
		assert.Len(t, result, 1, "address search should ignore case")
	})

	t.Run("Selecting A Date Clears Search", func(t *testing.T) {
		filter := Filter{Query: "Budi"}.SelectDate("2025-09-20")
		assert.Equal(t, "", filter.Query)

		result := filter.Apply(schedules)
		require.Len(t, result, 2, "every visit on the selected date should be listed")
		assert.Equal(t, models.FlexibleID("1"), result[0].ID)
		assert.Equal(t, models.FlexibleID("2"), result[1].ID)
	})

	t.Run("Status And Date Combine", func(t *testing.T) {
		filter := Filter{Status: constvars.VisitStatusScheduled}.SelectDate("2025-09-20")
		result := filter.Apply(schedules)
		require.Len(t, result, 1)
		assert.Equal(t, models.FlexibleID("1"), result[0].ID)

		assert.Len(t, filter.ClearDate().Apply(schedules), 2)
		assert.Len(t, Filter{Status: StatusAll}.Apply(schedules), 3)
	})
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2025, time.September, 20, 18, 0, 0, 0, time.Local)
	schedules := []models.VisitSchedule{
		{ID: "past", VisitDate: "2025-09-19", Status: constvars.VisitStatusScheduled},
		{ID: "today", VisitDate: "2025-09-20T08:00:00.000Z", Status: constvars.VisitStatusScheduled},
		{ID: "done", VisitDate: "2025-09-22", Status: constvars.VisitStatusCompleted},
	}
	for i := 0; i < 6; i++ {
		schedules = append(schedules, models.VisitSchedule{ID: models.FlexibleID(fmt.Sprintf("future-%d", i)), VisitDate: "2025-10-01", Status: constvars.VisitStatusScheduled})
	}

	upcoming := Upcoming(schedules, now, constvars.UpcomingSchedulesLimit)
	require.Len(t, upcoming, 5)
	assert.Equal(t, models.FlexibleID("today"), upcoming[0].ID, "today's visit counts as upcoming")
	for _, schedule := range upcoming {
		assert.Equal(t, constvars.VisitStatusScheduled, schedule.Status)
	}
}

func TestStatusStyle(t *testing.T) {
	assert.Equal(t, constvars.StatusStyleScheduled, StatusStyle(constvars.VisitStatusScheduled))
	assert.Equal(t, constvars.StatusStyleCompleted, StatusStyle(constvars.VisitStatusCompleted))
	assert.Equal(t, constvars.StatusStyleCancelled, StatusStyle(constvars.VisitStatusCancelled))
	assert.Equal(t, constvars.StatusStylePostponed, StatusStyle(constvars.VisitStatusPostponed))
	assert.Equal(t, constvars.StatusStyleDefault, StatusStyle("Lainnya"))
}
