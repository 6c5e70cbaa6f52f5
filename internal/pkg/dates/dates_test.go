package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatePortion(t *testing.T) {
	assert.Equal(t, "2025-09-20", DatePortion("2025-09-20T17:00:00.000Z"))
	assert.Equal(t, "2025-09-20", DatePortion("2025-09-20"))
	assert.Equal(t, "2025-09-20", DatePortion(" 2025-09-20 08:00:00"))
	assert.Equal(t, "", DatePortion(""))
}

func TestParseLocalDate(t *testing.T) {
	date, err := ParseLocalDate("2025-09-20T23:30:00+07:00")
	require.NoError(t, err)
	assert.Equal(t, 20, date.Day())
	assert.Equal(t, time.Local, date.Location())

	_, err = ParseLocalDate("20-09-2025")
	assert.Error(t, err)
}

func TestMonthHelpers(t *testing.T) {
	assert.Equal(t, "2025-01-05", LocalDateKey(time.Date(2025, time.January, 5, 23, 0, 0, 0, time.Local)))
	assert.Equal(t, "Februari 2024", MonthLabel(2024, time.February))
	assert.Equal(t, "Desember", IndonesianMonthName(time.December))
	assert.Equal(t, "", IndonesianMonthName(13))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}
