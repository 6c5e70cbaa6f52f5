package report

import (
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/health"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixture() ([]models.Examination, []models.Patient) {
	patients := []models.Patient{
		{ID: "1", Name: "Anak", BirthDate: "2022-01-10"},
		{ID: "2", Name: "Remaja", BirthDate: "2010-05-01T00:00:00.000Z"},
		{ID: "3", Name: "Lansia", BirthDate: "1950-03-03"},
		{ID: "4", Name: "Tanpa Tanggal"},
	}
	examinations := []models.Examination{
		{ID: "a", PatientID: "1", ExamDate: "2025-09-02", NutritionStatus: "kurus", IsNewVisit: true},
		{ID: "b", PatientID: "2", ExamDate: "2025-09-10T07:00:00.000Z", NutritionStatus: "NORMAL", Treatment: true},
		{ID: "c", PatientID: "3", ExamDate: "2025-09-15", Hypertension: true, Diabetes: true, Cholesterol: models.NewNullFloat(240), UricAcid: models.NewNullFloat(7.5), Referral: true},
		{ID: "d", PatientID: "3", ExamDate: "2025-09-16", Weight: models.NewNullFloat(90), Height: models.NewNullFloat(170), VisionProblems: true, HearingProblems: true},
		{ID: "e", PatientID: "4", ExamDate: "2025-09-20", NutritionStatus: "GEMUK"},
		{ID: "f", PatientID: "99", ExamDate: "2025-09-21", Cholesterol: models.NewNullFloat(200)},
		{ID: "g", PatientID: "1", ExamDate: "2025-08-31", NutritionStatus: "NORMAL"},
		{ID: "h", PatientID: "1", ExamDate: "2024-09-05", NutritionStatus: "NORMAL"},
	}
	return examinations, patients
}

func TestMonthly(t *testing.T) {
	now := time.Date(2025, time.September, 25, 9, 0, 0, 0, time.Local)
	examinations, patients := fixture()

	report := Monthly(examinations, patients, now)

	t.Run("Filters To Current Month", func(t *testing.T) {
		assert.Equal(t, 6, report.Totals.Total, "only September 2025 examinations should count")
		assert.Equal(t, "September 2025", report.Period)
	})

	t.Run("Buckets By Age", func(t *testing.T) {
		assert.Equal(t, 1, report.Groups[health.AgeBracketBalita].Total)
		assert.Equal(t, 1, report.Groups[health.AgeBracketRemaja].Total)
		assert.Equal(t, 2, report.Groups[health.AgeBracketLansia].Total)
		assert.Equal(t, 2, report.Groups[health.AgeBracketDewasa].Total, "unresolved patients should fall back to Dewasa")
	})

	t.Run("Tallies", func(t *testing.T) {
		assert.Equal(t, 1, report.Totals.NewVisits)
		assert.Equal(t, NutritionTally{Kurus: 1, Normal: 1, Gemuk: 1, Obesitas: 1}, report.Totals.Nutrition)
		assert.Equal(t, ConditionTally{
			Hypertension:    1,
			Diabetes:        1,
			HighCholesterol: 1,
			HighUricAcid:    1,
			VisionProblems:  1,
			HearingProblems: 1,
		}, report.Totals.Conditions)
		assert.Equal(t, ActionTally{Treated: 1, Referred: 1}, report.Totals.Actions)
	})

	t.Run("Idempotent", func(t *testing.T) {
		again := Monthly(examinations, patients, now)
		assert.Equal(t, report, again, "aggregating twice should give the same report")
		assert.Equal(t, "kurus", examinations[0].NutritionStatus, "input should not be mutated")
	})
}

func TestAggregateEmpty(t *testing.T) {
	report := Aggregate(nil, nil, 2025, time.January, time.Now())
	assert.Equal(t, 0, report.Totals.Total)
	assert.Len(t, report.Groups, 4, "every bracket should be present")
}
