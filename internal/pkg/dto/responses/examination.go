package responses

import (
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/health"
)

// Examination is a stored examination with its derived indicators.
type Examination struct {
	models.Examination
	Metrics health.Metrics `json:"metrics"`
}

// ExaminationHistoryEntry is one row of a patient's examination history.
type ExaminationHistoryEntry struct {
	models.Examination
	BMI                *float64 `json:"bmi"`
	BloodPressureLabel string   `json:"blood_pressure_label"`
	CholesterolLabel   string   `json:"cholesterol_label"`
	BloodSugarLabel    string   `json:"blood_sugar_label"`
}
