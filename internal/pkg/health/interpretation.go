package health

import (
	"fmt"
	"strings"
)

// BloodPressurePolicy selects the table used to interpret historical blood pressure readings.
type BloodPressurePolicy string

const (
	// BloodPressurePolicySimple reuses the three band screening table.
	BloodPressurePolicySimple BloodPressurePolicy = "simple"
	// BloodPressurePolicyClinical uses five tier hypertension staging.
	BloodPressurePolicyClinical BloodPressurePolicy = "clinical"
)

func ParseBloodPressurePolicy(value string) (BloodPressurePolicy, error) {
	switch BloodPressurePolicy(strings.ToLower(strings.TrimSpace(value))) {
	case BloodPressurePolicySimple:
		return BloodPressurePolicySimple, nil
	case BloodPressurePolicyClinical, "":
		return BloodPressurePolicyClinical, nil
	}
	return "", fmt.Errorf("unknown blood pressure policy %q", value)
}

const NotAvailable = "N/A"

const (
	BloodPressureNormal     = "Normal"
	BloodPressureElevated   = "Elevated"
	BloodPressureStage1     = "Hipertensi Tahap 1"
	BloodPressureStage2     = "Hipertensi Tahap 2"
	BloodPressureCrisis     = "Krisis Hipertensi"
	CholesterolNormal       = "Normal"
	CholesterolBorderline   = "Batas Atas Normal"
	CholesterolHigh         = "Tinggi"
	FastingSugarNormal      = "Normal"
	FastingSugarPrediabetes = "Prediabetes"
	FastingSugarDiabetes    = "Diabetes"
)

var bloodPressureStages = [...]string{
	BloodPressureNormal,
	BloodPressureElevated,
	BloodPressureStage1,
	BloodPressureStage2,
	BloodPressureCrisis,
}

// InterpretBloodPressure labels a historical reading under the given policy.
func InterpretBloodPressure(policy BloodPressurePolicy, systolic, diastolic float64) string {
	if !entered(systolic) || !entered(diastolic) {
		return NotAvailable
	}
	if policy == BloodPressurePolicySimple {
		return BloodPressureStatus(systolic, diastolic)
	}
	return bloodPressureStages[max(systolicStage(systolic), diastolicStage(diastolic))]
}

// Each reading is staged on its own and the higher stage wins.
func systolicStage(systolic float64) int {
	switch {
	case systolic > 180:
		return 4
	case systolic >= 140:
		return 3
	case systolic >= 130:
		return 2
	case systolic >= 120:
		return 1
	default:
		return 0
	}
}

func diastolicStage(diastolic float64) int {
	switch {
	case diastolic > 120:
		return 4
	case diastolic >= 90:
		return 3
	case diastolic >= 80:
		return 2
	default:
		return 0
	}
}

func InterpretCholesterol(cholesterol float64) string {
	switch {
	case !entered(cholesterol):
		return NotAvailable
	case cholesterol < 200:
		return CholesterolNormal
	case cholesterol <= 239:
		return CholesterolBorderline
	default:
		return CholesterolHigh
	}
}

// InterpretFastingBloodSugar uses fasting glucose bands.
func InterpretFastingBloodSugar(bloodSugar float64) string {
	switch {
	case !entered(bloodSugar):
		return NotAvailable
	case bloodSugar < 100:
		return FastingSugarNormal
	case bloodSugar <= 125:
		return FastingSugarPrediabetes
	default:
		return FastingSugarDiabetes
	}
}
