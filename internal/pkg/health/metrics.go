// Package health derives screening indicators from raw examination readings.
// A reading of zero is treated as not entered.
package health

import "math"

const (
	NutritionUnderweight = "KURUS"
	NutritionNormal      = "NORMAL"
	NutritionOverweight  = "GEMUK"
	NutritionObese       = "OBESITAS"
)

const (
	LevelLow    = "RENDAH"
	LevelNormal = "NORMAL"
	LevelHigh   = "TINGGI"
)

const (
	bmiUnderweightBelow = 18.5
	bmiNormalBelow      = 25
	bmiOverweightBelow  = 30

	systolicLowBelow      = 90
	diastolicLowBelow     = 60
	systolicHighFrom      = 140
	diastolicHighFrom     = 90
	bloodSugarLowBelow    = 70
	bloodSugarHighAbove   = 140
	cholesterolHighAbove  = 200
	uricAcidHighAbove     = 7.0
	centimetersPerMeter   = 100
	bmiDecimalPlaceFactor = 10
)

// Metrics is the live calculator output. Empty strings mean the inputs were not entered.
type Metrics struct {
	BMI                 *float64 `json:"bmi"`
	NutritionStatus     string   `json:"nutrition_status"`
	BloodPressureStatus string   `json:"blood_pressure_status"`
	BloodSugarStatus    string   `json:"blood_sugar_status"`
	CholesterolStatus   string   `json:"cholesterol_status"`
	UricAcidStatus      string   `json:"uric_acid_status"`
	HighCholesterol     bool     `json:"high_cholesterol"`
	HighUricAcid        bool     `json:"high_uric_acid"`
}

// Readings are raw examination values in kg, cm, mmHg and mg/dL.
type Readings struct {
	WeightKg    float64
	HeightCm    float64
	Systolic    float64
	Diastolic   float64
	BloodSugar  float64
	Cholesterol float64
	UricAcid    float64
}

func Calculate(r Readings) Metrics {
	metrics := Metrics{
		NutritionStatus:     NutritionStatus(r.WeightKg, r.HeightCm),
		BloodPressureStatus: BloodPressureStatus(r.Systolic, r.Diastolic),
		BloodSugarStatus:    BloodSugarStatus(r.BloodSugar),
		CholesterolStatus:   CholesterolStatus(r.Cholesterol),
		UricAcidStatus:      UricAcidStatus(r.UricAcid),
		HighCholesterol:     HighCholesterol(r.Cholesterol),
		HighUricAcid:        HighUricAcid(r.UricAcid),
	}
	if bmi, ok := BMI(r.WeightKg, r.HeightCm); ok {
		metrics.BMI = &bmi
	}
	return metrics
}

// BMI returns weight / height(m)^2 rounded to one decimal.
func BMI(weightKg, heightCm float64) (float64, bool) {
	raw, ok := rawBMI(weightKg, heightCm)
	if !ok {
		return 0, false
	}
	return math.Round(raw*bmiDecimalPlaceFactor) / bmiDecimalPlaceFactor, true
}

// NutritionStatus classifies the unrounded BMI.
func NutritionStatus(weightKg, heightCm float64) string {
	bmi, ok := rawBMI(weightKg, heightCm)
	if !ok {
		return ""
	}
	switch {
	case bmi < bmiUnderweightBelow:
		return NutritionUnderweight
	case bmi < bmiNormalBelow:
		return NutritionNormal
	case bmi < bmiOverweightBelow:
		return NutritionOverweight
	default:
		return NutritionObese
	}
}

func rawBMI(weightKg, heightCm float64) (float64, bool) {
	if !entered(weightKg) || !entered(heightCm) {
		return 0, false
	}
	heightM := heightCm / centimetersPerMeter
	return weightKg / (heightM * heightM), true
}

// BloodPressureStatus is the three band screening used while an examination is entered.
// Readings are truncated to whole mmHg first.
func BloodPressureStatus(systolic, diastolic float64) string {
	if !entered(systolic) || !entered(diastolic) {
		return ""
	}
	sys, dia := math.Trunc(systolic), math.Trunc(diastolic)
	switch {
	case sys < systolicLowBelow || dia < diastolicLowBelow:
		return LevelLow
	case sys >= systolicHighFrom || dia >= diastolicHighFrom:
		return LevelHigh
	default:
		return LevelNormal
	}
}

func BloodSugarStatus(bloodSugar float64) string {
	if !entered(bloodSugar) {
		return ""
	}
	sugar := math.Trunc(bloodSugar)
	switch {
	case sugar < bloodSugarLowBelow:
		return LevelLow
	case sugar > bloodSugarHighAbove:
		return LevelHigh
	default:
		return LevelNormal
	}
}

func CholesterolStatus(cholesterol float64) string {
	if !entered(cholesterol) {
		return ""
	}
	if HighCholesterol(cholesterol) {
		return LevelHigh
	}
	return LevelNormal
}

func UricAcidStatus(uricAcid float64) string {
	if !entered(uricAcid) {
		return ""
	}
	if HighUricAcid(uricAcid) {
		return LevelHigh
	}
	return LevelNormal
}

func HighCholesterol(cholesterol float64) bool {
	return cholesterol > cholesterolHighAbove
}

func HighUricAcid(uricAcid float64) bool {
	return uricAcid > uricAcidHighAbove
}

func entered(value float64) bool {
	return value != 0 && !math.IsNaN(value)
}
