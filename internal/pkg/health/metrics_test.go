package health

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	cases := []struct {
		name      string
		weight    float64
		height    float64
		bmi       float64
		nutrition string
	}{
		{"Normal Weight", 65.5, 170, 22.7, NutritionNormal},
		{"Underweight", 50, 170, 17.3, NutritionUnderweight},
		{"Obese", 90, 170, 31.1, NutritionObese},
		{"Overweight", 80, 170, 27.7, NutritionOverweight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bmi, ok := BMI(tc.weight, tc.height)
			require.True(t, ok, "bmi should be computed")
			assert.Equal(t, tc.bmi, bmi, "bmi should be rounded to one decimal")
			assert.Equal(t, tc.nutrition, NutritionStatus(tc.weight, tc.height))
		})
	}

	t.Run("Missing Input", func(t *testing.T) {
		_, ok := BMI(0, 170)
		assert.False(t, ok, "missing weight should leave bmi undefined")
		assert.Equal(t, "", NutritionStatus(65, 0), "missing height should leave nutrition empty")
	})

	t.Run("Nutrition Uses Unrounded BMI", func(t *testing.T) {
		// 18.496... rounds to 18.5 but is still underweight.
		bmi, _ := BMI(53.45, 170)
		assert.Equal(t, 18.5, bmi)
		assert.Equal(t, NutritionUnderweight, NutritionStatus(53.45, 170))
	})
}

func TestBloodPressureStatus(t *testing.T) {
	cases := []struct {
		systolic  float64
		diastolic float64
		expected  string
	}{
		{119, 79, LevelNormal},
		{89, 79, LevelLow},
		{141, 79, LevelHigh},
		{120, 90, LevelHigh},
		{100, 59, LevelLow},
		{139.9, 89.9, LevelNormal},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, BloodPressureStatus(tc.systolic, tc.diastolic), "systolic %v diastolic %v", tc.systolic, tc.diastolic)
	}

	assert.Equal(t, "", BloodPressureStatus(120, 0), "missing diastolic should give empty status")
}

func TestLabStatuses(t *testing.T) {
	t.Run("Blood Sugar", func(t *testing.T) {
		assert.Equal(t, LevelLow, BloodSugarStatus(69))
		assert.Equal(t, LevelNormal, BloodSugarStatus(140))
		assert.Equal(t, LevelHigh, BloodSugarStatus(141))
		assert.Equal(t, "", BloodSugarStatus(0))
	})

	t.Run("Cholesterol", func(t *testing.T) {
		assert.Equal(t, LevelNormal, CholesterolStatus(200))
		assert.Equal(t, LevelHigh, CholesterolStatus(200.5))
		assert.True(t, HighCholesterol(201))
		assert.False(t, HighCholesterol(0))
	})

	t.Run("Uric Acid", func(t *testing.T) {
		assert.Equal(t, LevelNormal, UricAcidStatus(7.0))
		assert.Equal(t, LevelHigh, UricAcidStatus(7.1))
		assert.True(t, HighUricAcid(7.5))
	})

	t.Run("Calculate", func(t *testing.T) {
		metrics := Calculate(Readings{WeightKg: 65.5, HeightCm: 170, Systolic: 120, Diastolic: 80})
		require.NotNil(t, metrics.BMI)
		assert.Equal(t, 22.7, *metrics.BMI)
		assert.Equal(t, NutritionNormal, metrics.NutritionStatus)
		assert.Equal(t, LevelNormal, metrics.BloodPressureStatus)
		assert.Equal(t, "", metrics.BloodSugarStatus, "unentered readings stay empty")
	})
}

func TestInterpretBloodPressure(t *testing.T) {
	cases := []struct {
		systolic  float64
		diastolic float64
		expected  string
	}{
		{115, 75, BloodPressureNormal},
		{125, 75, BloodPressureElevated},
		{135, 75, BloodPressureStage1},
		{118, 85, BloodPressureStage1},
		{150, 85, BloodPressureStage2},
		{185, 85, BloodPressureCrisis},
		{130, 125, BloodPressureCrisis},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, InterpretBloodPressure(BloodPressurePolicyClinical, tc.systolic, tc.diastolic), "systolic %v diastolic %v", tc.systolic, tc.diastolic)
	}

	assert.Equal(t, LevelHigh, InterpretBloodPressure(BloodPressurePolicySimple, 150, 85), "simple policy reuses the screening table")
	assert.Equal(t, NotAvailable, InterpretBloodPressure(BloodPressurePolicyClinical, 0, 80))
}

func TestInterpretLabs(t *testing.T) {
	assert.Equal(t, CholesterolNormal, InterpretCholesterol(199))
	assert.Equal(t, CholesterolBorderline, InterpretCholesterol(239))
	assert.Equal(t, CholesterolHigh, InterpretCholesterol(240))
	assert.Equal(t, FastingSugarNormal, InterpretFastingBloodSugar(99))
	assert.Equal(t, FastingSugarPrediabetes, InterpretFastingBloodSugar(125))
	assert.Equal(t, FastingSugarDiabetes, InterpretFastingBloodSugar(126))
	assert.Equal(t, NotAvailable, InterpretFastingBloodSugar(0))
}

func TestParseBloodPressurePolicy(t *testing.T) {
	policy, err := ParseBloodPressurePolicy("")
	assert.NoError(t, err)
	assert.Equal(t, BloodPressurePolicyClinical, policy, "clinical staging is the default")

	policy, err = ParseBloodPressurePolicy(" Simple ")
	assert.NoError(t, err)
	assert.Equal(t, BloodPressurePolicySimple, policy)

	_, err = ParseBloodPressurePolicy("strict")
	assert.Error(t, err)
}

func TestAgeBracket(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.Local)

	t.Run("Exactly Five Years", func(t *testing.T) {
		birth := now.AddDate(-5, 0, 0)
		assert.Equal(t, AgeBracketRemaja, BracketFor(birth, now))
	})

	t.Run("One Day Short Of Five Years", func(t *testing.T) {
		birth := time.Date(2020, time.June, 16, 0, 0, 0, 0, time.Local)
		assert.Equal(t, 4, AgeInYears(birth, now))
		assert.Equal(t, AgeBracketBalita, BracketFor(birth, now))
	})

	t.Run("Bracket Edges", func(t *testing.T) {
		assert.Equal(t, AgeBracketRemaja, BracketForAge(17))
		assert.Equal(t, AgeBracketDewasa, BracketForAge(18))
		assert.Equal(t, AgeBracketDewasa, BracketForAge(59))
		assert.Equal(t, AgeBracketLansia, BracketForAge(60))
	})
}
