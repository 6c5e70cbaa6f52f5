// Package report tabulates a month of examinations by patient age bracket.
package report

import (
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/health"
	"posyandu-console/internal/pkg/dates"
	"strings"
	"time"
)

type NutritionTally struct {
	Kurus    int `json:"kurus"`
	Normal   int `json:"normal"`
	Gemuk    int `json:"gemuk"`
	Obesitas int `json:"obesitas"`
}

type ConditionTally struct {
	Hypertension    int `json:"hypertension"`
	Diabetes        int `json:"diabetes"`
	HighCholesterol int `json:"highCholesterol"`
	HighUricAcid    int `json:"highUricAcid"`
	VisionProblems  int `json:"visionProblems"`
	HearingProblems int `json:"hearingProblems"`
}

type ActionTally struct {
	Treated  int `json:"treated"`
	Referred int `json:"referred"`
}

type GroupStats struct {
	NewVisits  int            `json:"newVisits"`
	Total      int            `json:"total"`
	Nutrition  NutritionTally `json:"nutrition"`
	Conditions ConditionTally `json:"conditions"`
	Actions    ActionTally    `json:"actions"`
}

type Report struct {
	Period string                            `json:"period"`
	Year   int                               `json:"year"`
	Month  int                               `json:"month"`
	Groups map[health.AgeBracket]*GroupStats `json:"groups"`
	Totals GroupStats                        `json:"totals"`
}

// Monthly builds the report for the calendar month containing now.
func Monthly(examinations []models.Examination, patients []models.Patient, now time.Time) Report {
	return Aggregate(examinations, patients, now.Year(), now.Month(), now)
}

// Aggregate counts the examinations dated in year/month. Ages are taken at now.
// Examinations whose patient or birth date cannot be resolved are counted as Dewasa.
func Aggregate(examinations []models.Examination, patients []models.Patient, year int, month time.Month, now time.Time) Report {
	patientByID := make(map[string]models.Patient, len(patients))
	for _, patient := range patients {
		patientByID[patient.ID.String()] = patient
	}

	report := Report{
		Period: dates.MonthLabel(year, month),
		Year:   year,
		Month:  int(month),
		Groups: make(map[health.AgeBracket]*GroupStats, len(health.AgeBrackets)),
	}
	for _, bracket := range health.AgeBrackets {
		report.Groups[bracket] = &GroupStats{}
	}

	for _, exam := range examinations {
		examDate, err := dates.ParseLocalDate(exam.ExamDate)
		if err != nil || examDate.Year() != year || examDate.Month() != month {
			continue
		}

		bracket := health.AgeBracketDewasa
		if patient, ok := patientByID[exam.PatientID.String()]; ok {
			if birth, err := dates.ParseLocalDate(patient.BirthDate); err == nil {
				bracket = health.BracketFor(birth, now)
			}
		}
		report.Groups[bracket].add(exam)
	}

	for _, bracket := range health.AgeBrackets {
		report.Totals.merge(report.Groups[bracket])
	}
	return report
}

func (g *GroupStats) add(exam models.Examination) {
	g.Total++
	if exam.IsNewVisit {
		g.NewVisits++
	}

	switch nutritionOf(exam) {
	case health.NutritionUnderweight:
		g.Nutrition.Kurus++
	case health.NutritionNormal:
		g.Nutrition.Normal++
	case health.NutritionOverweight:
		g.Nutrition.Gemuk++
	case health.NutritionObese:
		g.Nutrition.Obesitas++
	}

	g.Conditions.Hypertension += count(bool(exam.Hypertension))
	g.Conditions.Diabetes += count(bool(exam.Diabetes))
	g.Conditions.HighCholesterol += count(health.HighCholesterol(exam.Cholesterol.Float64))
	g.Conditions.HighUricAcid += count(health.HighUricAcid(exam.UricAcid.Float64))
	g.Conditions.VisionProblems += count(bool(exam.VisionProblems))
	g.Conditions.HearingProblems += count(bool(exam.HearingProblems))
	g.Actions.Treated += count(bool(exam.Treatment))
	g.Actions.Referred += count(bool(exam.Referral))
}

func (g *GroupStats) merge(other *GroupStats) {
	g.NewVisits += other.NewVisits
	g.Total += other.Total
	g.Nutrition.Kurus += other.Nutrition.Kurus
	g.Nutrition.Normal += other.Nutrition.Normal
	g.Nutrition.Gemuk += other.Nutrition.Gemuk
	g.Nutrition.Obesitas += other.Nutrition.Obesitas
	g.Conditions.Hypertension += other.Conditions.Hypertension
	g.Conditions.Diabetes += other.Conditions.Diabetes
	g.Conditions.HighCholesterol += other.Conditions.HighCholesterol
	g.Conditions.HighUricAcid += other.Conditions.HighUricAcid
	g.Conditions.VisionProblems += other.Conditions.VisionProblems
	g.Conditions.HearingProblems += other.Conditions.HearingProblems
	g.Actions.Treated += other.Actions.Treated
	g.Actions.Referred += other.Actions.Referred
}

// nutritionOf prefers the recorded status and falls back to the measured BMI.
func nutritionOf(exam models.Examination) string {
	if status := strings.ToUpper(strings.TrimSpace(exam.NutritionStatus)); status != "" {
		return status
	}
	return health.NutritionStatus(exam.Weight.Float64, exam.Height.Float64)
}

func count(flag bool) int {
	if flag {
		return 1
	}
	return 0
}
