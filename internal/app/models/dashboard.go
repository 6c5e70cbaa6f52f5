package models

type DashboardStats struct {
	AgeGroups        AgeGroupCounts        `json:"ageGroups"`
	HealthConditions HealthConditionCounts `json:"healthConditions"`
	MonthlyTrends    []MonthlyTrend        `json:"monthlyTrends"`
}

type AgeGroupCounts struct {
	Balita FlexibleInt `json:"Balita"`
	Remaja FlexibleInt `json:"Remaja"`
	Dewasa FlexibleInt `json:"Dewasa"`
	Lansia FlexibleInt `json:"Lansia"`
}

type HealthConditionCounts struct {
	Hypertension      FlexibleInt `json:"hypertension"`
	Diabetes          FlexibleInt `json:"diabetes"`
	HighCholesterol   FlexibleInt `json:"highCholesterol"`
	HighUricAcid      FlexibleInt `json:"highUricAcid"`
	HighBloodSugar    FlexibleInt `json:"highBloodSugar"`
	VisionProblems    FlexibleInt `json:"visionProblems"`
	HearingProblems   FlexibleInt `json:"hearingProblems"`
	TotalExaminations FlexibleInt `json:"totalExaminations"`
}

type MonthlyTrend struct {
	Month                 string      `json:"month"`
	Label                 string      `json:"label,omitempty"`
	TotalExaminations     FlexibleInt `json:"total_examinations"`
	CompletedExaminations FlexibleInt `json:"completed_examinations"`
}
