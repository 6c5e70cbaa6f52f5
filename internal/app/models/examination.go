package models

type Examination struct {
	ID                     FlexibleID `json:"id"`
	PatientID              FlexibleID `json:"patient_id"`
	PatientName            string     `json:"patient_name,omitempty"`
	ExamDate               string     `json:"exam_date"`
	Weight                 NullFloat  `json:"weight"`
	Height                 NullFloat  `json:"height"`
	BloodPressureSystolic  NullFloat  `json:"blood_pressure_systolic"`
	BloodPressureDiastolic NullFloat  `json:"blood_pressure_diastolic"`
	BloodSugar             NullFloat  `json:"blood_sugar"`
	Cholesterol            NullFloat  `json:"cholesterol"`
	UricAcid               NullFloat  `json:"uric_acid"`
	NutritionStatus        string     `json:"nutrition_status"`
	Hypertension           YesNo      `json:"hypertension"`
	Diabetes               YesNo      `json:"diabetes"`
	VisionProblems         YesNo      `json:"vision_problems"`
	HearingProblems        YesNo      `json:"hearing_problems"`
	Treatment              YesNo      `json:"treatment"`
	Referral               YesNo      `json:"referral"`
	IsNewVisit             bool       `json:"is_new_visit"`
	Notes                  string     `json:"notes,omitempty"`
}
