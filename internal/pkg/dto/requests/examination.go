package requests

import "posyandu-console/internal/app/models"

type ExaminationForm struct {
	PatientID              models.FlexibleID `json:"patient_id" validate:"required" message:"Pasien harus dipilih"`
	ExamDate               string            `json:"exam_date" validate:"required" message:"Tanggal pemeriksaan harus diisi"`
	Weight                 models.NullFloat  `json:"weight" validate:"required" message:"Berat badan harus diisi"`
	Height                 models.NullFloat  `json:"height" validate:"required" message:"Tinggi badan harus diisi"`
	BloodPressureSystolic  models.NullFloat  `json:"blood_pressure_systolic" validate:"required" message:"Tekanan darah sistolik harus diisi"`
	BloodPressureDiastolic models.NullFloat  `json:"blood_pressure_diastolic" validate:"required" message:"Tekanan darah diastolik harus diisi"`
	BloodSugar             models.NullFloat  `json:"blood_sugar"`
	Cholesterol            models.NullFloat  `json:"cholesterol"`
	UricAcid               models.NullFloat  `json:"uric_acid"`
	NutritionStatus        string            `json:"nutrition_status"`
	Hypertension           models.YesNo      `json:"hypertension"`
	Diabetes               models.YesNo      `json:"diabetes"`
	VisionProblems         models.YesNo      `json:"vision_problems"`
	HearingProblems        models.YesNo      `json:"hearing_problems"`
	Treatment              models.YesNo      `json:"treatment"`
	Referral               models.YesNo      `json:"referral"`
	IsNewVisit             bool              `json:"is_new_visit"`
	Notes                  string            `json:"notes"`
}

// MetricsInput is the live calculator input. All fields are optional.
type MetricsInput struct {
	Weight                 models.NullFloat `json:"weight"`
	Height                 models.NullFloat `json:"height"`
	BloodPressureSystolic  models.NullFloat `json:"blood_pressure_systolic"`
	BloodPressureDiastolic models.NullFloat `json:"blood_pressure_diastolic"`
	BloodSugar             models.NullFloat `json:"blood_sugar"`
	Cholesterol            models.NullFloat `json:"cholesterol"`
	UricAcid               models.NullFloat `json:"uric_acid"`
}
