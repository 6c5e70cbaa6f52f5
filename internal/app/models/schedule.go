package models

type VisitSchedule struct {
	ID              FlexibleID `json:"id"`
	PatientID       FlexibleID `json:"patient_id"`
	PatientName     string     `json:"patient_name,omitempty"`
	PatientPhone    string     `json:"patient_phone,omitempty"`
	PatientAddress  string     `json:"patient_address,omitempty"`
	VisitDate       string     `json:"visit_date"`
	VisitTime       string     `json:"visit_time"`
	VisitType       string     `json:"visit_type"`
	Status          string     `json:"status"`
	ExaminationType string     `json:"examination_type"`
	PetugasID       FlexibleID `json:"petugas_id,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

// WeeklyScheduleResult is what the remote API answers to a weekly expansion request.
type WeeklyScheduleResult struct {
	Message   string          `json:"message,omitempty"`
	Schedules []VisitSchedule `json:"schedules"`
}
