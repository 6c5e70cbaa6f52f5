package requests

import "posyandu-console/internal/app/models"

type ScheduleForm struct {
	PatientID       models.FlexibleID `json:"patient_id" validate:"required" message:"Pilih pasien terlebih dahulu"`
	VisitDate       string            `json:"visit_date" validate:"required" message:"Tanggal kunjungan harus diisi"`
	VisitTime       string            `json:"visit_time" validate:"required" message:"Waktu kunjungan harus diisi"`
	VisitType       string            `json:"visit_type" validate:"omitempty,visit_type"`
	Status          string            `json:"status" validate:"omitempty,visit_status"`
	ExaminationType string            `json:"examination_type"`
	PetugasID       models.FlexibleID `json:"petugas_id"`
	Notes           string            `json:"notes" validate:"notblank" message:"Catatan harus diisi"`

	// Weekly expands the request into one visit per week for four weeks.
	Weekly bool `json:"weekly"`
}

type ScheduleStatusForm struct {
	Status string `json:"status" validate:"required,visit_status" label:"Status"`
	Notes  string `json:"notes"`
}

type ScheduleListQuery struct {
	Status string
	Date   string
	Q      string
}

type CalendarQuery struct {
	Year   int
	Month  int
	Date   string
	Q      string
	Status string
}
