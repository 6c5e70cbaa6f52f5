package requests

import "posyandu-console/internal/app/models"

type VaccinationForm struct {
	Title           string `json:"title" validate:"notblank" message:"Judul vaksinasi harus diisi"`
	Description     string `json:"description"`
	Date            string `json:"date" validate:"required" message:"Tanggal vaksinasi harus diisi"`
	Location        string `json:"location" validate:"notblank" message:"Lokasi harus diisi"`
	VaccineType     string `json:"vaccine_type" validate:"notblank" message:"Jenis vaksin harus diisi"`
	MaxParticipants int    `json:"max_participants" validate:"gt=0" message:"Maksimal peserta harus diisi"`
	Status          string `json:"status" validate:"omitempty,vaccination_status"`
}

type RegistrationForm struct {
	PatientID models.FlexibleID `json:"patient_id" validate:"required" message:"Pilih pasien terlebih dahulu"`
}

type VaccinationListQuery struct {
	Q      string
	Status string
}
