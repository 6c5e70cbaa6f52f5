package models

import (
	"posyandu-console/internal/pkg/constvars"
	"time"
)

type Patient struct {
	ID             FlexibleID  `json:"id"`
	Name           string      `json:"name"`
	NIK            string      `json:"nik"`
	Phone          string      `json:"phone"`
	Email          string      `json:"email,omitempty"`
	Address        string      `json:"address"`
	BirthDate      string      `json:"birthDate"`
	Gender         string      `json:"gender"`
	BloodType      string      `json:"bloodType,omitempty"`
	Status         string      `json:"status"`
	LastVisit      string      `json:"lastVisit"`
	MedicalRecords FlexibleInt `json:"medicalRecords"`
}

// ApplyListDefaults fills the fields the remote list endpoint may leave out.
func (p *Patient) ApplyListDefaults(now time.Time) {
	if p.Status == "" {
		p.Status = constvars.PatientStatusActive
	}
	if p.LastVisit == "" {
		p.LastVisit = now.UTC().Format(time.RFC3339Nano)
	}
}
