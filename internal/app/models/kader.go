package models

import "posyandu-console/internal/pkg/constvars"

type Kader struct {
	ID               FlexibleID `json:"id"`
	Name             string     `json:"name"`
	KaderSince       string     `json:"kaderSince"`
	NIK              string     `json:"nik"`
	KTPAddress       string     `json:"ktpAddress"`
	ResidenceAddress string     `json:"residenceAddress"`
	BirthDate        string     `json:"birthDate"`
	Gender           string     `json:"gender"`
	Education        string     `json:"education"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email,omitempty"`
	HealthInsurance  string     `json:"healthInsurance"`
	BankAccount      string     `json:"bankAccount"`
	PosyanduArea     string     `json:"posyanduArea"`
	PosyanduName     string     `json:"posyanduName"`
	Training         string     `json:"training,omitempty"`
	Status           string     `json:"status"`
	Photo            string     `json:"photo,omitempty"`
}

func (k *Kader) ApplyListDefaults() {
	if k.Status == "" {
		k.Status = constvars.KaderStatusActive
	}
}

// KaderPhoto is an uploaded kader picture on its way to the remote API.
type KaderPhoto struct {
	FileName    string
	ContentType string
	Data        []byte
}
