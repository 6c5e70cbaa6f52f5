package models

type Vaccination struct {
	ID              FlexibleID  `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Date            string      `json:"date"`
	Location        string      `json:"location"`
	VaccineType     string      `json:"vaccine_type"`
	MaxParticipants FlexibleInt `json:"max_participants"`
	Status          string      `json:"status"`
}

// VaccinationPayload is the camelCase body the remote API expects on create and update.
type VaccinationPayload struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Location        string `json:"location"`
	VaccineType     string `json:"vaccineType"`
	MaxParticipants int    `json:"maxParticipants"`
	Status          string `json:"status"`
}

type VaccinationRegistration struct {
	UserID int64 `json:"userId"`
}
