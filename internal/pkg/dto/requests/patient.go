package requests

type PatientForm struct {
	Name      string `json:"name" validate:"notblank" label:"Nama lengkap"`
	NIK       string `json:"nik" validate:"required,nik_length,nik_date" label:"NIK"`
	Phone     string `json:"phone" validate:"required,phone_prefix,phone_length" label:"Nomor telepon"`
	Email     string `json:"email" validate:"omitempty,email_format"`
	Address   string `json:"address" validate:"notblank" label:"Alamat"`
	BirthDate string `json:"birthDate" validate:"required,iso_date,not_future_date,plausible_birthdate" label:"Tanggal lahir"`
	Gender    string `json:"gender" validate:"notblank" label:"Jenis kelamin"`
	BloodType string `json:"bloodType"`
	Status    string `json:"status,omitempty"`
}

type SearchQuery struct {
	Q      string
	Status string
}
