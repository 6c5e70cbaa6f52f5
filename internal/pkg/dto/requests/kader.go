package requests

import "posyandu-console/internal/app/models"

type KaderForm struct {
	Name             string `json:"name" validate:"notblank" label:"Nama lengkap"`
	KaderSince       string `json:"kaderSince" validate:"notblank" label:"Tahun menjadi kader"`
	NIK              string `json:"nik" validate:"required,nik_length,nik_date" label:"NIK"`
	KTPAddress       string `json:"ktpAddress" validate:"notblank" label:"Alamat sesuai KTP"`
	ResidenceAddress string `json:"residenceAddress" validate:"notblank" label:"Alamat domisili"`
	BirthDate        string `json:"birthDate" validate:"required,iso_date,not_future_date,plausible_birthdate" label:"Tanggal lahir"`
	Gender           string `json:"gender" validate:"notblank" label:"Jenis kelamin"`
	Education        string `json:"education" validate:"notblank,education_level" label:"Pendidikan terakhir"`
	Phone            string `json:"phone" validate:"required,phone_prefix,phone_length" label:"Nomor telepon"`
	Email            string `json:"email" validate:"omitempty,email_format"`
	HealthInsurance  string `json:"healthInsurance" validate:"notblank" label:"Kepemilikan JKN"`
	BankAccount      string `json:"bankAccount" validate:"notblank" label:"Nomor rekening"`
	PosyanduArea     string `json:"posyanduArea" validate:"notblank" label:"Posyandu wilayah"`
	PosyanduName     string `json:"posyanduName" validate:"notblank" label:"Nama posyandu"`
	Training         string `json:"training"`
	Status           string `json:"status"`

	// Photo is set only when a new picture was uploaded with the form.
	Photo *models.KaderPhoto `json:"-"`
}

// KaderFormFromValues builds a KaderForm from multipart text fields.
func KaderFormFromValues(get func(key string) string) KaderForm {
	return KaderForm{
		Name:             get("name"),
		KaderSince:       get("kaderSince"),
		NIK:              get("nik"),
		KTPAddress:       get("ktpAddress"),
		ResidenceAddress: get("residenceAddress"),
		BirthDate:        get("birthDate"),
		Gender:           get("gender"),
		Education:        get("education"),
		Phone:            get("phone"),
		Email:            get("email"),
		HealthInsurance:  get("healthInsurance"),
		BankAccount:      get("bankAccount"),
		PosyanduArea:     get("posyanduArea"),
		PosyanduName:     get("posyanduName"),
		Training:         get("training"),
		Status:           get("status"),
	}
}

// Fields returns the text fields in the order they are sent upstream.
func (f KaderForm) Fields() [][2]string {
	return [][2]string{
		{"name", f.Name},
		{"kaderSince", f.KaderSince},
		{"nik", f.NIK},
		{"ktpAddress", f.KTPAddress},
		{"residenceAddress", f.ResidenceAddress},
		{"birthDate", f.BirthDate},
		{"gender", f.Gender},
		{"education", f.Education},
		{"phone", f.Phone},
		{"email", f.Email},
		{"healthInsurance", f.HealthInsurance},
		{"bankAccount", f.BankAccount},
		{"posyanduArea", f.PosyanduArea},
		{"posyanduName", f.PosyanduName},
		{"training", f.Training},
		{"status", f.Status},
	}
}
