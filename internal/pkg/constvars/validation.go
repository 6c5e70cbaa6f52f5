package constvars

// Field validation messages keyed by validator tag. Tags that read "%s wajib diisi" take the field label.
var CustomValidationErrorMessages = map[string]string{
	"required":            "%s wajib diisi",
	"notblank":            "%s wajib diisi",
	"gt":                  "%s harus diisi",
	"nik_length":          "NIK harus terdiri dari 16 digit",
	"nik_date":            "Format NIK tidak valid (tanggal/bulan tidak valid)",
	"phone_prefix":        "Nomor telepon harus dimulai dengan +62, 62, atau 0",
	"phone_length":        "Panjang nomor telepon tidak valid (10-13 digit)",
	"not_future_date":     "Tanggal lahir tidak boleh di masa depan",
	"plausible_birthdate": "Tanggal lahir tidak valid",
	"email_format":        "Format email tidak valid",
	"education_level":     "Pendidikan terakhir tidak valid",
	"vaccine_type":        "Jenis vaksin tidak valid",
	"visit_type":          "Jenis kunjungan tidak valid",
	"visit_status":        "Status kunjungan tidak valid",
	"vaccination_status":  "Status vaksinasi tidak valid",
	"iso_date":            "Format tanggal tidak valid",
}

// Tags whose message embeds the field label.
var LabelledValidationTags = map[string]bool{
	"required": true,
	"notblank": true,
	"gt":       true,
}

const ValidationFallbackMessage = "%s tidak valid"
