package constvars

const (
	ResponseUnknown = "unknown"

	LoginSuccessMessage   = "Login berhasil!"
	LogoutSuccessMessage  = "Logout berhasil"
	SessionSuccessMessage = "sesi aktif"

	GetPatientsSuccessMessage            = "data pasien berhasil dimuat"
	GetPatientSuccessMessage             = "detail pasien berhasil dimuat"
	GetPatientExaminationsSuccessMessage = "riwayat pemeriksaan berhasil dimuat"
	CreatePatientSuccessMessage          = "Pasien berhasil ditambahkan"
	UpdatePatientSuccessMessage          = "Data pasien berhasil diperbarui"
	DeletePatientSuccessMessage          = "Pasien berhasil dihapus"

	GetKadersSuccessMessage   = "data kader berhasil dimuat"
	CreateKaderSuccessMessage = "Kader berhasil ditambahkan"
	UpdateKaderSuccessMessage = "Data kader berhasil diperbarui"
	DeleteKaderSuccessMessage = "Kader berhasil dihapus"

	GetExaminationsSuccessMessage   = "data pemeriksaan berhasil dimuat"
	CreateExaminationSuccessMessage = "Pemeriksaan berhasil disimpan"
	UpdateExaminationSuccessMessage = "Pemeriksaan berhasil diperbarui"
	DeleteExaminationSuccessMessage = "Data pemeriksaan berhasil dihapus"
	CalculateMetricsSuccessMessage  = "metrik pemeriksaan berhasil dihitung"
	MonthlyReportSuccessMessage     = "laporan bulanan berhasil dibuat"

	GetSchedulesSuccessMessage         = "jadwal pemeriksaan berhasil dimuat"
	GetCalendarSuccessMessage          = "kalender kunjungan berhasil dimuat"
	CreateScheduleSuccessMessage       = "Jadwal pemeriksaan berhasil ditambahkan"
	CreateWeeklyScheduleSuccessMessage = "Jadwal mingguan berhasil dibuat (4 minggu)"
	UpdateScheduleSuccessMessage       = "Jadwal pemeriksaan berhasil diperbarui"
	UpdateScheduleStatusSuccessFormat  = "Status berhasil diubah menjadi %s"
	DeleteScheduleSuccessMessage       = "Jadwal pemeriksaan berhasil dihapus"

	GetVaccinationsSuccessMessage     = "jadwal vaksinasi berhasil dimuat"
	CreateVaccinationSuccessMessage   = "Jadwal vaksinasi berhasil ditambahkan"
	UpdateVaccinationSuccessMessage   = "Jadwal vaksinasi berhasil diperbarui"
	DeleteVaccinationSuccessMessage   = "Jadwal vaksinasi berhasil dihapus"
	RegisterVaccinationSuccessMessage = "Pasien berhasil didaftarkan untuk vaksinasi"

	GetDashboardStatsSuccessMessage = "statistik dashboard berhasil dimuat"
)
