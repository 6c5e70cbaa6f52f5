package constvars

const (
	PatientStatusActive   = "Aktif"
	PatientStatusInactive = "Tidak Aktif"
	KaderStatusActive     = "Aktif"

	DefaultExaminationType = "Pemeriksaan Rutin"

	Yes = "Ya"
	No  = "Tidak"
)

// Visit schedule statuses.
const (
	VisitStatusScheduled = "Terjadwal"
	VisitStatusCompleted = "Selesai"
	VisitStatusCancelled = "Dibatalkan"
	VisitStatusPostponed = "Ditunda"
)

// Visit schedule badge classes.
const (
	StatusStyleScheduled = "status-scheduled"
	StatusStyleCompleted = "status-completed"
	StatusStyleCancelled = "status-cancelled"
	StatusStylePostponed = "status-postponed"
	StatusStyleDefault   = "status-default"
)

const (
	VisitTypeHome      = "Rumah"
	VisitTypePosyandu  = "Posyandu"
	VisitTypePuskesmas = "Puskesmas"
)

const (
	VaccinationStatusActive    = "active"
	VaccinationStatusCompleted = "completed"
	VaccinationStatusCancelled = "cancelled"
)

var (
	VisitStatuses       = []string{VisitStatusScheduled, VisitStatusCompleted, VisitStatusCancelled, VisitStatusPostponed}
	VisitTypes          = []string{VisitTypeHome, VisitTypePosyandu, VisitTypePuskesmas}
	VaccinationStatuses = []string{VaccinationStatusActive, VaccinationStatusCompleted, VaccinationStatusCancelled}
	EducationLevels     = []string{"SD", "SMP", "SMA", "D1", "D2", "D3", "S1", "S2", "S3"}
	VaccineTypes        = []string{"COVID-19", "BCG", "DPT", "Hepatitis B", "Polio", "Campak", "Influenza", "Lainnya"}
)

// UpcomingSchedulesLimit caps the "upcoming visits" panel.
const UpcomingSchedulesLimit = 5

const CalendarMaxEntriesPerDay = 3
