package constvars

// Paths on the external Posyandu REST API.
const (
	RemotePathPatients             = "/patients"
	RemotePathPatientsSearch       = "/patients/search"
	RemotePathPatientExaminations  = "/patients/%s/examinations"
	RemotePathKaders               = "/kader"
	RemotePathKadersSearch         = "/kader/search"
	RemotePathExaminations         = "/api/examinations"
	RemotePathExaminationsSearch   = "/api/examinations/search"
	RemotePathSchedules            = "/api/jadwal-pemeriksaan"
	RemotePathSchedulesWeekly      = "/api/jadwal-pemeriksaan/weekly"
	RemotePathScheduleStatusFormat = "/api/jadwal-pemeriksaan/%s/status"
	RemotePathVaccinations         = "/api/vaccinations"
	RemotePathVaccinationRegister  = "/api/vaccinations/%s/register"
	RemotePathDashboardStats       = "/api/dashboard/stats"
	RemotePathLogin                = "/auth/login"
	RemotePathLogout               = "/auth/logout"
)

const (
	RemoteErrorNetwork          = "Network error"
	RemoteErrorHTTPStatusFormat = "HTTP error! status: %d"
	RemoteErrorDefault          = "Terjadi kesalahan saat mengambil data"
)

const WeeklyScheduleOccurrences = 4
