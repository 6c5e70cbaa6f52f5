package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
)

const (
	REQUEST_ID_PREFIX = "PSYD_CON_"
	ServiceName       = "posyandu-console"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

// Resource names used as cache namespaces, event entities and log fields.
const (
	ResourcePatient     = "patient"
	ResourceKader       = "kader"
	ResourceExamination = "examination"
	ResourceSchedule    = "schedule"
	ResourceVaccination = "vaccination"
	ResourceDashboard   = "dashboard"
	ResourceSession     = "session"
)

const (
	CacheKeyEntityFormat = "entity:%s:%s"
	CacheKeyListFormat   = "entity:%s:list"
	SessionKeyFormat     = "session:%s"
	WeeklyLockKeyFormat  = "lock:weekly-schedule:%s:%s"
)

const (
	LoginRedirectAdmin = "/dashboard"
	LoginRedirectUser  = "/"
	LoginPagePath      = "/login"
)

const (
	EventTypeEntityChanged = "entity.changed"
	EventTypeSessionLogout = "session.logout"
)
