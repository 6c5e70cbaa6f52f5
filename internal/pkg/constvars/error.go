package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "permintaan tidak dapat diproses"
	ErrClientSomethingWrongWithApplication = "terjadi kesalahan pada aplikasi"
	ErrClientServerLongRespond             = "server terlalu lama merespons"
	ErrClientNotLoggedIn                   = "sesi Anda telah berakhir, silakan login kembali"
	ErrClientAccessDenied                  = "Akses Ditolak. Hanya administrator yang dapat mengakses halaman ini."
	ErrClientFormInvalid                   = "data formulir tidak valid"
	ErrClientLoginFailed                   = "Login gagal. Periksa email dan password Anda."
	ErrClientStaleResponse                 = "permintaan telah digantikan oleh permintaan yang lebih baru"
	ErrClientWeeklyScheduleInProgress      = "jadwal mingguan untuk pasien dan tanggal ini sedang diproses"
	ErrClientWeeklySchedulePartial         = "jadwal mingguan tidak lengkap, periksa kembali jadwal pasien"
	ErrClientStatusTransitionNotAllowed    = "hanya jadwal berstatus Terjadwal yang dapat diselesaikan"
	ErrClientTooManyRequests               = "terlalu banyak percobaan, coba lagi nanti"
	ErrClientEntityNotFound                = "data tidak ditemukan"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form"
	ErrDevCannotParseQueryParam      = "cannot parse query param %s"
	ErrDevFormValidationFailed       = "form validation failed"
	ErrDevRemoteRequestFailed        = "remote API request failed"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevMissingRequestID           = "request id missing from context"
	ErrDevSessionMissing             = "session missing"
	ErrDevSessionTokenInvalid        = "session token invalid or expired"
	ErrDevSessionTokenGenerate       = "failed to sign session token"
	ErrDevAdminOnly                  = "role is not admin"
	ErrDevLoginResponseWithoutID     = "login response has no user id"
	ErrDevStaleResponse              = "response superseded by a newer request"
	ErrDevSearchSuperseded           = "debounced search superseded"
	ErrDevWeeklyLockHeld             = "weekly schedule lock already held"
	ErrDevWeeklyPartial              = "weekly schedule returned %d of %d records"
	ErrDevStatusTransitionNotAllowed = "status %s cannot be completed"
	ErrDevRedisSetData               = "failed to set data in redis"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisIncrementData         = "failed to increment counter in redis"
	ErrDevRedisDeleteData            = "failed to delete data in redis"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevPublishEvent               = "failed to publish event"
	ErrDevPanicRecovered             = "panic recovered"
	ErrDevEntityNotFound             = "%s %s not found"
)
