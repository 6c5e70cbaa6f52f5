package config

type InternalConfig struct {
	App         App         `mapstructure:"app"`
	PosyanduAPI PosyanduAPI `mapstructure:"posyandu_api"`
	Health      Health      `mapstructure:"health"`
	JWT         AppJWT      `mapstructure:"jwt"`
	Session     AppSession  `mapstructure:"session"`
	Minio       AppMinio    `mapstructure:"minio"`
	RabbitMQ    AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env                          string   `mapstructure:"env"`
	Port                         string   `mapstructure:"port"`
	Version                      string   `mapstructure:"version"`
	Timezone                     string   `mapstructure:"timezone"`
	EndpointPrefix               string   `mapstructure:"endpoint_prefix"`
	FrontendOrigins              []string `mapstructure:"frontend_origins"`
	MaxRequests                  int      `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds    int      `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds     int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte   int      `mapstructure:"request_body_limit_in_megabyte"`
	SearchDebounceInMilliseconds int      `mapstructure:"search_debounce_in_milliseconds"`
	CacheTTLInSeconds            int      `mapstructure:"cache_ttl_in_seconds"`
	WeeklyLockTTLInSeconds       int      `mapstructure:"weekly_lock_ttl_in_seconds"`
	LoginRatePerMinute           int      `mapstructure:"login_rate_per_minute"`
}

// PosyanduAPI points at the external REST API that owns every record.
type PosyanduAPI struct {
	BaseUrl                 string `mapstructure:"base_url"`
	AdminRoleCode           string `mapstructure:"admin_role_code"`
	RequestTimeoutInSeconds int    `mapstructure:"request_timeout_in_seconds"`
}

type Health struct {
	BloodPressurePolicy string `mapstructure:"blood_pressure_policy"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppSession struct {
	CookieName   string `mapstructure:"cookie_name"`
	CookieSecure bool   `mapstructure:"cookie_secure"`
}

type AppMinio struct {
	KaderPhotoBucket string `mapstructure:"kader_photo_bucket"`
	PhotoMaxSizeInMB int64  `mapstructure:"photo_max_size_in_mb"`
}

type AppRabbitMQ struct {
	EventsExchange string `mapstructure:"events_exchange"`
}
