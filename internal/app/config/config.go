package config

import (
	"posyandu-console/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", ""),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                          utils.GetEnvString("APP_ENV", "development"),
			Port:                         utils.GetEnvString("APP_PORT", "8080"),
			Version:                      utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                     utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:               utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendOrigins:              utils.GetEnvSlice("APP_FRONTEND_ORIGINS", []string{"http://localhost:3000"}),
			MaxRequests:                  utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			MaxTimeRequestsPerSeconds:    utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:     utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte:   utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			SearchDebounceInMilliseconds: utils.GetEnvInt("APP_SEARCH_DEBOUNCE_IN_MILLISECONDS", 300),
			CacheTTLInSeconds:            utils.GetEnvInt("APP_CACHE_TTL_IN_SECONDS", 60),
			WeeklyLockTTLInSeconds:       utils.GetEnvInt("APP_WEEKLY_LOCK_TTL_IN_SECONDS", 30),
			LoginRatePerMinute:           utils.GetEnvInt("APP_LOGIN_RATE_PER_MINUTE", 10),
		},
		PosyanduAPI: PosyanduAPI{
			BaseUrl:                 utils.GetEnvString("POSYANDU_API_BASE_URL", "https://siandu-server-daris.vercel.app"),
			AdminRoleCode:           utils.GetEnvString("POSYANDU_API_ADMIN_ROLE_CODE", "3421"),
			RequestTimeoutInSeconds: utils.GetEnvInt("POSYANDU_API_REQUEST_TIMEOUT_IN_SECONDS", 0),
		},
		Health: Health{
			BloodPressurePolicy: utils.GetEnvString("HEALTH_BLOOD_PRESSURE_POLICY", "clinical"),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", ""),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
		Session: AppSession{
			CookieName:   utils.GetEnvString("SESSION_COOKIE_NAME", "posyandu_session"),
			CookieSecure: utils.GetEnvBool("SESSION_COOKIE_SECURE", false),
		},
		Minio: AppMinio{
			KaderPhotoBucket: utils.GetEnvString("MINIO_KADER_PHOTO_BUCKET", "kader-photos"),
			PhotoMaxSizeInMB: utils.GetEnvInt64("MINIO_PHOTO_MAX_SIZE_IN_MB", 2),
		},
		RabbitMQ: AppRabbitMQ{
			EventsExchange: utils.GetEnvString("RABBITMQ_EVENTS_EXCHANGE", "posyandu.console.events"),
		},
	}
}
