package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingPathKey          = "path"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingErrorTypeKey     = "error_type"
	LoggingEntityKey        = "entity"
	LoggingEntityIDKey      = "entity_id"
	LoggingCountKey         = "count"
	LoggingCacheKey         = "cache_key"
	LoggingSessionIDKey     = "session_id"
	LoggingUserIDKey        = "user_id"
	LoggingRoleKey          = "role"
	LoggingEventTypeKey     = "event_type"
	LoggingBucketKey        = "bucket"
	LoggingObjectKey        = "object"
	LoggingPatientIDKey     = "patient_id"
	LoggingScheduleIDKey    = "schedule_id"
	LoggingVaccinationIDKey = "vaccination_id"
	LoggingLockKey          = "lock_key"
	LoggingLockTTLKey       = "lock_ttl"
	LoggingRoutingKey       = "routing_key"
	LoggingClientsKey       = "clients"
	LoggingCacheHitKey      = "cache_hit"
	LoggingGenerationKey    = "generation"
	LoggingBusinessEventKey = "business_event"
	LoggingSecurityEventKey = "security_event"
	LoggingSeverityKey      = "severity"
	LoggingTimestampKey     = "timestamp"
	LoggingEmailKey         = "email"
	LoggingRetryAfterKey    = "retry_after"
)
