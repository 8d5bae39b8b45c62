package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingSessionDataKey        = "session_data"
	LoggingQueryParamsKey        = "query_params"
	LoggingResponseKey           = "response"
	LoggingRequestKey            = "request"
	LoggingResponseLengthKey     = "response_length"
	LoggingOrderIDKey            = "order_id"
	LoggingBarcodeKey            = "barcode"
	LoggingTestNameKey           = "test_name"
	LoggingRoleKey               = "role"
	LoggingStatusKey             = "status"
	LoggingTargetStatusKey       = "target_status"
	LoggingQueueNameKey          = "queue_name"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingPhoneKey              = "phone"
	LoggingSessionIDKey          = "session_id"
	LoggingCategoryKey           = "category"
	LoggingSearchKey             = "search"
	LoggingParameterKey          = "parameter"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
)
