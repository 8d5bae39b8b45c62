package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"min":             "must be at least %s characters long",
	"max":             "maximum at %s characters long",
	"numeric":         "must be a number",
	"len":             "must be %s characters long",
	"oneof":           "must be one of [%s]",
	"gt":              "must be greater than %s",
	"gte":             "must be greater than or equal to %s",
	"role":            "must be one of the known portal roles",
	"collection_type": "must be either 'HOME' or 'LAB'",
	"payment_method":  "must be one of 'UPI', 'CARD' or 'CASH'",
	"phone_number":    "must be a valid phone number",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something is wrong with the application, please contact the administrator"
	ErrClientCannotProcessRequest          = "cannot process the request, please check and try again"
	ErrClientServerLongRespond             = "server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientBookingNotFound               = "booking not found"
	ErrClientTestNotFound                  = "the requested test is not in the catalog"
	ErrClientIllegalTransition             = "the booking cannot move to the requested status from its current status"
	ErrClientRoleNotPermitted              = "your role is not permitted to perform this transition"
	ErrClientBookingBusy                   = "the booking is being updated, please retry shortly"
	ErrClientReportNotReady                = "the report has not been delivered yet"
	ErrClientOTPInvalid                    = "the OTP is invalid"
	ErrClientCollectorNameRequired         = "a collector name is required to assign a collector"
	ErrClientReadingsRequired              = "at least one parameter reading is required to verify results"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "Request validation failed"
	ErrDevCannotParseJSON            = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON          = "Failed to marshal data to JSON"
	ErrDevServerDeadlineExceeded     = "Server deadline exceeded while processing request"
	ErrDevServerProcess              = "Server failed to process the request"
	ErrDevMissingRequestID           = "Request ID not found in request context"
	ErrDevMissingSessionData         = "Session data not found in request context"
	ErrDevAuthTokenMissing           = "Authorization token is missing from request headers"
	ErrDevAuthTokenInvalid           = "Authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired  = "Authorization token is invalid or has expired"
	ErrDevAuthGenerateToken          = "Failed to generate session JWT"
	ErrDevAuthSigningMethod          = "Unexpected JWT signing method"
	ErrDevAuthOTPInvalid             = "Login OTP validation failed"
	ErrDevInvalidRoleType            = "Role type is not one of the known portal roles"
	ErrDevBookingNotFound            = "Booking does not exist for the given order ID"
	ErrDevTestNotFound               = "Test package does not exist in the catalog"
	ErrDevIllegalTransition          = "Requested status is not the immediate next status in the lifecycle"
	ErrDevRoleNotPermitted           = "Session role is not the designated role for the target status"
	ErrDevBookingLocked              = "Another transition is pending on this booking"
	ErrDevReportNotReady             = "Report requested before the booking reached REPORT_DELIVERED"
	ErrDevCollectorNameRequired      = "Collector assignment payload has an empty collector name"
	ErrDevReadingsRequired           = "Verification payload has no parameter readings"
	ErrDevMongoDBFindDocument        = "MongoDB failed to find document"
	ErrDevMongoDBIterateDocuments    = "MongoDB failed to iterate documents"
	ErrDevMongoDBInsertDocument      = "MongoDB failed to insert document"
	ErrDevMongoDBUpdateDocument      = "MongoDB failed to update document"
	ErrDevRedisGetData               = "Redis failed to get data"
	ErrDevRedisSetData               = "Redis failed to set data"
	ErrDevRedisDeleteData            = "Redis failed to delete data"
	ErrDevRedisSetNX                 = "Redis failed to execute SetNX"
	ErrDevRedisUnlock                = "Redis lock is not owned by this client"
	ErrDevRabbitMQPublishMessage     = "RabbitMQ failed to publish message to queue %s"
	ErrDevMinioCreateObject          = "Minio failed to create object in bucket %s"
	ErrDevInterpretationRequest      = "Interpretation provider request could not be built or sent"
	ErrDevInterpretationUnavailable  = "Interpretation provider failed or timed out, fallback text used"
	ErrDevInterpretationEmptyAnswer  = "Interpretation provider returned an empty answer"
	ErrDevInterpretationRateLimited  = "Interpretation provider call rejected by local rate limiter"
	ErrDevInterpretationStatusFormat = "Interpretation provider responded with status %d"
)
