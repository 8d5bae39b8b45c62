package constvars

const (
	LoginSuccessMessage  = "Successfully logged in"
	OTPSentMessage       = "OTP sent to the provided phone number"
	LogoutSuccessMessage = "Successfully logged out"

	CreateBookingSuccessMessage     = "Successfully created booking"
	GetBookingSuccessMessage        = "Successfully retrieved bookings"
	TransitionBookingSuccessMessage = "Successfully updated booking status"
	GetBookingStatsSuccessMessage   = "Successfully retrieved booking statistics"
	GetReportSuccessMessage         = "Successfully retrieved report"

	GetTestPackagesSuccessMessage   = "Successfully retrieved test packages"
	GetTestCategoriesSuccessMessage = "Successfully retrieved test categories"
)

const (
	ResponseUnknown = "unknown"
)
