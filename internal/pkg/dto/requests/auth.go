package requests

// Login is the two-step OTP stub. The first call carries no OTP and only
// triggers the "OTP sent" response; the second call carries the code.
type Login struct {
	Phone string `json:"phone" validate:"required,phone_number"`
	Role  string `json:"role" validate:"required,role"`
	OTP   string `json:"otp,omitempty" validate:"omitempty,len=6,numeric"`
}
