package responses

type Login struct {
	OTPSent bool   `json:"otp_sent"`
	Token   string `json:"token,omitempty"`
	Role    string `json:"role,omitempty"`
}
