package requests

type CreateBooking struct {
	TestName      string `json:"test_name" validate:"required"`
	PatientName   string `json:"patient_name" validate:"required,min=2,max=100"`
	Address       string `json:"address" validate:"omitempty,max=250"`
	Type          string `json:"type" validate:"omitempty,collection_type"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,payment_method"`
}

// ParameterReading is one raw value entered by the lab technician. The
// engine evaluates it into a LabResult; reference range and abnormality are
// never accepted from the client.
type ParameterReading struct {
	Parameter string  `json:"parameter" validate:"required"`
	Value     float64 `json:"value"`
}

type TransitionBooking struct {
	TargetStatus   string             `json:"target_status" validate:"required"`
	CollectorName  string             `json:"collector_name,omitempty" validate:"omitempty,min=2,max=100"`
	Readings       []ParameterReading `json:"readings,omitempty" validate:"omitempty,dive"`
	Interpretation string             `json:"interpretation,omitempty" validate:"omitempty,max=2000"`
}
