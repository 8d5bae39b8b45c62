package responses

import "labtrack-service/internal/app/models"

type Booking struct {
	OrderID        string             `json:"id"`
	Barcode        string             `json:"barcode"`
	PatientName    string             `json:"patient_name"`
	PatientPhone   string             `json:"patient_phone"`
	TestName       string             `json:"test_name"`
	TestPrice      int                `json:"test_price"`
	Address        string             `json:"address"`
	Type           string             `json:"type"`
	PaymentMethod  string             `json:"payment_method"`
	PaymentStatus  string             `json:"payment_status"`
	Status         string             `json:"status"`
	StatusDisplay  string             `json:"status_display"`
	CollectorName  string             `json:"collector_name,omitempty"`
	Results        []models.LabResult `json:"results,omitempty"`
	Interpretation string             `json:"interpretation,omitempty"`
	CreatedAt      string             `json:"timestamp"`
	// LegalTransitions lists the target statuses the requesting session may
	// drive this booking into right now. The client renders these, it never
	// decides them.
	LegalTransitions []string `json:"legal_transitions"`
}

type BookingStats struct {
	Total              int64 `json:"total"`
	AwaitingCollection int64 `json:"awaiting_collection"`
	ReportsDelivered   int64 `json:"reports_delivered"`
}

type Report struct {
	OrderID        string             `json:"id"`
	Barcode        string             `json:"barcode"`
	PatientName    string             `json:"patient_name"`
	PatientPhone   string             `json:"patient_phone"`
	TestName       string             `json:"test_name"`
	TestPrice      int                `json:"test_price"`
	Results        []models.LabResult `json:"results"`
	Interpretation string             `json:"interpretation"`
	DeliveredAt    string             `json:"delivered_at"`
}
