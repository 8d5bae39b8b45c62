package models

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	StatusBooked            BookingStatus = "BOOKED"
	StatusCollectorAssigned BookingStatus = "COLLECTOR_ASSIGNED"
	StatusSampleCollected   BookingStatus = "SAMPLE_COLLECTED"
	StatusSampleReceived    BookingStatus = "SAMPLE_RECEIVED"
	StatusTestingInProgress BookingStatus = "TESTING_IN_PROGRESS"
	StatusVerified          BookingStatus = "VERIFIED"
	StatusReportDelivered   BookingStatus = "REPORT_DELIVERED"
)

// StatusSequence is the authoritative fulfillment order. Strictly linear:
// no branches, no cycles, no cancellation states.
var StatusSequence = []BookingStatus{
	StatusBooked,
	StatusCollectorAssigned,
	StatusSampleCollected,
	StatusSampleReceived,
	StatusTestingInProgress,
	StatusVerified,
	StatusReportDelivered,
}

var statusIndex = func() map[BookingStatus]int {
	index := make(map[BookingStatus]int, len(StatusSequence))
	for i, status := range StatusSequence {
		index[status] = i
	}
	return index
}()

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if _, ok := statusIndex[status]; !ok {
		return "", fmt.Errorf("unknown booking status: %s", s)
	}
	return status, nil
}

// Next returns the immediate next status in the sequence, or false when the
// status is terminal.
func (s BookingStatus) Next() (BookingStatus, bool) {
	i, ok := statusIndex[s]
	if !ok || i == len(StatusSequence)-1 {
		return "", false
	}
	return StatusSequence[i+1], true
}

// CanTransition reports whether target is the immediate next status after s.
// Skips and regressions are both rejected.
func (s BookingStatus) CanTransition(target BookingStatus) bool {
	next, ok := s.Next()
	return ok && next == target
}

func (s BookingStatus) IsTerminal() bool {
	return s == StatusReportDelivered
}

// AtOrPast reports whether s is at or beyond the given status in the sequence.
func (s BookingStatus) AtOrPast(other BookingStatus) bool {
	i, ok := statusIndex[s]
	j, okOther := statusIndex[other]
	return ok && okOther && i >= j
}

func (s BookingStatus) Display() string {
	switch s {
	case StatusBooked:
		return "Booked"
	case StatusCollectorAssigned:
		return "Assigned"
	case StatusSampleCollected:
		return "Collected"
	case StatusSampleReceived:
		return "At Lab"
	case StatusTestingInProgress:
		return "Testing"
	case StatusVerified:
		return "Doctor Verified"
	case StatusReportDelivered:
		return "Delivered"
	}
	return string(s)
}

type CollectionType string

const (
	CollectionHome CollectionType = "HOME"
	CollectionLab  CollectionType = "LAB"
)

type PaymentMethod string

const (
	PaymentUPI  PaymentMethod = "UPI"
	PaymentCard PaymentMethod = "CARD"
	PaymentCash PaymentMethod = "CASH"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
)

// LabResult is a single evaluated parameter. Immutable after creation; a
// re-entry replaces the whole result set on the booking.
type LabResult struct {
	Parameter  string  `json:"parameter" bson:"parameter"`
	Value      float64 `json:"value" bson:"value"`
	Unit       string  `json:"unit" bson:"unit"`
	Range      string  `json:"range" bson:"range"`
	IsAbnormal bool    `json:"isAbnormal" bson:"isAbnormal"`
}

// Booking is the central order entity. Owned by the booking usecase after
// creation and mutated only through validated transitions. OrderID, Barcode,
// TestName and TestPrice never change after creation; TestPrice is the
// catalog price at booking time regardless of later catalog edits.
type Booking struct {
	OrderID        string         `json:"id" bson:"orderId"`
	Barcode        string         `json:"barcode" bson:"barcode"`
	PatientName    string         `json:"patientName" bson:"patientName"`
	PatientPhone   string         `json:"patientPhone" bson:"patientPhone"`
	TestName       string         `json:"testName" bson:"testName"`
	TestPrice      int            `json:"testPrice" bson:"testPrice"`
	Address        string         `json:"address" bson:"address"`
	Type           CollectionType `json:"type" bson:"type"`
	PaymentMethod  PaymentMethod  `json:"paymentMethod" bson:"paymentMethod"`
	PaymentStatus  PaymentStatus  `json:"paymentStatus" bson:"paymentStatus"`
	Status         BookingStatus  `json:"status" bson:"status"`
	CollectorName  string         `json:"collectorName,omitempty" bson:"collectorName,omitempty"`
	Results        []LabResult    `json:"results,omitempty" bson:"results,omitempty"`
	Interpretation string         `json:"interpretation,omitempty" bson:"interpretation,omitempty"`
	CreatedAt      time.Time      `json:"timestamp" bson:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt" bson:"updatedAt"`
	OTPVerified    bool           `json:"otpVerified,omitempty" bson:"otpVerified,omitempty"`
}

// Clone returns a deep copy. Readers always receive snapshots, never a live
// reference into the repository's collection.
func (b *Booking) Clone() *Booking {
	snapshot := *b
	if b.Results != nil {
		snapshot.Results = make([]LabResult, len(b.Results))
		copy(snapshot.Results, b.Results)
	}
	return &snapshot
}
