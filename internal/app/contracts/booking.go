package contracts

import (
	"context"
	"labtrack-service/internal/app/models"
	"labtrack-service/internal/pkg/dto/requests"
	"labtrack-service/internal/pkg/dto/responses"
)

// TransitionPayload is a tagged union keyed by target status. Each variant
// carries exactly the fields its transition requires, so a caller cannot
// request a transition without the data that must accompany it.
type TransitionPayload interface {
	Target() models.BookingStatus
}

// AssignCollector moves BOOKED -> COLLECTOR_ASSIGNED. Admin only.
type AssignCollector struct {
	CollectorName string
}

func (AssignCollector) Target() models.BookingStatus { return models.StatusCollectorAssigned }

// MarkSampleCollected moves COLLECTOR_ASSIGNED -> SAMPLE_COLLECTED. Collector only.
type MarkSampleCollected struct{}

func (MarkSampleCollected) Target() models.BookingStatus { return models.StatusSampleCollected }

// ReceiveSample moves SAMPLE_COLLECTED -> SAMPLE_RECEIVED. Lab tech only.
type ReceiveSample struct{}

func (ReceiveSample) Target() models.BookingStatus { return models.StatusSampleReceived }

// StartTesting moves SAMPLE_RECEIVED -> TESTING_IN_PROGRESS. Lab tech only.
type StartTesting struct{}

func (StartTesting) Target() models.BookingStatus { return models.StatusTestingInProgress }

// VerifyResults moves TESTING_IN_PROGRESS -> VERIFIED. Lab tech only. The
// engine evaluates the readings against the catalog reference data and
// attaches the result set plus an interpretation.
type VerifyResults struct {
	Readings []requests.ParameterReading
}

func (VerifyResults) Target() models.BookingStatus { return models.StatusVerified }

// DeliverReport moves VERIFIED -> REPORT_DELIVERED. Doctor only. An empty
// Interpretation reuses the one attached at verification.
type DeliverReport struct {
	Interpretation string
}

func (DeliverReport) Target() models.BookingStatus { return models.StatusReportDelivered }

type BookingUsecase interface {
	CreateBooking(ctx context.Context, session *models.Session, request *requests.CreateBooking) (*responses.Booking, error)
	Transition(ctx context.Context, session *models.Session, orderID string, payload TransitionPayload) (*responses.Booking, error)
	FindAll(ctx context.Context, session *models.Session) ([]responses.Booking, error)
	FindByOrderID(ctx context.Context, session *models.Session, orderID string) (*responses.Booking, error)
	Stats(ctx context.Context, session *models.Session) (*responses.BookingStats, error)
	Report(ctx context.Context, session *models.Session, orderID string) (*responses.Report, error)
}

type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	FindByOrderID(ctx context.Context, orderID string) (*models.Booking, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
	FindByStatus(ctx context.Context, statuses ...models.BookingStatus) ([]models.Booking, error)
	FindByPatientPhone(ctx context.Context, phone string) ([]models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	CountByStatus(ctx context.Context, status models.BookingStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
}
