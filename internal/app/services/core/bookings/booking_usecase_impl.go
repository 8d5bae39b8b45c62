package bookings

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"labtrack-service/internal/app/contracts"
	"labtrack-service/internal/app/models"
	"labtrack-service/internal/pkg/constvars"
	"labtrack-service/internal/pkg/dto/requests"
	"labtrack-service/internal/pkg/dto/responses"
	"labtrack-service/internal/pkg/exceptions"
	"labtrack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

type bookingUsecase struct {
	BookingRepository     contracts.BookingRepository
	CatalogService        contracts.CatalogService
	ResultEvaluator       contracts.ResultEvaluator
	InterpretationService contracts.InterpretationService
	LockerService         contracts.LockerService
	NotificationService   contracts.NotificationService
	ReportArchive         contracts.ReportArchive
	Log                   *zap.Logger
}

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	catalogService contracts.CatalogService,
	resultEvaluator contracts.ResultEvaluator,
	interpretationService contracts.InterpretationService,
	lockerService contracts.LockerService,
	notificationService contracts.NotificationService,
	reportArchive contracts.ReportArchive,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			BookingRepository:     bookingRepository,
			CatalogService:        catalogService,
			ResultEvaluator:       resultEvaluator,
			InterpretationService: interpretationService,
			LockerService:         lockerService,
			NotificationService:   notificationService,
			ReportArchive:         reportArchive,
			Log:                   logger,
		}
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, session *models.Session, request *requests.CreateBooking) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTestNameKey, request.TestName),
		zap.String(constvars.LoggingRoleKey, string(session.Role)),
	)

	if !session.IsPatient() {
		return nil, exceptions.ErrRoleNotPermitted(nil)
	}

	testPackage, err := uc.CatalogService.FindByName(ctx, request.TestName)
	if err != nil {
		return nil, err
	}
	if testPackage == nil {
		return nil, exceptions.ErrTestNotFound(nil)
	}

	collectionType := models.CollectionType(request.Type)
	if collectionType == "" {
		collectionType = models.CollectionHome
	}
	paymentMethod := models.PaymentMethod(request.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = models.PaymentUPI
	}

	now := time.Now()
	booking := &models.Booking{
		OrderID:       utils.GenerateOrderID(),
		Barcode:       utils.GenerateBarcode(),
		PatientName:   request.PatientName,
		PatientPhone:  session.Phone,
		TestName:      testPackage.Name,
		TestPrice:     testPackage.Price,
		Address:       request.Address,
		Type:          collectionType,
		PaymentMethod: paymentMethod,
		PaymentStatus: models.PaymentCompleted,
		Status:        models.StatusBooked,
		CreatedAt:     now,
		UpdatedAt:     now,
		OTPVerified:   true,
	}

	if err := uc.BookingRepository.Insert(ctx, booking); err != nil {
		return nil, err
	}

	uc.Log.Info("bookingUsecase.CreateBooking booking created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, booking.OrderID),
		zap.String(constvars.LoggingBarcodeKey, booking.Barcode),
	)

	if err := uc.NotificationService.PublishBookingCreated(ctx, booking); err != nil {
		uc.Log.Warn("bookingUsecase.CreateBooking notification publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, booking.OrderID),
			zap.Error(err),
		)
	}

	return uc.toResponse(booking, session), nil
}

// Transition drives a booking one step forward. The per-order lock guarantees
// a single pending transition per booking; every check runs against the
// freshly loaded document and nothing is persisted until all checks pass.
func (uc *bookingUsecase) Transition(ctx context.Context, session *models.Session, orderID string, payload contracts.TransitionPayload) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	target := payload.Target()
	uc.Log.Info("bookingUsecase.Transition called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.String(constvars.LoggingTargetStatusKey, string(target)),
		zap.String(constvars.LoggingRoleKey, string(session.Role)),
	)

	lockKey := fmt.Sprintf(constvars.RedisBookingLockKeyFormat, orderID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, constvars.BookingLockTTLInSeconds*time.Second)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingLocked(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("bookingUsecase.Transition failed to release lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingOrderIDKey, orderID),
				zap.Error(err),
			)
		}
	}()

	booking, err := uc.BookingRepository.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil)
	}

	if !booking.Status.CanTransition(target) {
		return nil, exceptions.ErrIllegalTransition(fmt.Errorf("%s -> %s", booking.Status, target))
	}
	if !session.Role.MayReach(target) {
		return nil, exceptions.ErrRoleNotPermitted(fmt.Errorf("role %s, target %s", session.Role, target))
	}

	if err := uc.applyPayload(ctx, booking, payload); err != nil {
		return nil, err
	}

	booking.Status = target
	booking.UpdatedAt = time.Now()

	if err := uc.BookingRepository.Update(ctx, booking); err != nil {
		return nil, err
	}

	uc.Log.Info("bookingUsecase.Transition succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.String(constvars.LoggingStatusKey, string(booking.Status)),
	)

	if err := uc.NotificationService.PublishStatusUpdate(ctx, booking.OrderID, booking.Status); err != nil {
		uc.Log.Warn("bookingUsecase.Transition notification publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
	}

	if booking.Status == models.StatusReportDelivered {
		if _, err := uc.ReportArchive.ArchiveReport(ctx, booking); err != nil {
			uc.Log.Warn("bookingUsecase.Transition report archive failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingOrderIDKey, orderID),
				zap.Error(err),
			)
		}
	}

	return uc.toResponse(booking, session), nil
}

// applyPayload mutates the in-memory booking with the data carried by the
// payload. Persisting is the caller's job; an error here leaves the stored
// document untouched.
func (uc *bookingUsecase) applyPayload(ctx context.Context, booking *models.Booking, payload contracts.TransitionPayload) error {
	switch p := payload.(type) {
	case contracts.AssignCollector:
		if strings.TrimSpace(p.CollectorName) == "" {
			return exceptions.ErrCollectorNameRequired(nil)
		}
		booking.CollectorName = p.CollectorName

	case contracts.MarkSampleCollected, contracts.ReceiveSample, contracts.StartTesting:
		// Status-only steps.

	case contracts.VerifyResults:
		if len(p.Readings) == 0 {
			return exceptions.ErrReadingsRequired(nil)
		}
		results := make([]models.LabResult, 0, len(p.Readings))
		for _, reading := range p.Readings {
			results = append(results, uc.ResultEvaluator.Evaluate(reading.Parameter, reading.Value))
		}
		booking.Results = results
		booking.Interpretation = uc.interpret(ctx, booking)

	case contracts.DeliverReport:
		if strings.TrimSpace(p.Interpretation) != "" {
			booking.Interpretation = p.Interpretation
		} else if booking.Interpretation == "" {
			booking.Interpretation = constvars.InterpretationFallbackDefault
		}
	}
	return nil
}

// interpret asks the provider for a summary and falls back to fixed text when
// the provider fails or returns nothing. Verification never fails on the
// provider's account.
func (uc *bookingUsecase) interpret(ctx context.Context, booking *models.Booking) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	answer, err := uc.InterpretationService.Interpret(ctx, booking.Results, booking.TestName)
	if err != nil {
		uc.Log.Warn("bookingUsecase.interpret provider failed, using fallback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, booking.OrderID),
			zap.Error(err),
		)
		return constvars.InterpretationFallbackOnError
	}
	if strings.TrimSpace(answer) == "" {
		return constvars.InterpretationFallbackDefault
	}
	return answer
}

// FindAll returns the bookings visible to the session's role. Patients see
// their own orders; staff roles see the slice of the pipeline they work.
func (uc *bookingUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, string(session.Role)),
	)

	var bookings []models.Booking
	var err error
	switch session.Role {
	case models.RolePatient:
		bookings, err = uc.BookingRepository.FindByPatientPhone(ctx, session.Phone)
	case models.RoleAdmin:
		bookings, err = uc.BookingRepository.FindAll(ctx)
	case models.RoleCollector:
		bookings, err = uc.BookingRepository.FindByStatus(ctx, models.StatusCollectorAssigned, models.StatusSampleCollected)
	case models.RoleLabTech:
		bookings, err = uc.BookingRepository.FindByStatus(ctx,
			models.StatusSampleCollected, models.StatusSampleReceived, models.StatusTestingInProgress, models.StatusVerified)
	case models.RoleDoctor:
		bookings, err = uc.BookingRepository.FindByStatus(ctx, models.StatusVerified, models.StatusReportDelivered)
	default:
		return nil, exceptions.ErrInvalidRoleType(fmt.Errorf("role %s", session.Role))
	}
	if err != nil {
		return nil, err
	}

	result := make([]responses.Booking, 0, len(bookings))
	for i := range bookings {
		result = append(result, *uc.toResponse(&bookings[i], session))
	}
	return result, nil
}

func (uc *bookingUsecase) FindByOrderID(ctx context.Context, session *models.Session, orderID string) (*responses.Booking, error) {
	booking, err := uc.fetchVisible(ctx, session, orderID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(booking, session), nil
}

func (uc *bookingUsecase) Stats(ctx context.Context, session *models.Session) (*responses.BookingStats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Stats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, string(session.Role)),
	)

	if session.IsPatient() {
		return nil, exceptions.ErrRoleNotPermitted(nil)
	}

	total, err := uc.BookingRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	awaiting, err := uc.BookingRepository.CountByStatus(ctx, models.StatusCollectorAssigned)
	if err != nil {
		return nil, err
	}
	delivered, err := uc.BookingRepository.CountByStatus(ctx, models.StatusReportDelivered)
	if err != nil {
		return nil, err
	}

	return &responses.BookingStats{
		Total:              total,
		AwaitingCollection: awaiting,
		ReportsDelivered:   delivered,
	}, nil
}

func (uc *bookingUsecase) Report(ctx context.Context, session *models.Session, orderID string) (*responses.Report, error) {
	booking, err := uc.fetchVisible(ctx, session, orderID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.AtOrPast(models.StatusReportDelivered) {
		return nil, exceptions.ErrReportNotReady(fmt.Errorf("status %s", booking.Status))
	}

	return &responses.Report{
		OrderID:        booking.OrderID,
		Barcode:        booking.Barcode,
		PatientName:    booking.PatientName,
		PatientPhone:   booking.PatientPhone,
		TestName:       booking.TestName,
		TestPrice:      booking.TestPrice,
		Results:        booking.Results,
		Interpretation: booking.Interpretation,
		DeliveredAt:    booking.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// fetchVisible loads a booking and enforces visibility: a patient can only
// read their own orders, and a foreign order is indistinguishable from a
// missing one.
func (uc *bookingUsecase) fetchVisible(ctx context.Context, session *models.Session, orderID string) (*models.Booking, error) {
	booking, err := uc.BookingRepository.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil)
	}
	if session.IsPatient() && booking.PatientPhone != session.Phone {
		return nil, exceptions.ErrBookingNotFound(nil)
	}
	return booking, nil
}

func (uc *bookingUsecase) toResponse(booking *models.Booking, session *models.Session) *responses.Booking {
	legal := make([]string, 0, 1)
	if next, ok := booking.Status.Next(); ok && session.Role.MayReach(next) {
		legal = append(legal, string(next))
	}

	return &responses.Booking{
		OrderID:          booking.OrderID,
		Barcode:          booking.Barcode,
		PatientName:      booking.PatientName,
		PatientPhone:     booking.PatientPhone,
		TestName:         booking.TestName,
		TestPrice:        booking.TestPrice,
		Address:          booking.Address,
		Type:             string(booking.Type),
		PaymentMethod:    string(booking.PaymentMethod),
		PaymentStatus:    string(booking.PaymentStatus),
		Status:           string(booking.Status),
		StatusDisplay:    booking.Status.Display(),
		CollectorName:    booking.CollectorName,
		Results:          booking.Results,
		Interpretation:   booking.Interpretation,
		CreatedAt:        booking.CreatedAt.Format(time.RFC3339),
		LegalTransitions: legal,
	}
}
