package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"labtrack-service/internal/app/contracts"
	"labtrack-service/internal/app/models"
	"labtrack-service/internal/pkg/constvars"
	"labtrack-service/internal/pkg/dto/requests"
	"labtrack-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Insert(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Booking, error) {
	args := m.Called(ctx, orderID)
	if booking := args.Get(0); booking != nil {
		return booking.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if bookings := args.Get(0); bookings != nil {
		return bookings.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) FindByStatus(ctx context.Context, statuses ...models.BookingStatus) ([]models.Booking, error) {
	args := m.Called(ctx, statuses)
	if bookings := args.Get(0); bookings != nil {
		return bookings.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) FindByPatientPhone(ctx context.Context, phone string) ([]models.Booking, error) {
	args := m.Called(ctx, phone)
	if bookings := args.Get(0); bookings != nil {
		return bookings.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) CountByStatus(ctx context.Context, status models.BookingStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) FindAll(ctx context.Context, category, search string) ([]models.TestPackage, error) {
	args := m.Called(ctx, category, search)
	if packages := args.Get(0); packages != nil {
		return packages.([]models.TestPackage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogService) FindByName(ctx context.Context, name string) (*models.TestPackage, error) {
	args := m.Called(ctx, name)
	if pkg := args.Get(0); pkg != nil {
		return pkg.(*models.TestPackage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) ReferenceRangeFor(parameter string) models.ReferenceRange {
	args := m.Called(parameter)
	return args.Get(0).(models.ReferenceRange)
}

type MockInterpretationService struct {
	mock.Mock
}

func (m *MockInterpretationService) Interpret(ctx context.Context, results []models.LabResult, testName string) (string, error) {
	args := m.Called(ctx, results, testName)
	return args.String(0), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) PublishBookingCreated(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockNotificationService) PublishStatusUpdate(ctx context.Context, orderID string, status models.BookingStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type MockReportArchive struct {
	mock.Mock
}

func (m *MockReportArchive) ArchiveReport(ctx context.Context, booking *models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

// stubEvaluator applies the broad screening rule with a fixed mg/dL band so
// the engine tests do not depend on the catalog tables.
type stubEvaluator struct{}

func (stubEvaluator) Evaluate(parameter string, value float64) models.LabResult {
	return models.LabResult{
		Parameter:  parameter,
		Value:      value,
		Unit:       "mg/dL",
		Range:      "60–200",
		IsAbnormal: value > 200 || (value > 0 && value < 60),
	}
}

func (stubEvaluator) RegisterRule(parameter string, rule contracts.AbnormalRule) {}

type usecaseMocks struct {
	repo           *MockBookingRepository
	catalog        *MockCatalogService
	interpretation *MockInterpretationService
	locker         *MockLockerService
	notification   *MockNotificationService
	archive        *MockReportArchive
}

func newTestUsecase() (*bookingUsecase, *usecaseMocks) {
	mocks := &usecaseMocks{
		repo:           new(MockBookingRepository),
		catalog:        new(MockCatalogService),
		interpretation: new(MockInterpretationService),
		locker:         new(MockLockerService),
		notification:   new(MockNotificationService),
		archive:        new(MockReportArchive),
	}
	uc := &bookingUsecase{
		BookingRepository:     mocks.repo,
		CatalogService:        mocks.catalog,
		ResultEvaluator:       stubEvaluator{},
		InterpretationService: mocks.interpretation,
		LockerService:         mocks.locker,
		NotificationService:   mocks.notification,
		ReportArchive:         mocks.archive,
		Log:                   zap.NewNop(),
	}
	return uc, mocks
}

func patientSession() *models.Session {
	return &models.Session{SessionID: "sess-patient", Phone: "+919876543210", Role: models.RolePatient}
}

func staffSession(role models.UserRole) *models.Session {
	return &models.Session{SessionID: "sess-staff", Phone: "+911112223334", Role: role}
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr.StatusCode
}

func expectLock(mocks *usecaseMocks) {
	mocks.locker.On("TryLock", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(true, "lock-value", nil)
	mocks.locker.On("Unlock", mock.Anything, mock.AnythingOfType("string"), "lock-value").Return(nil)
}

func TestBookingUsecase_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Patient Creates Booking With Defaults", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		mocks.catalog.On("FindByName", mock.Anything, "Lipid Profile").Return(
			&models.TestPackage{Name: "Lipid Profile", Price: 450, Category: "Biochemistry"}, nil)
		mocks.repo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)
		mocks.notification.On("PublishBookingCreated", mock.Anything, mock.Anything).Return(nil)

		response, err := uc.CreateBooking(ctx, patientSession(), &requests.CreateBooking{
			TestName:    "Lipid Profile",
			PatientName: "John Doe",
			Address:     "Flat 101, SV Towers, Ameerpet, Hyderabad",
		})

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(response.OrderID, "BK-"))
		assert.True(t, strings.HasPrefix(response.Barcode, "SV-"))
		assert.Equal(t, string(models.StatusBooked), response.Status)
		assert.Equal(t, string(models.CollectionHome), response.Type)
		assert.Equal(t, string(models.PaymentUPI), response.PaymentMethod)
		assert.Equal(t, string(models.PaymentCompleted), response.PaymentStatus)
		assert.Equal(t, 450, response.TestPrice)
		assert.Equal(t, "+919876543210", response.PatientPhone)
		assert.Empty(t, response.LegalTransitions)
		mocks.repo.AssertExpectations(t)
	})

	t.Run("Staff Cannot Create Bookings", func(t *testing.T) {
		uc, mocks := newTestUsecase()

		_, err := uc.CreateBooking(ctx, staffSession(models.RoleAdmin), &requests.CreateBooking{
			TestName:    "Lipid Profile",
			PatientName: "John Doe",
		})

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
		mocks.repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Test Is Rejected", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		mocks.catalog.On("FindByName", mock.Anything, "Full Body Checkup").Return(nil, nil)

		_, err := uc.CreateBooking(ctx, patientSession(), &requests.CreateBooking{
			TestName:    "Full Body Checkup",
			PatientName: "John Doe",
		})

		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
		mocks.repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Notification Failure Does Not Fail Creation", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		mocks.catalog.On("FindByName", mock.Anything, "CRP").Return(
			&models.TestPackage{Name: "CRP", Price: 400}, nil)
		mocks.repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
		mocks.notification.On("PublishBookingCreated", mock.Anything, mock.Anything).
			Return(errors.New("broker down"))

		response, err := uc.CreateBooking(ctx, patientSession(), &requests.CreateBooking{
			TestName:    "CRP",
			PatientName: "John Doe",
		})

		assert.NoError(t, err)
		assert.NotNil(t, response)
	})
}

func TestBookingUsecase_Transition_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin Assigns Collector", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		expectLock(mocks)
		booking := &models.Booking{OrderID: "BK-1", Status: models.StatusBooked, PatientPhone: "+919876543210"}
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-1").Return(booking, nil)
		mocks.repo.On("Update", mock.Anything, mock.Anything).Return(nil)
		mocks.notification.On("PublishStatusUpdate", mock.Anything, "BK-1", models.StatusCollectorAssigned).Return(nil)

		response, err := uc.Transition(ctx, staffSession(models.RoleAdmin), "BK-1",
			contracts.AssignCollector{CollectorName: "Ravi Kumar"})

		assert.NoError(t, err)
		assert.Equal(t, string(models.StatusCollectorAssigned), response.Status)
		assert.Equal(t, "Ravi Kumar", response.CollectorName)
		mocks.repo.AssertExpectations(t)
	})

	t.Run("Assign Collector Without Name Is Rejected", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		expectLock(mocks)
		booking := &models.Booking{OrderID: "BK-1", Status: models.StatusBooked}
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-1").Return(booking, nil)

		_, err := uc.Transition(ctx, staffSession(models.RoleAdmin), "BK-1",
			contracts.AssignCollector{CollectorName: "   "})

		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
		mocks.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Lab Tech Verifies Results With Interpretation", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		expectLock(mocks)
		booking := &models.Booking{OrderID: "BK-2", TestName: "Lipid Profile", Status: models.StatusTestingInProgress}
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-2").Return(booking, nil)
		mocks.interpretation.On("Interpret", mock.Anything, mock.Anything, "Lipid Profile").
			Return("Low HDL suggests cardiovascular risk.", nil)
		mocks.repo.On("Update", mock.Anything, mock.Anything).Return(nil)
		mocks.notification.On("PublishStatusUpdate", mock.Anything, "BK-2", models.StatusVerified).Return(nil)

		response, err := uc.Transition(ctx, staffSession(models.RoleLabTech), "BK-2",
			contracts.VerifyResults{Readings: []requests.ParameterReading{
				{Parameter: "Total Cholesterol", Value: 190},
				{Parameter: "HDL", Value: 35},
			}})

		assert.NoError(t, err)
		assert.Equal(t, string(models.StatusVerified), response.Status)
		assert.Len(t, response.Results, 2)
		assert.False(t, response.Results[0].IsAbnormal)
		assert.True(t, response.Results[1].IsAbnormal)
		assert.Equal(t, "Low HDL suggests cardiovascular risk.", response.Interpretation)
	})

	t.Run("Provider Failure Falls Back To Fixed Text", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		expectLock(mocks)
		booking := &models.Booking{OrderID: "BK-3", TestName: "CRP", Status: models.StatusTestingInProgress}
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-3").Return(booking, nil)
		mocks.interpretation.On("Interpret", mock.Anything, mock.Anything, "CRP").
			Return("", errors.New("provider timeout"))
		mocks.repo.On("Update", mock.Anything, mock.Anything).Return(nil)
		mocks.notification.On("PublishStatusUpdate", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		response, err := uc.Transition(ctx, staffSession(models.RoleLabTech), "BK-3",
			contracts.VerifyResults{Readings: []requests.ParameterReading{{Parameter: "CRP Value", Value: 12}}})

		assert.NoError(t, err)
		assert.Equal(t, constvars.InterpretationFallbackOnError, response.Interpretation)
	})

	t.Run("Empty Provider Answer Uses Default Text", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		expectLock(mocks)
		booking := &models.Booking{OrderID: "BK-4", TestName: "CRP", Status: models.StatusTestingInProgress}
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-4").Return(booking, nil)
		mocks.interpretation.On("Interpret", mock.Anything, mock.Anything, "CRP").Return("  ", nil)
		mocks.repo.On("Update", mock.Anything, mock.Anything).Return(nil)
		mocks.notification.On("PublishStatusUpdate", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		response, err := uc.Transition(ctx, staffSession(models.RoleLabTech), "BK-4",
			contracts.VerifyResults{Readings: []requests.ParameterReading{{Parameter: "CRP Value", Value: 3}}})

		assert.NoError(t, err)
		assert.Equal(t, constvars.InterpretationFallbackDefault, response.Interpretation)
	})

	t.Run("Verify Without Readings Is Rejected", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		expectLock(mocks)
		booking := &models.Booking{OrderID: "BK-5", Status: models.StatusTestingInProgress}
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-5").Return(booking, nil)

		_, err := uc.Transition(ctx, staffSession(models.RoleLabTech), "BK-5",
			contracts.VerifyResults{})

		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
		mocks.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Doctor Delivers Report And It Is Archived", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		expectLock(mocks)
		booking := &models.Booking{
			OrderID:        "BK-6",
			Status:         models.StatusVerified,
			Interpretation: "All values within reference ranges.",
			Results:        []models.LabResult{{Parameter: "TSH", Value: 2.1}},
		}
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-6").Return(booking, nil)
		mocks.repo.On("Update", mock.Anything, mock.Anything).Return(nil)
		mocks.notification.On("PublishStatusUpdate", mock.Anything, "BK-6", models.StatusReportDelivered).Return(nil)
		mocks.archive.On("ArchiveReport", mock.Anything, mock.Anything).Return("reports/BK-6.json", nil)

		response, err := uc.Transition(ctx, staffSession(models.RoleDoctor), "BK-6",
			contracts.DeliverReport{})

		assert.NoError(t, err)
		assert.Equal(t, string(models.StatusReportDelivered), response.Status)
		assert.Equal(t, "All values within reference ranges.", response.Interpretation)
		mocks.archive.AssertCalled(t, "ArchiveReport", mock.Anything, mock.Anything)
	})

	t.Run("Delivery Without Any Interpretation Uses Default Text", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		expectLock(mocks)
		booking := &models.Booking{OrderID: "BK-7", Status: models.StatusVerified}
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-7").Return(booking, nil)
		mocks.repo.On("Update", mock.Anything, mock.Anything).Return(nil)
		mocks.notification.On("PublishStatusUpdate", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mocks.archive.On("ArchiveReport", mock.Anything, mock.Anything).Return("reports/BK-7.json", nil)

		response, err := uc.Transition(ctx, staffSession(models.RoleDoctor), "BK-7",
			contracts.DeliverReport{})

		assert.NoError(t, err)
		assert.Equal(t, constvars.InterpretationFallbackDefault, response.Interpretation)
	})
}

func TestBookingUsecase_Transition_Guards(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Booking", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		expectLock(mocks)
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-404").Return(nil, nil)

		_, err := uc.Transition(ctx, staffSession(models.RoleAdmin), "BK-404",
			contracts.AssignCollector{CollectorName: "Ravi Kumar"})

		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})

	t.Run("Skipping A Step Is An Illegal Transition", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		expectLock(mocks)
		booking := &models.Booking{OrderID: "BK-8", Status: models.StatusBooked}
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-8").Return(booking, nil)

		_, err := uc.Transition(ctx, staffSession(models.RoleCollector), "BK-8",
			contracts.MarkSampleCollected{})

		assert.Equal(t, constvars.StatusUnprocessableEntity, statusCodeOf(t, err))
		assert.Equal(t, models.StatusBooked, booking.Status)
		mocks.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Wrong Role Leaves Booking Unchanged", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		expectLock(mocks)
		booking := &models.Booking{OrderID: "BK-9", Status: models.StatusBooked}
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-9").Return(booking, nil)

		_, err := uc.Transition(ctx, staffSession(models.RoleDoctor), "BK-9",
			contracts.AssignCollector{CollectorName: "Ravi Kumar"})

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
		assert.Equal(t, models.StatusBooked, booking.Status)
		assert.Empty(t, booking.CollectorName)
		mocks.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Pending Transition Blocks A Second One", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		_, err := uc.Transition(ctx, staffSession(models.RoleAdmin), "BK-10",
			contracts.AssignCollector{CollectorName: "Ravi Kumar"})

		assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err))
		mocks.repo.AssertNotCalled(t, "FindByOrderID", mock.Anything, mock.Anything)
	})

	t.Run("Repository Update Failure Surfaces", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		expectLock(mocks)
		booking := &models.Booking{OrderID: "BK-11", Status: models.StatusBooked}
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-11").Return(booking, nil)
		mocks.repo.On("Update", mock.Anything, mock.Anything).Return(exceptions.ErrMongoDBUpdateDocument(errors.New("write failed")))

		_, err := uc.Transition(ctx, staffSession(models.RoleAdmin), "BK-11",
			contracts.AssignCollector{CollectorName: "Ravi Kumar"})

		assert.Error(t, err)
		mocks.notification.AssertNotCalled(t, "PublishStatusUpdate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingUsecase_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Patient Sees Own Bookings Only", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		session := patientSession()
		mocks.repo.On("FindByPatientPhone", mock.Anything, session.Phone).Return([]models.Booking{
			{OrderID: "BK-1", Status: models.StatusBooked, PatientPhone: session.Phone},
		}, nil)

		bookings, err := uc.FindAll(ctx, session)

		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		mocks.repo.AssertNotCalled(t, "FindAll", mock.Anything)
	})

	t.Run("Admin Sees Everything", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		mocks.repo.On("FindAll", mock.Anything).Return([]models.Booking{
			{OrderID: "BK-1", Status: models.StatusBooked},
			{OrderID: "BK-2", Status: models.StatusVerified},
		}, nil)

		bookings, err := uc.FindAll(ctx, staffSession(models.RoleAdmin))

		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
	})

	t.Run("Collector Sees Assigned Work", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		mocks.repo.On("FindByStatus", mock.Anything,
			[]models.BookingStatus{models.StatusCollectorAssigned, models.StatusSampleCollected}).
			Return([]models.Booking{{OrderID: "BK-3", Status: models.StatusCollectorAssigned}}, nil)

		bookings, err := uc.FindAll(ctx, staffSession(models.RoleCollector))

		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.Equal(t, []string{string(models.StatusSampleCollected)}, bookings[0].LegalTransitions)
	})
}

func TestBookingUsecase_FindByOrderID(t *testing.T) {
	ctx := context.Background()

	t.Run("Patient Cannot See Foreign Booking", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		booking := &models.Booking{OrderID: "BK-1", PatientPhone: "+910000000000"}
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-1").Return(booking, nil)

		_, err := uc.FindByOrderID(ctx, patientSession(), "BK-1")

		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})

	t.Run("Staff Sees Any Booking", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		booking := &models.Booking{OrderID: "BK-1", PatientPhone: "+910000000000", Status: models.StatusVerified}
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-1").Return(booking, nil)

		response, err := uc.FindByOrderID(ctx, staffSession(models.RoleDoctor), "BK-1")

		assert.NoError(t, err)
		assert.Equal(t, []string{string(models.StatusReportDelivered)}, response.LegalTransitions)
	})
}

func TestBookingUsecase_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("Patient Is Forbidden", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.Stats(ctx, patientSession())

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
	})

	t.Run("Counts Are Aggregated", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		mocks.repo.On("Count", mock.Anything).Return(int64(12), nil)
		mocks.repo.On("CountByStatus", mock.Anything, models.StatusCollectorAssigned).Return(int64(3), nil)
		mocks.repo.On("CountByStatus", mock.Anything, models.StatusReportDelivered).Return(int64(5), nil)

		stats, err := uc.Stats(ctx, staffSession(models.RoleAdmin))

		assert.NoError(t, err)
		assert.Equal(t, int64(12), stats.Total)
		assert.Equal(t, int64(3), stats.AwaitingCollection)
		assert.Equal(t, int64(5), stats.ReportsDelivered)
	})
}

func TestBookingUsecase_Report(t *testing.T) {
	ctx := context.Background()

	t.Run("Report Before Delivery Is Rejected", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		booking := &models.Booking{OrderID: "BK-1", Status: models.StatusVerified, PatientPhone: "+919876543210"}
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-1").Return(booking, nil)

		_, err := uc.Report(ctx, patientSession(), "BK-1")

		assert.Equal(t, constvars.StatusUnprocessableEntity, statusCodeOf(t, err))
	})

	t.Run("Delivered Report Is Returned", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		booking := &models.Booking{
			OrderID:        "BK-1",
			Barcode:        "SV-20260901-AB12CD",
			Status:         models.StatusReportDelivered,
			PatientPhone:   "+919876543210",
			TestName:       "Thyroid Profile",
			Results:        []models.LabResult{{Parameter: "TSH", Value: 2.1}},
			Interpretation: "Thyroid function is normal.",
			UpdatedAt:      time.Now(),
		}
		mocks.repo.On("FindByOrderID", mock.Anything, "BK-1").Return(booking, nil)

		report, err := uc.Report(ctx, patientSession(), "BK-1")

		assert.NoError(t, err)
		assert.Equal(t, "Thyroid Profile", report.TestName)
		assert.Equal(t, "Thyroid function is normal.", report.Interpretation)
		assert.Len(t, report.Results, 1)
	})
}
