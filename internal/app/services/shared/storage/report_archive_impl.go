package storage

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"labtrack-service/internal/app/contracts"
	"labtrack-service/internal/app/models"
	"labtrack-service/internal/pkg/constvars"
	"labtrack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	reportArchiveInstance contracts.ReportArchive
	onceReportArchive     sync.Once
)

type minioReportArchive struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
}

func NewMinioReportArchive(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.ReportArchive {
	onceReportArchive.Do(func() {
		reportArchiveInstance = &minioReportArchive{
			MinioClient: minioClient,
			BucketName:  bucketName,
			Log:         logger,
		}
	})
	return reportArchiveInstance
}

type archivedReport struct {
	OrderID        string             `json:"order_id"`
	Barcode        string             `json:"barcode"`
	PatientName    string             `json:"patient_name"`
	TestName       string             `json:"test_name"`
	Results        []models.LabResult `json:"results"`
	Interpretation string             `json:"interpretation"`
	DeliveredBy    string             `json:"delivered_by"`
}

func (m *minioReportArchive) ArchiveReport(ctx context.Context, booking *models.Booking) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("minioReportArchive.ArchiveReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, booking.OrderID),
		zap.String(constvars.LoggingBucketNameKey, m.BucketName),
	)

	payload, err := json.Marshal(archivedReport{
		OrderID:        booking.OrderID,
		Barcode:        booking.Barcode,
		PatientName:    booking.PatientName,
		TestName:       booking.TestName,
		Results:        booking.Results,
		Interpretation: booking.Interpretation,
		DeliveredBy:    constvars.RoleDoctor,
	})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := fmt.Sprintf("reports/%s.json", booking.OrderID)
	_, err = m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationJSON,
		},
	)
	if err != nil {
		m.Log.Error("minioReportArchive.ArchiveReport error creating object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	m.Log.Info("minioReportArchive.ArchiveReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return objectName, nil
}
