package contracts

import (
	"context"
	"labtrack-service/internal/app/models"
)

// ReportArchive stores the finalized report artifact once a booking reaches
// REPORT_DELIVERED.
type ReportArchive interface {
	ArchiveReport(ctx context.Context, booking *models.Booking) (objectName string, err error)
}
