package contracts

import (
	"context"
	"labtrack-service/internal/app/models"
)

// NotificationService emits human-readable update messages as transition side
// effects. Delivery is best-effort: a publish failure is logged, not returned
// to the transition caller.
type NotificationService interface {
	PublishBookingCreated(ctx context.Context, booking *models.Booking) error
	PublishStatusUpdate(ctx context.Context, orderID string, status models.BookingStatus) error
}
