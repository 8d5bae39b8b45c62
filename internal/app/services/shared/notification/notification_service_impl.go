package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"labtrack-service/internal/app/contracts"
	"labtrack-service/internal/app/models"
	"labtrack-service/internal/pkg/constvars"
	"labtrack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type notificationService struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

var (
	notificationServiceInstance contracts.NotificationService
	onceNotificationService     sync.Once
	notificationServiceError    error
)

type notificationMessage struct {
	OrderID   string `json:"order_id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func NewNotificationService(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.NotificationService, error) {
	onceNotificationService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			notificationServiceError = err
			return
		}
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			notificationServiceError = err
			return
		}
		instance := &notificationService{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
		notificationServiceInstance = instance
	})
	return notificationServiceInstance, notificationServiceError
}

func (s *notificationService) PublishBookingCreated(ctx context.Context, booking *models.Booking) error {
	message := fmt.Sprintf(constvars.NotificationNewBookingFormat, booking.OrderID, booking.PatientName, booking.TestName)
	return s.publish(ctx, booking.OrderID, message)
}

func (s *notificationService) PublishStatusUpdate(ctx context.Context, orderID string, status models.BookingStatus) error {
	message := fmt.Sprintf(constvars.NotificationMessageFormat, orderID, status.Display())
	return s.publish(ctx, orderID, message)
}

func (s *notificationService) publish(ctx context.Context, orderID, text string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	s.Log.Info("notificationService.publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)

	body, err := json.Marshal(notificationMessage{
		OrderID:   orderID,
		Message:   text,
		Timestamp: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		s.Log.Error("notificationService.publish error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("notificationService.publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("notificationService.publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)

	return nil
}
