package impl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"beacon/config"
	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrEmptyPayload is returned when a dispatch is requested without a payload title
	ErrEmptyPayload = errors.New("notification payload must have a title")
)

const defaultHistoryLimit = 50

type dispatchService struct {
	logger           *slog.Logger
	appRepo          repository.AppRepository
	deviceRepo       repository.DeviceRepository
	notificationRepo repository.NotificationRepository
	pushSvc          service.PushService
	publisher        service.EventPublisher
	policy           RetryPolicy
}

// NewDispatchService creates a new dispatch engine instance
func NewDispatchService(
	logger *slog.Logger,
	appRepo repository.AppRepository,
	deviceRepo repository.DeviceRepository,
	notificationRepo repository.NotificationRepository,
	pushSvc service.PushService,
	publisher service.EventPublisher,
	cfg *config.Config,
) usecase.DispatchUsecase {
	return &dispatchService{
		logger:           logger,
		appRepo:          appRepo,
		deviceRepo:       deviceRepo,
		notificationRepo: notificationRepo,
		pushSvc:          pushSvc,
		publisher:        publisher,
		policy:           NewRetryPolicy(cfg.Push.Retry),
	}
}

// Dispatch delivers a notification payload to the resolved audience of an app.
//
// The notification record is inserted and committed before any delivery
// attempt, so every dispatch call is auditable even if the process dies
// mid-fan-out. Each resolved device then gets its own delivery unit goroutine;
// log rows and deactivations are committed independently from those units.
// A crash between the insert and the fan-out leaves a notification with zero
// logs, indistinguishable from an empty audience. That gap is accepted.
func (s *dispatchService) Dispatch(
	ctx context.Context,
	appID uuid.UUID,
	payload *entity.NotificationPayload,
	externalUserIDs []string,
) (*usecase.DispatchResult, error) {
	if payload == nil || payload.Title == "" {
		return nil, ErrEmptyPayload
	}

	app, err := s.appRepo.FindAppByID(ctx, appID)
	if err != nil {
		if errors.Is(err, repository.ErrAppNotFound) {
			return nil, domainerrors.ErrAppNotFound
		}

		return nil, fmt.Errorf("failed to fetch app: %w", err)
	}

	notification := &entity.Notification{
		ID:        uuid.New(),
		AppID:     appID,
		Payload:   payload,
		IsSilent:  payload.Silent,
		CreatedAt: time.Now(),
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	devices, err := s.deviceRepo.FindActiveDevicesByApp(ctx, appID, externalUserIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve devices: %w", err)
	}

	result := &usecase.DispatchResult{NotificationID: notification.ID}

	if len(devices) == 0 {
		s.publishDispatchEvent(ctx, notification, result)

		return result, nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	// Delivery units and their log writes run on a detached context: a caller
	// that gives up waiting must not leave half-written delivery history. The
	// wait below is the only point the caller can abandon.
	unitCtx := context.WithoutCancel(ctx)
	keys := app.Keys()

	var (
		wg     sync.WaitGroup
		sent   atomic.Int64
		failed atomic.Int64
	)

	for _, device := range devices {
		wg.Add(1)
		go func(device *entity.Device) {
			defer wg.Done()

			if s.deliverToDevice(unitCtx, notification, device, keys, body) {
				sent.Add(1)
			} else {
				failed.Add(1)
			}
		}(device)
	}

	wg.Wait()

	result.Sent = int(sent.Load())
	result.Failed = int(failed.Load())

	s.logger.Info("dispatch completed",
		slog.String("notification_id", notification.ID.String()),
		slog.String("app_id", appID.String()),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	s.publishDispatchEvent(ctx, notification, result)

	return result, nil
}

// deliverToDevice runs one delivery unit: bounded attempts with backoff, then
// exactly one delivery log at the terminal state. Reports whether the push
// service accepted the message.
func (s *dispatchService) deliverToDevice(
	ctx context.Context,
	notification *entity.Notification,
	device *entity.Device,
	keys entity.VAPIDKeys,
	body []byte,
) bool {
	var (
		lastErr  error
		decision Decision
	)

	for attempt := 0; ; attempt++ {
		lastErr = s.pushSvc.Send(ctx, device.Subscription, keys, body)
		if lastErr == nil {
			s.writeDeliveryLog(ctx, &entity.DeliveryLog{
				ID:             uuid.New(),
				NotificationID: notification.ID,
				DeviceID:       device.ID,
				Status:         entity.DeliveryStatusSent,
				SentAt:         time.Now(),
			})

			return true
		}

		decision = ClassifyPushError(lastErr)
		if !s.policy.ShouldRetry(decision, attempt) {
			break
		}

		// Backoff is a suspension point local to this unit only.
		time.Sleep(s.policy.Delay(attempt))
	}

	errorMessage := fmt.Sprintf("%s: %v", decision.ErrorCategory(), lastErr)

	s.writeDeliveryLog(ctx, &entity.DeliveryLog{
		ID:             uuid.New(),
		NotificationID: notification.ID,
		DeviceID:       device.ID,
		Status:         entity.DeliveryStatusFailed,
		ErrorMessage:   errorMessage,
		SentAt:         time.Now(),
	})

	s.logger.Warn("delivery failed",
		slog.String("notification_id", notification.ID.String()),
		slog.String("device_id", device.ID.String()),
		slog.String("error", errorMessage),
	)

	// An expired subscription is deactivated before the unit completes so the
	// device is never targeted again. The row itself is kept for history.
	if decision == DecisionPermanentGone {
		if err := s.deviceRepo.DeactivateDevice(ctx, device.ID); err != nil {
			s.logger.Error("failed to deactivate expired device",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return false
}

// writeDeliveryLog persists one terminal outcome. A failed write after a
// successful push is logged and dropped, never retried: re-driving the unit
// could duplicate the notification on the device, which is worse than a
// missing log row.
func (s *dispatchService) writeDeliveryLog(ctx context.Context, log *entity.DeliveryLog) {
	if err := s.notificationRepo.CreateDeliveryLog(ctx, log); err != nil {
		s.logger.Error("failed to write delivery log",
			slog.String("notification_id", log.NotificationID.String()),
			slog.String("device_id", log.DeviceID.String()),
			slog.String("status", log.Status),
			slog.Any("error", err),
		)
	}
}

// publishDispatchEvent emits the dispatch outcome for downstream consumers.
// Best effort: publish failures are logged and ignored.
func (s *dispatchService) publishDispatchEvent(ctx context.Context, notification *entity.Notification, result *usecase.DispatchResult) {
	if s.publisher == nil {
		return
	}

	event := &service.DispatchEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		AppID:          notification.AppID.String(),
		Sent:           result.Sent,
		Failed:         result.Failed,
	}

	if err := s.publisher.PublishDispatchEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish dispatch event",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
		)
	}
}

// GetNotificationLogs retrieves the delivery logs for a notification owned by
// the given app. Notifications belonging to other apps are reported as not found.
func (s *dispatchService) GetNotificationLogs(ctx context.Context, appID, notificationID uuid.UUID) ([]*entity.DeliveryLog, error) {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, fmt.Errorf("failed to find notification: %w", err)
	}
	if notification.AppID != appID {
		return nil, domainerrors.ErrNotificationNotFound
	}

	logs, err := s.notificationRepo.FindDeliveryLogsByNotification(ctx, notificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find delivery logs: %w", err)
	}

	return logs, nil
}

// GetAppNotifications retrieves the most recent notifications for an app.
func (s *dispatchService) GetAppNotifications(ctx context.Context, appID uuid.UUID, limit int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	notifications, err := s.notificationRepo.FindNotificationsByApp(ctx, appID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications: %w", err)
	}

	return notifications, nil
}
