// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification record.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM, err := fromNotificationDomain(notification)
	if err != nil {
		return errors.Wrap(err, "failed to encode notification payload")
	}

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDispatchFailed.WrapMessage("invalid app reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDispatchFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM)
}

// FindNotificationsByApp retrieves the most recent notifications for an app.
func (repo *notificationRepository) FindNotificationsByApp(ctx context.Context, appID uuid.UUID, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("app_id = ?", appID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by app")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notification, err := toNotificationDomain(notificationM)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

// CreateDeliveryLog persists a single delivery log entry.
func (repo *notificationRepository) CreateDeliveryLog(ctx context.Context, log *entity.DeliveryLog) error {
	logM := fromDeliveryLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDispatchFailed.WrapMessage("invalid notification or device reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDispatchFailed.WrapMessage("missing required delivery log information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery log")
	}

	// Update the entity with generated values
	log.ID = logM.ID
	log.SentAt = logM.SentAt

	return nil
}

// FindDeliveryLogsByNotification retrieves all delivery logs for a notification, most recent first.
func (repo *notificationRepository) FindDeliveryLogsByNotification(ctx context.Context, notificationID uuid.UUID) ([]*entity.DeliveryLog, error) {
	var logModels []*model.DeliveryLogModel

	if err := repo.db.WithContext(ctx).
		Where("notification_id = ?", notificationID).
		Order("sent_at DESC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery logs by notification")
	}

	logs := make([]*entity.DeliveryLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toDeliveryLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
// The stored payload JSON is decoded back into the wire shape verbatim.
func toNotificationDomain(data *model.NotificationModel) (*entity.Notification, error) {
	if data == nil {
		return nil, nil
	}

	payload := &entity.NotificationPayload{}
	if len(data.PayloadJSON) > 0 {
		if err := json.Unmarshal(data.PayloadJSON, payload); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification payload")
		}
	}

	return &entity.Notification{
		ID:        data.ID,
		AppID:     data.AppID,
		Payload:   payload,
		IsSilent:  data.IsSilent,
		CreatedAt: data.CreatedAt,
	}, nil
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) (*model.NotificationModel, error) {
	if data == nil {
		return nil, nil
	}

	payloadJSON, err := json.Marshal(data.Payload)
	if err != nil {
		return nil, err
	}

	return &model.NotificationModel{
		ID:          data.ID,
		AppID:       data.AppID,
		PayloadJSON: payloadJSON,
		IsSilent:    data.IsSilent,
		CreatedAt:   data.CreatedAt,
	}, nil
}

// toDeliveryLogDomain converts a GORM DeliveryLogModel to a domain DeliveryLog entity.
func toDeliveryLogDomain(data *model.DeliveryLogModel) *entity.DeliveryLog {
	if data == nil {
		return nil
	}

	return &entity.DeliveryLog{
		ID:             data.ID,
		NotificationID: data.NotificationID,
		DeviceID:       data.DeviceID,
		Status:         data.Status,
		ErrorMessage:   data.ErrorMessage,
		SentAt:         data.SentAt,
	}
}

// fromDeliveryLogDomain converts a domain DeliveryLog entity to a GORM DeliveryLogModel.
func fromDeliveryLogDomain(data *entity.DeliveryLog) *model.DeliveryLogModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryLogModel{
		ID:             data.ID,
		NotificationID: data.NotificationID,
		DeviceID:       data.DeviceID,
		Status:         data.Status,
		ErrorMessage:   data.ErrorMessage,
		SentAt:         data.SentAt,
	}
}
