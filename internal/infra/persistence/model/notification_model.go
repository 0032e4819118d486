package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents one dispatch request, recorded before any delivery attempt.
type NotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AppID       uuid.UUID `gorm:"type:uuid;not null;index"`
	PayloadJSON []byte    `gorm:"column:payload_json;type:jsonb;not null"`
	IsSilent    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// DeliveryLogModel is the GORM-specific struct for the 'delivery_logs' table.
// One row per targeted device per dispatch; append-only.
type DeliveryLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Status         string    `gorm:"type:text;not null"`
	ErrorMessage   string    `gorm:"type:text"`
	SentAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "delivery_logs"
}
