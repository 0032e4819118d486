package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// It represents a browser device registered for push notifications.
type DeviceModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AppID          uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_devices_app_endpoint"`
	ExternalUserID string    `gorm:"type:text;index"`
	Endpoint       string    `gorm:"type:text;not null;uniqueIndex:idx_devices_app_endpoint"`
	P256dh         string    `gorm:"column:p256dh;type:text;not null"`
	Auth           string    `gorm:"type:text;not null"`
	UserAgent      string    `gorm:"type:text"`
	IsActive       bool      `gorm:"not null;default:true;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
