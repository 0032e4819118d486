package model

import (
	"time"

	"github.com/google/uuid"
)

// AppModel is the GORM-specific struct for the 'apps' table.
// It represents a tenant application.
type AppModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string    `gorm:"type:text;not null"`
	APIKey          string    `gorm:"column:api_key;type:text;not null;uniqueIndex"`
	APISecret       string    `gorm:"column:api_secret;type:text;not null"`
	VAPIDPublicKey  string    `gorm:"column:vapid_public_key;type:text;not null"`
	VAPIDPrivateKey string    `gorm:"column:vapid_private_key;type:text;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppModel) TableName() string {
	return "apps"
}
