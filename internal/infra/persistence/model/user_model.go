package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminUserModel is the GORM-specific struct for the 'users' table.
// The dispatch core only reads these rows for role-based targeting.
type AdminUserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:text;not null;uniqueIndex"`
	Role      string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminUserModel) TableName() string {
	return "users"
}
