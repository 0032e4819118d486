// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin user roles and statuses used by the directory lookup.
const (
	RoleSuperAdmin = "SUPER_ADMIN"

	UserStatusApproved = "APPROVED"
)

// AdminUser represents an operator account in the admin directory. The
// dispatch core only reads these to resolve role-based notification targets.
type AdminUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
