// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"beacon/internal/domain/entity"
)

// UserRepository defines the directory lookups the dispatch core needs for
// role-based notification targets. Admin account management lives elsewhere.
type UserRepository interface {
	// FindApprovedAdmins retrieves all approved super-admin accounts.
	FindApprovedAdmins(ctx context.Context) ([]*entity.AdminUser, error)
}
