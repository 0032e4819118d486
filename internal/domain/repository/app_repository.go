// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for app persistence.
var (
	// ErrAppNotFound is returned when an app is not found.
	ErrAppNotFound = errors.New("app not found")
)

// AppRepository defines the interface for tenant-app database operations.
// App provisioning is an administrative concern; the dispatch core only reads.
type AppRepository interface {
	// FindAppByID retrieves an app by its unique ID.
	FindAppByID(ctx context.Context, id uuid.UUID) (*entity.App, error)

	// FindAppByAPIKey retrieves an app by its public API key.
	FindAppByAPIKey(ctx context.Context, apiKey string) (*entity.App, error)
}
