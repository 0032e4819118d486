// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// appRepository implements the repository.AppRepository interface using GORM.
type appRepository struct {
	db *gorm.DB
}

// NewAppRepository is the constructor for appRepository.
func NewAppRepository(db *gorm.DB) repository.AppRepository {
	return &appRepository{
		db: db,
	}
}

// FindAppByID retrieves a single app by its unique ID.
func (repo *appRepository) FindAppByID(ctx context.Context, id uuid.UUID) (*entity.App, error) {
	var appM model.AppModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&appM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppNotFound
		}

		return nil, errors.Wrap(err, "failed to find app by id")
	}

	return toAppDomain(&appM), nil
}

// FindAppByAPIKey retrieves a single app by its public API key. This is the
// lookup path used by the API-key authentication middleware.
func (repo *appRepository) FindAppByAPIKey(ctx context.Context, apiKey string) (*entity.App, error) {
	var appM model.AppModel

	if err := repo.db.WithContext(ctx).
		Where("api_key = ?", apiKey).
		First(&appM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppNotFound
		}

		return nil, errors.Wrap(err, "failed to find app by api key")
	}

	return toAppDomain(&appM), nil
}

// toAppDomain converts a GORM AppModel to a domain App entity.
func toAppDomain(data *model.AppModel) *entity.App {
	if data == nil {
		return nil
	}

	return &entity.App{
		ID:              data.ID,
		Name:            data.Name,
		APIKey:          data.APIKey,
		APISecret:       data.APISecret,
		VAPIDPublicKey:  data.VAPIDPublicKey,
		VAPIDPrivateKey: data.VAPIDPrivateKey,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
