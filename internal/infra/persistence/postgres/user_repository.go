// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindApprovedAdmins retrieves every approved super-admin account. The
// admin-broadcast helper fans notifications out to these users.
func (repo *userRepository) FindApprovedAdmins(ctx context.Context) ([]*entity.AdminUser, error) {
	var userModels []*model.AdminUserModel

	if err := repo.db.WithContext(ctx).
		Where("role = ? AND status = ?", entity.RoleSuperAdmin, entity.UserStatusApproved).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find approved admins")
	}

	admins := make([]*entity.AdminUser, 0, len(userModels))
	for _, userM := range userModels {
		admins = append(admins, toAdminUserDomain(userM))
	}

	return admins, nil
}

// toAdminUserDomain converts a GORM AdminUserModel to a domain AdminUser entity.
func toAdminUserDomain(data *model.AdminUserModel) *entity.AdminUser {
	if data == nil {
		return nil
	}

	return &entity.AdminUser{
		ID:        data.ID,
		Email:     data.Email,
		Role:      data.Role,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
	}
}
