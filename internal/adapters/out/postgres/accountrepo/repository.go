package accountrepo

import (
	"context"
	"errors"

	"courierops/internal/core/domain/model/account"
	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetRole returns the role of the given user account.
func (r *GormUserRepository) GetRole(ctx context.Context, userID kernel.UUID) (account.Role, error) {
	if err := userID.Validate(); err != nil {
		return account.RoleUnknown, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.RoleUnknown, errs.NewObjectNotFoundError("user", userID.String())
		}
		return account.RoleUnknown, err
	}

	return account.RoleFromString(dto.Role)
}

// SetRole updates the role of the given user account.
func (r *GormUserRepository) SetRole(ctx context.Context, userID kernel.UUID, role account.Role) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", userID.Bytes()).
		Update("role", role.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", userID.String())
	}

	return nil
}
