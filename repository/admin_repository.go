package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/utils"
)

// AdminRepositoryImpl implements the AdminRepository interface
type AdminRepositoryImpl struct {
	*BaseRepository[models.Admin]
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &AdminRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Admin](db),
	}
}

// ByUsernameOrEmail retrieves an admin matching the identifier on either
// column. Returns nil without error when no row matches; existence checks are
// the caller's concern so login can stay leak-free.
func (r *AdminRepositoryImpl) ByUsernameOrEmail(ctx context.Context, identifier string) (*models.Admin, error) {
	db := r.getDB(ctx)

	var admin models.Admin
	err := db.Where("username = ? OR email = ?", identifier, identifier).Last(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin by identifier: %w", err)
	}

	return &admin, nil
}

// ByFilter retrieves admins based on filter criteria
func (r *AdminRepositoryImpl) ByFilter(ctx context.Context, filter models.AdminFilter, orderBy string, limit, offset int) ([]*models.Admin, error) {
	db := r.getDB(ctx)

	query := r.applyFilter(db, filter)
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var admins []*models.Admin
	if err := query.Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("failed to find admins by filter: %w", err)
	}

	return admins, nil
}

// UpdateLastLogin stamps the admin's last successful login time
func (r *AdminRepositoryImpl) UpdateLastLogin(ctx context.Context, adminID uint) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	now := utils.UTCNow()
	err = db.Model(&models.Admin{}).
		Where("id = ?", adminID).
		Updates(map[string]any{"last_login_at": now, "updated_at": now}).Error
	if err != nil {
		return fmt.Errorf("failed to update last login for admin %d: %w", adminID, err)
	}

	return nil
}

// UpdatePassword replaces the stored password hash
func (r *AdminRepositoryImpl) UpdatePassword(ctx context.Context, adminID uint, passwordHash string) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Model(&models.Admin{}).
		Where("id = ?", adminID).
		Updates(map[string]any{"password_hash": passwordHash, "updated_at": utils.UTCNow()}).Error
	if err != nil {
		return fmt.Errorf("failed to update password for admin %d: %w", adminID, err)
	}

	return nil
}

func (r *AdminRepositoryImpl) applyFilter(db *gorm.DB, filter models.AdminFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		db = db.Where("uuid = ?", *filter.UUID)
	}
	if filter.Username != nil {
		db = db.Where("username = ?", *filter.Username)
	}
	if filter.Email != nil {
		db = db.Where("email = ?", *filter.Email)
	}
	if filter.Role != nil {
		db = db.Where("role = ?", *filter.Role)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at <= ?", *filter.CreatedBefore)
	}
	return db
}
