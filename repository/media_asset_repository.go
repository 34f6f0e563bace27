package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/opencampus/college-cms/models"
)

// MediaAssetRepositoryImpl implements the MediaAssetRepository interface
type MediaAssetRepositoryImpl struct {
	*BaseRepository[models.MediaAsset]
}

// NewMediaAssetRepository creates a new media asset repository
func NewMediaAssetRepository(db *gorm.DB) MediaAssetRepository {
	return &MediaAssetRepositoryImpl{
		BaseRepository: NewBaseRepository[models.MediaAsset](db),
	}
}

// ByPublicID retrieves an asset by its storage handle. Returns nil without
// error when no row matches.
func (r *MediaAssetRepositoryImpl) ByPublicID(ctx context.Context, publicID string) (*models.MediaAsset, error) {
	db := r.getDB(ctx)

	var asset models.MediaAsset
	err := db.Where("public_id = ?", publicID).Last(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find asset by public ID: %w", err)
	}

	return &asset, nil
}

// ByFilter retrieves assets based on filter criteria
func (r *MediaAssetRepositoryImpl) ByFilter(ctx context.Context, filter models.MediaAssetFilter, orderBy string, limit, offset int) ([]*models.MediaAsset, error) {
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

	var assets []*models.MediaAsset
	if err := query.Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to find assets by filter: %w", err)
	}

	return assets, nil
}

// DeleteByPublicID removes the bookkeeping row for one stored file
func (r *MediaAssetRepositoryImpl) DeleteByPublicID(ctx context.Context, publicID string) error {
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

	err = db.Where("public_id = ?", publicID).Delete(&models.MediaAsset{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", publicID, err)
	}

	return nil
}

func (r *MediaAssetRepositoryImpl) applyFilter(db *gorm.DB, filter models.MediaAssetFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		db = db.Where("uuid = ?", *filter.UUID)
	}
	if filter.PublicID != nil {
		db = db.Where("public_id = ?", *filter.PublicID)
	}
	if filter.Folder != nil {
		db = db.Where("folder = ?", *filter.Folder)
	}
	if filter.UploadedByID != nil {
		db = db.Where("uploaded_by_id = ?", *filter.UploadedByID)
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at <= ?", *filter.CreatedBefore)
	}
	return db
}
