package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/opencampus/college-cms/utils"
)

// ContentRepositoryImpl is the generic implementation behind every content
// resource. One instantiation per model replaces the per-resource repository
// types the resources would otherwise each duplicate.
type ContentRepositoryImpl[T any] struct {
	*BaseRepository[T]
}

// NewContentRepository creates a repository for one content model
func NewContentRepository[T any](db *gorm.DB) ContentRepository[T] {
	return &ContentRepositoryImpl[T]{
		BaseRepository: NewBaseRepository[T](db),
	}
}

// ByUUID retrieves an entity by its UUID. Returns nil without error when no
// row matches.
func (r *ContentRepositoryImpl[T]) ByUUID(ctx context.Context, id string) (*T, error) {
	parsedUUID, err := utils.ParseUUID(id)
	if err != nil {
		return nil, err
	}

	db := r.getDB(ctx)

	var entity T
	if err := db.Where("uuid = ?", parsedUUID).Last(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find entity by UUID %s: %w", id, err)
	}

	return &entity, nil
}

// List fetches one page and the total match count under the same conditions.
// The count runs after the fetch without snapshot isolation; a concurrent
// write can skew totals for one response, which callers accept.
func (r *ContentRepositoryImpl[T]) List(ctx context.Context, q ListQuery) ([]*T, int64, error) {
	q.Normalize()
	db := r.getDB(ctx)

	var entities []*T
	err := q.Apply(db).
		Order(q.Order()).
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&entities).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list entities: %w", err)
	}

	var entity T
	var total int64
	if err := q.Apply(db.Model(&entity)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count entities: %w", err)
	}

	return entities, total, nil
}

// Update saves all fields of an existing entity
func (r *ContentRepositoryImpl[T]) Update(ctx context.Context, entity *T) error {
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

	err = db.Save(entity).Error
	if err != nil {
		return fmt.Errorf("failed to update entity: %w", err)
	}

	return nil
}

// DeleteByID removes one entity by primary key
func (r *ContentRepositoryImpl[T]) DeleteByID(ctx context.Context, id uint) error {
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

	var entity T
	err = db.Delete(&entity, id).Error
	if err != nil {
		return fmt.Errorf("failed to delete entity %d: %w", id, err)
	}

	return nil
}

// DeleteByIDs removes a batch of entities and reports how many rows matched
func (r *ContentRepositoryImpl[T]) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return 0, err
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

	var entity T
	result := db.Delete(&entity, ids)
	if result.Error != nil {
		err = fmt.Errorf("failed to delete entities: %w", result.Error)
		return 0, err
	}

	return result.RowsAffected, nil
}
