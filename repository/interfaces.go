package repository

import (
	"context"

	"github.com/opencampus/college-cms/models"
)

type contextKey string

// TxContextKey is the context key for storing database transactions
const TxContextKey contextKey = "tx"

// ContentRepository is the storage surface shared by every content resource.
// List applies the query and returns the page together with the total match
// count so callers can build the pagination block from one round trip pair.
type ContentRepository[T any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByUUID(ctx context.Context, uuid string) (*T, error)
	List(ctx context.Context, q ListQuery) ([]*T, int64, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Update(ctx context.Context, entity *T) error
	DeleteByID(ctx context.Context, id uint) error
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
}

// AdminRepository defines the interface for admin identity operations
type AdminRepository interface {
	ByID(ctx context.Context, id uint) (*models.Admin, error)
	ByUsernameOrEmail(ctx context.Context, identifier string) (*models.Admin, error)
	ByFilter(ctx context.Context, filter models.AdminFilter, orderBy string, limit, offset int) ([]*models.Admin, error)
	Save(ctx context.Context, admin *models.Admin) error
	UpdateLastLogin(ctx context.Context, adminID uint) error
	UpdatePassword(ctx context.Context, adminID uint, passwordHash string) error
}

// MediaAssetRepository defines the interface for uploaded-file bookkeeping
type MediaAssetRepository interface {
	ByID(ctx context.Context, id uint) (*models.MediaAsset, error)
	ByPublicID(ctx context.Context, publicID string) (*models.MediaAsset, error)
	ByFilter(ctx context.Context, filter models.MediaAssetFilter, orderBy string, limit, offset int) ([]*models.MediaAsset, error)
	Save(ctx context.Context, asset *models.MediaAsset) error
	DeleteByPublicID(ctx context.Context, publicID string) error
}
