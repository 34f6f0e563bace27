package businessflow

import (
	"context"
	"log"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/app/services"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
)

// ContentFlow is the use-case surface shared by every content resource. One
// generic implementation replaces the per-resource controller logic; the
// resource-specific parts (fields, filters, DTO shapes) stay in the handlers.
type ContentFlow[T any] interface {
	List(ctx context.Context, q repository.ListQuery, publicOnly bool) ([]*T, dto.PaginationInfo, error)
	Get(ctx context.Context, id uint, publicOnly bool) (*T, error)
	Create(ctx context.Context, entity *T, adminID uint) error
	Update(ctx context.Context, entity *T, adminID uint, removed []models.MediaAttachment) error
	Delete(ctx context.Context, id uint) error
	BulkDelete(ctx context.Context, ids []uint) (int64, error)
	TogglePublished(ctx context.Context, id, adminID uint) (*T, error)
	ToggleFeatured(ctx context.Context, id, adminID uint) (*T, error)
}

// ContentFlowImpl implements ContentFlow. The PT constraint gives the generic
// code access to the shared content behaviour of *T.
type ContentFlowImpl[T any, PT interface {
	*T
	models.Content
}] struct {
	repo        repository.ContentRepository[T]
	storage     services.MediaStorage
	cache       services.ListCache
	resource    string
	hasFeatured bool
}

// NewContentFlow creates the flow for one content resource. resource names
// the cache namespace invalidated on every write; hasFeatured gates the
// featured toggle.
func NewContentFlow[T any, PT interface {
	*T
	models.Content
}](
	repo repository.ContentRepository[T],
	storage services.MediaStorage,
	cache services.ListCache,
	resource string,
	hasFeatured bool,
) ContentFlow[T] {
	return &ContentFlowImpl[T, PT]{
		repo:        repo,
		storage:     storage,
		cache:       cache,
		resource:    resource,
		hasFeatured: hasFeatured,
	}
}

// List runs the listing convention. publicOnly restricts to published rows
// before any user filter is applied.
func (f *ContentFlowImpl[T, PT]) List(ctx context.Context, q repository.ListQuery, publicOnly bool) ([]*T, dto.PaginationInfo, error) {
	if publicOnly {
		if q.Exact == nil {
			q.Exact = make(map[string]any)
		}
		q.Exact["is_published"] = true
	}
	q.Normalize()

	items, total, err := f.repo.List(ctx, q)
	if err != nil {
		return nil, dto.PaginationInfo{}, NewBusinessError("LIST_FAILED", "Failed to list items", err)
	}

	return items, BuildPagination(q.Page, q.Limit, total), nil
}

func (f *ContentFlowImpl[T, PT]) Get(ctx context.Context, id uint, publicOnly bool) (*T, error) {
	entity, err := f.repo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("LOOKUP_FAILED", "Failed to fetch item", err)
	}
	if entity == nil {
		return nil, NewBusinessError("NOT_FOUND", "Item not found", ErrContentNotFound)
	}
	if publicOnly && !PT(entity).Published() {
		return nil, NewBusinessError("NOT_FOUND", "Item not found", ErrContentNotFound)
	}
	return entity, nil
}

func (f *ContentFlowImpl[T, PT]) Create(ctx context.Context, entity *T, adminID uint) error {
	PT(entity).Stamp(adminID, true)
	if err := f.repo.Save(ctx, entity); err != nil {
		return NewBusinessError("CREATE_FAILED", "Failed to create item", err)
	}
	f.invalidate(ctx)
	return nil
}

// Update saves the entity and then best-effort deletes attachments the new
// media set no longer references. Storage failures never fail the update.
func (f *ContentFlowImpl[T, PT]) Update(ctx context.Context, entity *T, adminID uint, removed []models.MediaAttachment) error {
	PT(entity).Stamp(adminID, false)
	if err := f.repo.Update(ctx, entity); err != nil {
		return NewBusinessError("UPDATE_FAILED", "Failed to update item", err)
	}
	f.cleanupMedia(ctx, removed)
	f.invalidate(ctx)
	return nil
}

// Delete removes the row first; attachment cleanup is best effort so a broken
// storage backend cannot keep content alive.
func (f *ContentFlowImpl[T, PT]) Delete(ctx context.Context, id uint) error {
	entity, err := f.repo.ByID(ctx, id)
	if err != nil {
		return NewBusinessError("LOOKUP_FAILED", "Failed to fetch item", err)
	}
	if entity == nil {
		return NewBusinessError("NOT_FOUND", "Item not found", ErrContentNotFound)
	}

	if err := f.repo.DeleteByID(ctx, id); err != nil {
		return NewBusinessError("DELETE_FAILED", "Failed to delete item", err)
	}

	f.cleanupMedia(ctx, PT(entity).Attachments())
	f.invalidate(ctx)
	return nil
}

func (f *ContentFlowImpl[T, PT]) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, NewBusinessError("INVALID_REQUEST", "At least one id is required", ErrNoIDsProvided)
	}

	var attachments []models.MediaAttachment
	for _, id := range ids {
		entity, err := f.repo.ByID(ctx, id)
		if err != nil {
			return 0, NewBusinessError("LOOKUP_FAILED", "Failed to fetch items", err)
		}
		if entity != nil {
			attachments = append(attachments, PT(entity).Attachments()...)
		}
	}

	deleted, err := f.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, NewBusinessError("DELETE_FAILED", "Failed to delete items", err)
	}

	f.cleanupMedia(ctx, attachments)
	f.invalidate(ctx)
	return deleted, nil
}

func (f *ContentFlowImpl[T, PT]) TogglePublished(ctx context.Context, id, adminID uint) (*T, error) {
	entity, err := f.Get(ctx, id, false)
	if err != nil {
		return nil, err
	}

	p := PT(entity)
	p.SetPublished(!p.Published())
	p.Stamp(adminID, false)

	if err := f.repo.Update(ctx, entity); err != nil {
		return nil, NewBusinessError("UPDATE_FAILED", "Failed to toggle published flag", err)
	}
	f.invalidate(ctx)
	return entity, nil
}

func (f *ContentFlowImpl[T, PT]) ToggleFeatured(ctx context.Context, id, adminID uint) (*T, error) {
	if !f.hasFeatured {
		return nil, NewBusinessError("FEATURED_NOT_SUPPORTED", "Resource has no featured flag", ErrFeaturedNotSupported)
	}

	entity, err := f.Get(ctx, id, false)
	if err != nil {
		return nil, err
	}

	p := PT(entity)
	p.SetFeatured(!p.Featured())
	p.Stamp(adminID, false)

	if err := f.repo.Update(ctx, entity); err != nil {
		return nil, NewBusinessError("UPDATE_FAILED", "Failed to toggle featured flag", err)
	}
	f.invalidate(ctx)
	return entity, nil
}

func (f *ContentFlowImpl[T, PT]) cleanupMedia(ctx context.Context, attachments []models.MediaAttachment) {
	if f.storage == nil {
		return
	}
	for _, a := range attachments {
		if a.PublicID == "" {
			continue
		}
		if err := f.storage.Delete(ctx, a.PublicID); err != nil {
			log.Printf("media cleanup failed for %s/%s: %v", f.resource, a.PublicID, err)
		}
	}
}

func (f *ContentFlowImpl[T, PT]) invalidate(ctx context.Context) {
	if f.cache != nil {
		f.cache.Invalidate(ctx, f.resource)
	}
}

// RemovedAttachments returns the attachments in old that the new set no
// longer references, keyed by public ID.
func RemovedAttachments(old, updated models.MediaList) []models.MediaAttachment {
	kept := make(map[string]bool, len(updated))
	for _, a := range updated {
		kept[a.PublicID] = true
	}
	var removed []models.MediaAttachment
	for _, a := range old {
		if a.PublicID != "" && !kept[a.PublicID] {
			removed = append(removed, a)
		}
	}
	return removed
}
