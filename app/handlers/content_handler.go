package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/app/services"
	businessflow "github.com/opencampus/college-cms/business_flow"
	"github.com/opencampus/college-cms/repository"
)

// ContentHandler is the generic handler behind every content resource's
// list/get/delete/toggle surface. Per-resource handlers embed it and add
// their Create/Update bindings.
type ContentHandler[T any] struct {
	baseHandler
	flow     businessflow.ContentFlow[T]
	cache    services.ListCache
	resource string

	// buildQuery turns the request's query parameters into the resource's
	// listing query: search columns, exact filters, sort whitelist.
	buildQuery func(c fiber.Ctx) repository.ListQuery

	adminDTO  func(t *T) any
	publicDTO func(t *T) any
}

// NewContentHandler wires the generic surface for one resource
func NewContentHandler[T any](
	flow businessflow.ContentFlow[T],
	cache services.ListCache,
	resource string,
	buildQuery func(c fiber.Ctx) repository.ListQuery,
	adminDTO func(t *T) any,
	publicDTO func(t *T) any,
) *ContentHandler[T] {
	return &ContentHandler[T]{
		baseHandler: newBaseHandler(),
		flow:        flow,
		cache:       cache,
		resource:    resource,
		buildQuery:  buildQuery,
		adminDTO:    adminDTO,
		publicDTO:   publicDTO,
	}
}

func mapItems[T any](items []*T, project func(t *T) any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, project(item))
	}
	return out
}

// ListPublic serves the published-only listing, with a short-TTL cache in
// front of the database when redis is configured.
func (h *ContentHandler[T]) ListPublic(c fiber.Ctx) error {
	ctx := h.requestContext(c, "/api/"+h.resource)

	q := h.buildQuery(c)
	cacheKey := q.CacheKey()

	if h.cache != nil {
		if payload, ok := h.cache.Get(ctx, h.resource, cacheKey); ok {
			return h.SuccessResponse(c, fiber.StatusOK, "OK", json.RawMessage(payload))
		}
	}

	items, pagination, err := h.flow.List(ctx, q, true)
	if err != nil {
		return h.BusinessErrorResponse(c, err)
	}

	resp := dto.ListResponse{
		Items:      mapItems(items, h.publicDTO),
		Pagination: pagination,
	}

	if h.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			h.cache.Set(ctx, h.resource, cacheKey, payload)
		}
	}

	return h.SuccessResponse(c, fiber.StatusOK, "OK", resp)
}

// ListAdmin serves the full listing including drafts
func (h *ContentHandler[T]) ListAdmin(c fiber.Ctx) error {
	ctx := h.requestContext(c, "/api/admin/"+h.resource)

	items, pagination, err := h.flow.List(ctx, h.buildQuery(c), false)
	if err != nil {
		return h.BusinessErrorResponse(c, err)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "OK", dto.ListResponse{
		Items:      mapItems(items, h.adminDTO),
		Pagination: pagination,
	})
}

// GetPublic serves one published item without admin fields
func (h *ContentHandler[T]) GetPublic(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", "INVALID_ID", nil)
	}

	item, ferr := h.flow.Get(h.requestContext(c, "/api/"+h.resource+"/:id"), id, true)
	if ferr != nil {
		return h.BusinessErrorResponse(c, ferr)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "OK", h.publicDTO(item))
}

// GetAdmin serves one item regardless of publish state
func (h *ContentHandler[T]) GetAdmin(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", "INVALID_ID", nil)
	}

	item, ferr := h.flow.Get(h.requestContext(c, "/api/admin/"+h.resource+"/:id"), id, false)
	if ferr != nil {
		return h.BusinessErrorResponse(c, ferr)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "OK", h.adminDTO(item))
}

// Delete removes one item; attached media cleanup is best effort
func (h *ContentHandler[T]) Delete(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", "INVALID_ID", nil)
	}

	if ferr := h.flow.Delete(h.requestContext(c, "/api/admin/"+h.resource+"/:id"), id); ferr != nil {
		return h.BusinessErrorResponse(c, ferr)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Deleted", nil)
}

// BulkDelete removes a batch of items by ID
func (h *ContentHandler[T]) BulkDelete(c fiber.Ctx) error {
	var req dto.IDsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}

	deleted, err := h.flow.BulkDelete(h.requestContext(c, "/api/admin/"+h.resource+"/bulk-delete"), req.IDs)
	if err != nil {
		return h.BusinessErrorResponse(c, err)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Deleted", dto.BulkDeleteResponse{
		Requested: len(req.IDs),
		Deleted:   deleted,
	})
}

// TogglePublished flips the publish flag
func (h *ContentHandler[T]) TogglePublished(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", "INVALID_ID", nil)
	}

	item, ferr := h.flow.TogglePublished(h.requestContext(c, "/api/admin/"+h.resource+"/:id/toggle-published"), id, h.adminID(c))
	if ferr != nil {
		return h.BusinessErrorResponse(c, ferr)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Updated", h.adminDTO(item))
}

// ToggleFeatured flips the featured flag on resources that carry it
func (h *ContentHandler[T]) ToggleFeatured(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", "INVALID_ID", nil)
	}

	item, ferr := h.flow.ToggleFeatured(h.requestContext(c, "/api/admin/"+h.resource+"/:id/toggle-featured"), id, h.adminID(c))
	if ferr != nil {
		return h.BusinessErrorResponse(c, ferr)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Updated", h.adminDTO(item))
}

// applyStatusFilter translates the published|draft|all selector into an
// exact filter; "all" and empty leave the query untouched.
func applyStatusFilter(q *repository.ListQuery, status string) {
	if q.Exact == nil {
		q.Exact = make(map[string]any)
	}
	switch status {
	case "published":
		q.Exact["is_published"] = true
	case "draft":
		q.Exact["is_published"] = false
	}
}

// addExact drops the "all" sentinel and empty values before they reach the
// listing engine.
func addExact(q *repository.ListQuery, column, value string) {
	if value == "" || value == "all" {
		return
	}
	if q.Exact == nil {
		q.Exact = make(map[string]any)
	}
	q.Exact[column] = value
}
