package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/app/services"
	businessflow "github.com/opencampus/college-cms/business_flow"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
)

// GalleryHandler serves the photo gallery
type GalleryHandler struct {
	*ContentHandler[models.GalleryItem]
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(flow businessflow.ContentFlow[models.GalleryItem], cache services.ListCache) *GalleryHandler {
	return &GalleryHandler{
		ContentHandler: NewContentHandler(flow, cache, "gallery", buildGalleryQuery,
			func(g *models.GalleryItem) any { return businessflow.ToGalleryItemDTO(*g, true) },
			func(g *models.GalleryItem) any { return businessflow.ToGalleryItemDTO(*g, false) },
		),
	}
}

func buildGalleryQuery(c fiber.Ctx) repository.ListQuery {
	var req dto.ListGalleryRequest
	_ = c.Bind().Query(&req)

	q := repository.ListQuery{
		Page:          req.Page,
		Limit:         req.Limit,
		Search:        req.Search,
		SearchColumns: []string{"title", "description"},
		SortBy:        req.SortBy,
		SortOrder:     req.SortOrder,
		SortColumns: map[string]string{
			"title":     "title",
			"createdAt": "created_at",
		},
		DefaultOrder: "created_at DESC",
	}
	applyStatusFilter(&q, req.Status)
	addExact(&q, "category", req.Category)
	return q
}

// Create adds a gallery item
// @Summary Create gallery item
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryItemRequest true "Gallery data"
// @Success 201 {object} dto.APIResponse{data=dto.GalleryItemDTO}
// @Router /api/admin/gallery [post]
func (h *GalleryHandler) Create(c fiber.Ctx) error {
	var req dto.CreateGalleryItemRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if !models.IsValidGalleryCategory(req.Category) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown category", "INVALID_ENUM_VALUE", nil)
	}

	item := models.GalleryItem{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Images:      businessflow.ToMediaList(req.Images),
	}
	item.IsPublished = req.IsPublished
	item.IsFeatured = req.IsFeatured

	if err := h.flow.Create(h.requestContext(c, "/api/admin/gallery"), &item, h.adminID(c)); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusCreated, "Created", businessflow.ToGalleryItemDTO(item, true))
}

// Update modifies a gallery item
// @Summary Update gallery item
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path int true "Gallery item ID"
// @Param request body dto.UpdateGalleryItemRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.GalleryItemDTO}
// @Router /api/admin/gallery/{id} [put]
func (h *GalleryHandler) Update(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", "INVALID_ID", nil)
	}

	var req dto.UpdateGalleryItemRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if req.Category != nil && !models.IsValidGalleryCategory(*req.Category) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown category", "INVALID_ENUM_VALUE", nil)
	}

	ctx := h.requestContext(c, "/api/admin/gallery/:id")
	item, ferr := h.flow.Get(ctx, id, false)
	if ferr != nil {
		return h.BusinessErrorResponse(c, ferr)
	}

	oldImages := item.Images
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Images != nil {
		item.Images = businessflow.ToMediaList(*req.Images)
	}
	if req.IsPublished != nil {
		item.IsPublished = req.IsPublished
	}
	if req.IsFeatured != nil {
		item.IsFeatured = req.IsFeatured
	}

	removed := businessflow.RemovedAttachments(oldImages, item.Images)
	if err := h.flow.Update(ctx, item, h.adminID(c), removed); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Updated", businessflow.ToGalleryItemDTO(*item, true))
}
