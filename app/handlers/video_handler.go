package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/app/services"
	businessflow "github.com/opencampus/college-cms/business_flow"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
)

// VideoHandler serves the video gallery
type VideoHandler struct {
	*ContentHandler[models.Video]
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(flow businessflow.ContentFlow[models.Video], cache services.ListCache) *VideoHandler {
	return &VideoHandler{
		ContentHandler: NewContentHandler(flow, cache, "videos", buildVideoQuery,
			func(v *models.Video) any { return businessflow.ToVideoDTO(*v, true) },
			func(v *models.Video) any { return businessflow.ToVideoDTO(*v, false) },
		),
	}
}

func buildVideoQuery(c fiber.Ctx) repository.ListQuery {
	var req dto.ListVideosRequest
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
		DefaultOrder: "is_featured DESC, created_at DESC",
	}
	applyStatusFilter(&q, req.Status)
	addExact(&q, "category", req.Category)
	return q
}

// Create adds a video entry
// @Summary Create video
// @Tags Videos
// @Accept json
// @Produce json
// @Param request body dto.CreateVideoRequest true "Video data"
// @Success 201 {object} dto.APIResponse{data=dto.VideoDTO}
// @Router /api/admin/videos [post]
func (h *VideoHandler) Create(c fiber.Ctx) error {
	var req dto.CreateVideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if !models.IsValidVideoCategory(req.Category) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown category", "INVALID_ENUM_VALUE", nil)
	}

	video := models.Video{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		VideoURL:    req.VideoURL,
		Thumbnail:   businessflow.ToMediaList(req.Thumbnail),
	}
	video.IsPublished = req.IsPublished
	video.IsFeatured = req.IsFeatured

	if err := h.flow.Create(h.requestContext(c, "/api/admin/videos"), &video, h.adminID(c)); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusCreated, "Created", businessflow.ToVideoDTO(video, true))
}

// Update modifies a video entry
// @Summary Update video
// @Tags Videos
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Param request body dto.UpdateVideoRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.VideoDTO}
// @Router /api/admin/videos/{id} [put]
func (h *VideoHandler) Update(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", "INVALID_ID", nil)
	}

	var req dto.UpdateVideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if req.Category != nil && !models.IsValidVideoCategory(*req.Category) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown category", "INVALID_ENUM_VALUE", nil)
	}

	ctx := h.requestContext(c, "/api/admin/videos/:id")
	video, ferr := h.flow.Get(ctx, id, false)
	if ferr != nil {
		return h.BusinessErrorResponse(c, ferr)
	}

	oldThumbnail := video.Thumbnail
	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.Description != nil {
		video.Description = *req.Description
	}
	if req.Category != nil {
		video.Category = *req.Category
	}
	if req.VideoURL != nil {
		video.VideoURL = *req.VideoURL
	}
	if req.Thumbnail != nil {
		video.Thumbnail = businessflow.ToMediaList(*req.Thumbnail)
	}
	if req.IsPublished != nil {
		video.IsPublished = req.IsPublished
	}
	if req.IsFeatured != nil {
		video.IsFeatured = req.IsFeatured
	}

	removed := businessflow.RemovedAttachments(oldThumbnail, video.Thumbnail)
	if err := h.flow.Update(ctx, video, h.adminID(c), removed); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Updated", businessflow.ToVideoDTO(*video, true))
}
