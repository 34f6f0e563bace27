package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/app/services"
	businessflow "github.com/opencampus/college-cms/business_flow"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
)

// ActivityHandler serves campus activities
type ActivityHandler struct {
	*ContentHandler[models.Activity]
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(flow businessflow.ContentFlow[models.Activity], cache services.ListCache) *ActivityHandler {
	return &ActivityHandler{
		ContentHandler: NewContentHandler(flow, cache, "activities", buildActivityQuery,
			func(a *models.Activity) any { return businessflow.ToActivityDTO(*a, true) },
			func(a *models.Activity) any { return businessflow.ToActivityDTO(*a, false) },
		),
	}
}

func buildActivityQuery(c fiber.Ctx) repository.ListQuery {
	var req dto.ListActivitiesRequest
	_ = c.Bind().Query(&req)

	q := repository.ListQuery{
		Page:          req.Page,
		Limit:         req.Limit,
		Search:        req.Search,
		SearchColumns: []string{"title", "description", "location"},
		SortBy:        req.SortBy,
		SortOrder:     req.SortOrder,
		SortColumns: map[string]string{
			"title":     "title",
			"heldAt":    "held_at",
			"createdAt": "created_at",
		},
		DefaultOrder: "is_featured DESC, created_at DESC",
	}
	applyStatusFilter(&q, req.Status)
	addExact(&q, "type", req.Type)
	return q
}

// Create adds an activity
// @Summary Create activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param request body dto.CreateActivityRequest true "Activity data"
// @Success 201 {object} dto.APIResponse{data=dto.ActivityDTO}
// @Router /api/admin/activities [post]
func (h *ActivityHandler) Create(c fiber.Ctx) error {
	var req dto.CreateActivityRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if !models.IsValidActivityType(req.Type) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown activity type", "INVALID_ENUM_VALUE", nil)
	}
	heldAt, err := businessflow.ParseTimePtr(req.HeldAt)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid heldAt date", "INVALID_DATE", nil)
	}

	activity := models.Activity{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Location:    req.Location,
		HeldAt:      heldAt,
		Images:      businessflow.ToMediaList(req.Images),
	}
	activity.IsPublished = req.IsPublished
	activity.IsFeatured = req.IsFeatured

	if err := h.flow.Create(h.requestContext(c, "/api/admin/activities"), &activity, h.adminID(c)); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusCreated, "Created", businessflow.ToActivityDTO(activity, true))
}

// Update modifies an activity
// @Summary Update activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param request body dto.UpdateActivityRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityDTO}
// @Router /api/admin/activities/{id} [put]
func (h *ActivityHandler) Update(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", "INVALID_ID", nil)
	}

	var req dto.UpdateActivityRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if req.Type != nil && !models.IsValidActivityType(*req.Type) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown activity type", "INVALID_ENUM_VALUE", nil)
	}
	heldAt, perr := businessflow.ParseTimePtr(req.HeldAt)
	if perr != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid heldAt date", "INVALID_DATE", nil)
	}

	ctx := h.requestContext(c, "/api/admin/activities/:id")
	activity, ferr := h.flow.Get(ctx, id, false)
	if ferr != nil {
		return h.BusinessErrorResponse(c, ferr)
	}

	oldImages := activity.Images
	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.Type != nil {
		activity.Type = *req.Type
	}
	if req.Location != nil {
		activity.Location = *req.Location
	}
	if req.HeldAt != nil {
		activity.HeldAt = heldAt
	}
	if req.Images != nil {
		activity.Images = businessflow.ToMediaList(*req.Images)
	}
	if req.IsPublished != nil {
		activity.IsPublished = req.IsPublished
	}
	if req.IsFeatured != nil {
		activity.IsFeatured = req.IsFeatured
	}

	removed := businessflow.RemovedAttachments(oldImages, activity.Images)
	if err := h.flow.Update(ctx, activity, h.adminID(c), removed); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Updated", businessflow.ToActivityDTO(*activity, true))
}
