package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/app/services"
	businessflow "github.com/opencampus/college-cms/business_flow"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
)

// AdmissionHandler serves admission notices
type AdmissionHandler struct {
	*ContentHandler[models.Admission]
}

// NewAdmissionHandler creates a new admission handler
func NewAdmissionHandler(flow businessflow.ContentFlow[models.Admission], cache services.ListCache) *AdmissionHandler {
	return &AdmissionHandler{
		ContentHandler: NewContentHandler(flow, cache, "admissions", buildAdmissionQuery,
			func(a *models.Admission) any { return businessflow.ToAdmissionDTO(*a, true) },
			func(a *models.Admission) any { return businessflow.ToAdmissionDTO(*a, false) },
		),
	}
}

func buildAdmissionQuery(c fiber.Ctx) repository.ListQuery {
	var req dto.ListAdmissionsRequest
	_ = c.Bind().Query(&req)

	q := repository.ListQuery{
		Page:          req.Page,
		Limit:         req.Limit,
		Search:        req.Search,
		SearchColumns: []string{"title", "description", "eligibility"},
		SortBy:        req.SortBy,
		SortOrder:     req.SortOrder,
		SortColumns: map[string]string{
			"title":        "title",
			"deadline":     "application_deadline",
			"academicYear": "academic_year",
			"createdAt":    "created_at",
		},
		DefaultOrder: "is_featured DESC, created_at DESC",
	}
	applyStatusFilter(&q, req.Status)
	addExact(&q, "program", req.Program)
	addExact(&q, "academic_year", req.AcademicYear)
	return q
}

// Create adds an admission notice
// @Summary Create admission notice
// @Tags Admissions
// @Accept json
// @Produce json
// @Param request body dto.CreateAdmissionRequest true "Admission data"
// @Success 201 {object} dto.APIResponse{data=dto.AdmissionDTO}
// @Router /api/admin/admissions [post]
func (h *AdmissionHandler) Create(c fiber.Ctx) error {
	var req dto.CreateAdmissionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if !models.IsValidProgram(req.Program) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown program", "INVALID_ENUM_VALUE", nil)
	}
	deadline, err := businessflow.ParseTimePtr(req.ApplicationDeadline)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid applicationDeadline date", "INVALID_DATE", nil)
	}

	notice := models.Admission{
		Title:               req.Title,
		Description:         req.Description,
		Program:             req.Program,
		AcademicYear:        req.AcademicYear,
		Eligibility:         req.Eligibility,
		ApplicationDeadline: deadline,
		Images:              businessflow.ToMediaList(req.Images),
	}
	notice.IsPublished = req.IsPublished
	notice.IsFeatured = req.IsFeatured

	if err := h.flow.Create(h.requestContext(c, "/api/admin/admissions"), &notice, h.adminID(c)); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusCreated, "Created", businessflow.ToAdmissionDTO(notice, true))
}

// Update modifies an admission notice
// @Summary Update admission notice
// @Tags Admissions
// @Accept json
// @Produce json
// @Param id path int true "Admission ID"
// @Param request body dto.UpdateAdmissionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.AdmissionDTO}
// @Router /api/admin/admissions/{id} [put]
func (h *AdmissionHandler) Update(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", "INVALID_ID", nil)
	}

	var req dto.UpdateAdmissionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if req.Program != nil && !models.IsValidProgram(*req.Program) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown program", "INVALID_ENUM_VALUE", nil)
	}
	deadline, perr := businessflow.ParseTimePtr(req.ApplicationDeadline)
	if perr != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid applicationDeadline date", "INVALID_DATE", nil)
	}

	ctx := h.requestContext(c, "/api/admin/admissions/:id")
	notice, ferr := h.flow.Get(ctx, id, false)
	if ferr != nil {
		return h.BusinessErrorResponse(c, ferr)
	}

	oldImages := notice.Images
	if req.Title != nil {
		notice.Title = *req.Title
	}
	if req.Description != nil {
		notice.Description = *req.Description
	}
	if req.Program != nil {
		notice.Program = *req.Program
	}
	if req.AcademicYear != nil {
		notice.AcademicYear = *req.AcademicYear
	}
	if req.Eligibility != nil {
		notice.Eligibility = *req.Eligibility
	}
	if req.ApplicationDeadline != nil {
		notice.ApplicationDeadline = deadline
	}
	if req.Images != nil {
		notice.Images = businessflow.ToMediaList(*req.Images)
	}
	if req.IsPublished != nil {
		notice.IsPublished = req.IsPublished
	}
	if req.IsFeatured != nil {
		notice.IsFeatured = req.IsFeatured
	}

	removed := businessflow.RemovedAttachments(oldImages, notice.Images)
	if err := h.flow.Update(ctx, notice, h.adminID(c), removed); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Updated", businessflow.ToAdmissionDTO(*notice, true))
}
