package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/app/services"
	businessflow "github.com/opencampus/college-cms/business_flow"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
)

// ExaminationHandler serves examination notices
type ExaminationHandler struct {
	*ContentHandler[models.Examination]
}

// NewExaminationHandler creates a new examination handler
func NewExaminationHandler(flow businessflow.ContentFlow[models.Examination], cache services.ListCache) *ExaminationHandler {
	return &ExaminationHandler{
		ContentHandler: NewContentHandler(flow, cache, "examinations", buildExaminationQuery,
			func(e *models.Examination) any { return businessflow.ToExaminationDTO(*e, true) },
			func(e *models.Examination) any { return businessflow.ToExaminationDTO(*e, false) },
		),
	}
}

func buildExaminationQuery(c fiber.Ctx) repository.ListQuery {
	var req dto.ListExaminationsRequest
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
			"examDate":  "exam_date",
			"createdAt": "created_at",
		},
		DefaultOrder: "created_at DESC",
	}
	applyStatusFilter(&q, req.Status)
	addExact(&q, "exam_type", req.ExamType)
	addExact(&q, "semester", req.Semester)
	return q
}

// Create adds an examination notice
// @Summary Create examination notice
// @Tags Examinations
// @Accept json
// @Produce json
// @Param request body dto.CreateExaminationRequest true "Examination data"
// @Success 201 {object} dto.APIResponse{data=dto.ExaminationDTO}
// @Router /api/admin/examinations [post]
func (h *ExaminationHandler) Create(c fiber.Ctx) error {
	var req dto.CreateExaminationRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if !models.IsValidExamType(req.ExamType) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown examination type", "INVALID_ENUM_VALUE", nil)
	}
	examDate, err := businessflow.ParseTimePtr(req.ExamDate)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid examDate date", "INVALID_DATE", nil)
	}

	notice := models.Examination{
		Title:       req.Title,
		Description: req.Description,
		ExamType:    req.ExamType,
		Semester:    req.Semester,
		ExamDate:    examDate,
		FileURL:     req.FileURL,
		Images:      businessflow.ToMediaList(req.Images),
	}
	notice.IsPublished = req.IsPublished
	notice.IsFeatured = req.IsFeatured

	if err := h.flow.Create(h.requestContext(c, "/api/admin/examinations"), &notice, h.adminID(c)); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusCreated, "Created", businessflow.ToExaminationDTO(notice, true))
}

// Update modifies an examination notice
// @Summary Update examination notice
// @Tags Examinations
// @Accept json
// @Produce json
// @Param id path int true "Examination ID"
// @Param request body dto.UpdateExaminationRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ExaminationDTO}
// @Router /api/admin/examinations/{id} [put]
func (h *ExaminationHandler) Update(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", "INVALID_ID", nil)
	}

	var req dto.UpdateExaminationRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if req.ExamType != nil && !models.IsValidExamType(*req.ExamType) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown examination type", "INVALID_ENUM_VALUE", nil)
	}
	examDate, perr := businessflow.ParseTimePtr(req.ExamDate)
	if perr != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid examDate date", "INVALID_DATE", nil)
	}

	ctx := h.requestContext(c, "/api/admin/examinations/:id")
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
	if req.ExamType != nil {
		notice.ExamType = *req.ExamType
	}
	if req.Semester != nil {
		notice.Semester = *req.Semester
	}
	if req.ExamDate != nil {
		notice.ExamDate = examDate
	}
	if req.FileURL != nil {
		notice.FileURL = *req.FileURL
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
	return h.SuccessResponse(c, fiber.StatusOK, "Updated", businessflow.ToExaminationDTO(*notice, true))
}
