package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/app/services"
	businessflow "github.com/opencampus/college-cms/business_flow"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
)

// RollNumberHandler serves roll number announcements, including
// spreadsheet import and export.
type RollNumberHandler struct {
	*ContentHandler[models.RollNumber]
	rollFlow businessflow.RollNumberFlow
}

// NewRollNumberHandler creates a new roll number handler
func NewRollNumberHandler(rollFlow businessflow.RollNumberFlow, cache services.ListCache) *RollNumberHandler {
	return &RollNumberHandler{
		ContentHandler: NewContentHandler[models.RollNumber](rollFlow, cache, "roll-numbers", buildRollNumberQuery,
			func(r *models.RollNumber) any { return businessflow.ToRollNumberDTO(*r, true) },
			func(r *models.RollNumber) any { return businessflow.ToRollNumberDTO(*r, false) },
		),
		rollFlow: rollFlow,
	}
}

func buildRollNumberQuery(c fiber.Ctx) repository.ListQuery {
	var req dto.ListRollNumbersRequest
	_ = c.Bind().Query(&req)

	q := repository.ListQuery{
		Page:          req.Page,
		Limit:         req.Limit,
		Search:        req.Search,
		SearchColumns: []string{"title"},
		SortBy:        req.SortBy,
		SortOrder:     req.SortOrder,
		SortColumns: map[string]string{
			"title":        "title",
			"academicYear": "academic_year",
			"createdAt":    "created_at",
		},
		DefaultOrder: "created_at DESC",
	}
	applyStatusFilter(&q, req.Status)
	addExact(&q, "program", req.Program)
	addExact(&q, "semester", req.Semester)
	addExact(&q, "academic_year", req.AcademicYear)
	return q
}

// Create adds a roll number announcement
// @Summary Create roll number announcement
// @Tags RollNumbers
// @Accept json
// @Produce json
// @Param request body dto.CreateRollNumberRequest true "Roll number data"
// @Success 201 {object} dto.APIResponse{data=dto.RollNumberDTO}
// @Router /api/admin/roll-numbers [post]
func (h *RollNumberHandler) Create(c fiber.Ctx) error {
	var req dto.CreateRollNumberRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if !models.IsValidProgram(req.Program) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown program", "INVALID_ENUM_VALUE", nil)
	}

	entry := models.RollNumber{
		Title:        req.Title,
		Program:      req.Program,
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
		FileURL:      req.FileURL,
		Images:       businessflow.ToMediaList(req.Images),
	}
	entry.IsPublished = req.IsPublished
	entry.IsFeatured = req.IsFeatured

	if err := h.flow.Create(h.requestContext(c, "/api/admin/roll-numbers"), &entry, h.adminID(c)); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusCreated, "Created", businessflow.ToRollNumberDTO(entry, true))
}

// Update modifies a roll number announcement
// @Summary Update roll number announcement
// @Tags RollNumbers
// @Accept json
// @Produce json
// @Param id path int true "Roll number ID"
// @Param request body dto.UpdateRollNumberRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.RollNumberDTO}
// @Router /api/admin/roll-numbers/{id} [put]
func (h *RollNumberHandler) Update(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", "INVALID_ID", nil)
	}

	var req dto.UpdateRollNumberRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if req.Program != nil && !models.IsValidProgram(*req.Program) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown program", "INVALID_ENUM_VALUE", nil)
	}

	ctx := h.requestContext(c, "/api/admin/roll-numbers/:id")
	entry, ferr := h.flow.Get(ctx, id, false)
	if ferr != nil {
		return h.BusinessErrorResponse(c, ferr)
	}

	oldImages := entry.Images
	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Program != nil {
		entry.Program = *req.Program
	}
	if req.Semester != nil {
		entry.Semester = *req.Semester
	}
	if req.AcademicYear != nil {
		entry.AcademicYear = *req.AcademicYear
	}
	if req.FileURL != nil {
		entry.FileURL = *req.FileURL
	}
	if req.Images != nil {
		entry.Images = businessflow.ToMediaList(*req.Images)
	}
	if req.IsPublished != nil {
		entry.IsPublished = req.IsPublished
	}
	if req.IsFeatured != nil {
		entry.IsFeatured = req.IsFeatured
	}

	removed := businessflow.RemovedAttachments(oldImages, entry.Images)
	if err := h.flow.Update(ctx, entry, h.adminID(c), removed); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Updated", businessflow.ToRollNumberDTO(*entry, true))
}

// Import loads roll number entries from an uploaded spreadsheet
// @Summary Import roll numbers from xlsx
// @Tags RollNumbers
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet file"
// @Success 200 {object} dto.APIResponse{data=dto.RollNumberImportResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /api/admin/roll-numbers/import [post]
func (h *RollNumberHandler) Import(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Spreadsheet file is required", "MISSING_FILE", nil)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unable to read uploaded file", "INVALID_FILE", nil)
	}
	defer func() { _ = file.Close() }()

	summary, ierr := h.rollFlow.Import(h.requestContext(c, "/api/admin/roll-numbers/import"), file, h.adminID(c))
	if ierr != nil {
		return h.BusinessErrorResponse(c, ierr)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Import completed", summary)
}

// Export streams all roll number entries as an xlsx workbook
// @Summary Export roll numbers to xlsx
// @Tags RollNumbers
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /api/admin/roll-numbers/export [get]
func (h *RollNumberHandler) Export(c fiber.Ctx) error {
	name, payload, err := h.rollFlow.Export(h.requestContext(c, "/api/admin/roll-numbers/export"))
	if err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(payload)
}
