package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/app/services"
	businessflow "github.com/opencampus/college-cms/business_flow"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
)

// FacultyHandler serves faculty member profiles
type FacultyHandler struct {
	*ContentHandler[models.Faculty]
}

// NewFacultyHandler creates a new faculty handler
func NewFacultyHandler(flow businessflow.ContentFlow[models.Faculty], cache services.ListCache) *FacultyHandler {
	return &FacultyHandler{
		ContentHandler: NewContentHandler(flow, cache, "faculty", buildFacultyQuery,
			func(f *models.Faculty) any { return businessflow.ToFacultyDTO(*f, true) },
			func(f *models.Faculty) any { return businessflow.ToFacultyDTO(*f, false) },
		),
	}
}

func buildFacultyQuery(c fiber.Ctx) repository.ListQuery {
	var req dto.ListFacultyRequest
	_ = c.Bind().Query(&req)

	q := repository.ListQuery{
		Page:          req.Page,
		Limit:         req.Limit,
		Search:        req.Search,
		SearchColumns: []string{"name", "designation", "qualification"},
		SortBy:        req.SortBy,
		SortOrder:     req.SortOrder,
		SortColumns: map[string]string{
			"name":         "name",
			"displayOrder": "display_order",
			"createdAt":    "created_at",
		},
		DefaultOrder: "display_order ASC, name ASC",
	}
	applyStatusFilter(&q, req.Status)
	addExact(&q, "department", req.Department)
	if req.Designation != "" {
		if q.Match == nil {
			q.Match = map[string]string{}
		}
		q.Match["designation"] = req.Designation
	}
	return q
}

// Create adds a faculty member
// @Summary Create faculty member
// @Tags Faculty
// @Accept json
// @Produce json
// @Param request body dto.CreateFacultyRequest true "Faculty data"
// @Success 201 {object} dto.APIResponse{data=dto.FacultyDTO}
// @Router /api/admin/faculty [post]
func (h *FacultyHandler) Create(c fiber.Ctx) error {
	var req dto.CreateFacultyRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if !models.IsValidDepartment(req.Department) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown department", "INVALID_ENUM_VALUE", nil)
	}

	member := models.Faculty{
		Name:          req.Name,
		Designation:   req.Designation,
		Department:    req.Department,
		Qualification: req.Qualification,
		Experience:    req.Experience,
		Email:         req.Email,
		Phone:         req.Phone,
		Bio:           req.Bio,
		DisplayOrder:  req.DisplayOrder,
		Photo:         businessflow.ToMediaList(req.Photo),
	}
	member.IsPublished = req.IsPublished
	member.IsFeatured = req.IsFeatured

	if err := h.flow.Create(h.requestContext(c, "/api/admin/faculty"), &member, h.adminID(c)); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusCreated, "Created", businessflow.ToFacultyDTO(member, true))
}

// Update modifies a faculty member
// @Summary Update faculty member
// @Tags Faculty
// @Accept json
// @Produce json
// @Param id path int true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyDTO}
// @Router /api/admin/faculty/{id} [put]
func (h *FacultyHandler) Update(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", "INVALID_ID", nil)
	}

	var req dto.UpdateFacultyRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}
	if req.Department != nil && !models.IsValidDepartment(*req.Department) {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown department", "INVALID_ENUM_VALUE", nil)
	}

	ctx := h.requestContext(c, "/api/admin/faculty/:id")
	member, ferr := h.flow.Get(ctx, id, false)
	if ferr != nil {
		return h.BusinessErrorResponse(c, ferr)
	}

	oldPhoto := member.Photo
	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Designation != nil {
		member.Designation = *req.Designation
	}
	if req.Department != nil {
		member.Department = *req.Department
	}
	if req.Qualification != nil {
		member.Qualification = *req.Qualification
	}
	if req.Experience != nil {
		member.Experience = *req.Experience
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Bio != nil {
		member.Bio = *req.Bio
	}
	if req.DisplayOrder != nil {
		member.DisplayOrder = *req.DisplayOrder
	}
	if req.Photo != nil {
		member.Photo = businessflow.ToMediaList(*req.Photo)
	}
	if req.IsPublished != nil {
		member.IsPublished = req.IsPublished
	}
	if req.IsFeatured != nil {
		member.IsFeatured = req.IsFeatured
	}

	removed := businessflow.RemovedAttachments(oldPhoto, member.Photo)
	if err := h.flow.Update(ctx, member, h.adminID(c), removed); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Updated", businessflow.ToFacultyDTO(*member, true))
}
