package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/opencampus/college-cms/app/dto"
	"github.com/opencampus/college-cms/app/services"
	businessflow "github.com/opencampus/college-cms/business_flow"
	"github.com/opencampus/college-cms/models"
	"github.com/opencampus/college-cms/repository"
)

// ContactHandler serves the public contact form and the admin inbox
type ContactHandler struct {
	*ContentHandler[models.Contact]
	contactFlow businessflow.ContactFlow
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactFlow businessflow.ContactFlow, cache services.ListCache) *ContactHandler {
	return &ContactHandler{
		ContentHandler: NewContentHandler[models.Contact](contactFlow, cache, "contacts", buildContactQuery,
			func(ct *models.Contact) any { return businessflow.ToContactDTO(*ct) },
			func(ct *models.Contact) any { return businessflow.ToContactDTO(*ct) },
		),
		contactFlow: contactFlow,
	}
}

func buildContactQuery(c fiber.Ctx) repository.ListQuery {
	var req dto.ListContactsRequest
	_ = c.Bind().Query(&req)

	q := repository.ListQuery{
		Page:          req.Page,
		Limit:         req.Limit,
		Search:        req.Search,
		SearchColumns: []string{"name", "email", "subject", "message"},
		SortBy:        req.SortBy,
		SortOrder:     req.SortOrder,
		SortColumns: map[string]string{
			"name":      "name",
			"status":    "status",
			"createdAt": "created_at",
		},
		DefaultOrder: "created_at DESC",
	}
	addExact(&q, "status", req.Status)
	return q
}

// Submit accepts a public contact-form message
// @Summary Submit contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.SubmitContactRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=dto.ContactDTO}
// @Failure 400 {object} dto.APIResponse
// @Router /api/contact [post]
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req dto.SubmitContactRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), string(c.Request().Header.UserAgent()))
	contact, err := h.contactFlow.Submit(h.requestContext(c, "/api/contact"), &req, metadata)
	if err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusCreated, "Message received", businessflow.ToContactDTO(*contact))
}

// GetAdmin returns one message and marks a new one as read
// @Summary Get contact message
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} dto.APIResponse{data=dto.ContactDTO}
// @Failure 404 {object} dto.APIResponse
// @Router /api/admin/contacts/{id} [get]
func (h *ContactHandler) GetAdmin(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", "INVALID_ID", nil)
	}

	contact, ferr := h.contactFlow.GetAndMarkRead(h.requestContext(c, "/api/admin/contacts/:id"), id, h.adminID(c))
	if ferr != nil {
		return h.BusinessErrorResponse(c, ferr)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "OK", businessflow.ToContactDTO(*contact))
}

// UpdateStatus moves a message through the new/read/responded lifecycle
// @Summary Update contact status
// @Tags Contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Param request body dto.UpdateContactStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.ContactDTO}
// @Failure 404 {object} dto.APIResponse
// @Router /api/admin/contacts/{id}/status [patch]
func (h *ContactHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid id", "INVALID_ID", nil)
	}

	var req dto.UpdateContactStatusRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}

	contact, ferr := h.contactFlow.UpdateStatus(h.requestContext(c, "/api/admin/contacts/:id/status"), id, req.Status, h.adminID(c))
	if ferr != nil {
		return h.BusinessErrorResponse(c, ferr)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Status updated", businessflow.ToContactDTO(*contact))
}
