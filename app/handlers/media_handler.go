package handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v3"

	"github.com/opencampus/college-cms/app/dto"
	businessflow "github.com/opencampus/college-cms/business_flow"
)

// MediaHandler handles admin file uploads and deletions
type MediaHandler struct {
	baseHandler
	mediaFlow businessflow.MediaFlow
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaFlow businessflow.MediaFlow) *MediaHandler {
	return &MediaHandler{
		baseHandler: newBaseHandler(),
		mediaFlow:   mediaFlow,
	}
}

// uploadedFile accepts either "file" or the legacy "image" form field.
func uploadedFile(c fiber.Ctx) (*multipart.FileHeader, error) {
	if fh, err := c.FormFile("file"); err == nil {
		return fh, nil
	}
	return c.FormFile("image")
}

// Upload stores one image and returns its URLs
// @Summary Upload media file
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Param folder query string false "Target folder" default(uploads)
// @Success 201 {object} dto.APIResponse{data=dto.UploadMediaResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /api/admin/upload [post]
func (h *MediaHandler) Upload(c fiber.Ctx) error {
	fileHeader, err := uploadedFile(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "An image file is required", "MISSING_FILE", nil)
	}

	folder := c.Query("folder", "uploads")

	file, err := fileHeader.Open()
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unable to read uploaded file", "INVALID_FILE", nil)
	}
	defer func() { _ = file.Close() }()

	resp, uerr := h.mediaFlow.Upload(
		h.requestContext(c, "/api/admin/upload"),
		folder, fileHeader.Filename, fileHeader.Size, file, h.adminID(c),
	)
	if uerr != nil {
		return h.BusinessErrorResponse(c, uerr)
	}
	return h.SuccessResponse(c, fiber.StatusCreated, "Uploaded", resp)
}

// Delete removes one stored file and its asset record
// @Summary Delete media file
// @Tags Media
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeleteMediaRequest true "Public ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/admin/media [delete]
func (h *MediaHandler) Delete(c fiber.Ctx) error {
	var req dto.DeleteMediaRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}

	if err := h.mediaFlow.Delete(h.requestContext(c, "/api/admin/media"), req.PublicID); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Deleted", nil)
}
