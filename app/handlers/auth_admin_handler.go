package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/opencampus/college-cms/app/dto"
	businessflow "github.com/opencampus/college-cms/business_flow"
)

// AdminAuthHandler handles the admin authentication endpoints
type AdminAuthHandler struct {
	baseHandler
	authFlow businessflow.AdminAuthFlow
}

// NewAdminAuthHandler creates a new admin auth handler
func NewAdminAuthHandler(authFlow businessflow.AdminAuthFlow) *AdminAuthHandler {
	return &AdminAuthHandler{
		baseHandler: newBaseHandler(),
		authFlow:    authFlow,
	}
}

// InitCaptcha issues a rotation captcha challenge for the login form
// @Summary Initialize login captcha
// @Tags AdminAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AdminCaptchaInitResponse}
// @Router /api/admin/auth/captcha [get]
func (h *AdminAuthHandler) InitCaptcha(c fiber.Ctx) error {
	resp, err := h.authFlow.InitCaptcha(h.requestContext(c, "/api/admin/auth/captcha"))
	if err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Captcha generated", resp)
}

// Login authenticates an admin by username or email
// @Summary Admin login
// @Tags AdminAuth
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AdminLoginResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /api/admin/auth/login [post]
func (h *AdminAuthHandler) Login(c fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), string(c.Request().Header.UserAgent()))
	if rid, ok := c.Locals("request_id").(string); ok {
		metadata.SetRequestID(rid)
	}

	resp, err := h.authFlow.Login(h.requestContext(c, "/api/admin/auth/login"), &req, metadata)
	if err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Login successful", resp)
}

// Profile returns the authenticated admin's account
// @Summary Admin profile
// @Tags AdminAuth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AdminProfileResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /api/admin/auth/profile [get]
func (h *AdminAuthHandler) Profile(c fiber.Ctx) error {
	resp, err := h.authFlow.Profile(h.requestContext(c, "/api/admin/auth/profile"), h.adminID(c))
	if err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "OK", resp)
}

// ChangePassword rotates the authenticated admin's password
// @Summary Change admin password
// @Tags AdminAuth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /api/admin/auth/change-password [put]
func (h *AdminAuthHandler) ChangePassword(c fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}

	if err := h.authFlow.ChangePassword(h.requestContext(c, "/api/admin/auth/change-password"), h.adminID(c), &req); err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Password changed", nil)
}

// Refresh exchanges a refresh token for a new token pair
// @Summary Refresh admin session
// @Tags AdminAuth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.AdminLoginResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /api/admin/auth/refresh [post]
func (h *AdminAuthHandler) Refresh(c fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if errs := h.validate(&req); errs != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", errs)
	}

	resp, err := h.authFlow.RefreshToken(h.requestContext(c, "/api/admin/auth/refresh"), &req)
	if err != nil {
		return h.BusinessErrorResponse(c, err)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Session refreshed", resp)
}
